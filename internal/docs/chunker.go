package docs

import (
	"regexp"
	"strings"
)

var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// Chunker splits documentation into retrieval-sized chunks. Paragraph
// boundaries are respected where possible; paragraphs larger than the chunk
// size are split on word boundaries with a word overlap between the pieces.
type Chunker struct {
	chunkSize   int
	wordOverlap int
}

// NewChunker creates a chunker with the given maximum chunk size in bytes
// and word overlap between pieces of an oversized paragraph.
func NewChunker(chunkSize, wordOverlap int) *Chunker {
	return &Chunker{
		chunkSize:   chunkSize,
		wordOverlap: wordOverlap,
	}
}

// ChunkText splits text into chunks no larger than the chunk size.
func (c *Chunker) ChunkText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, para := range paragraphSep.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(para) > c.chunkSize {
			flush()
			chunks = append(chunks, c.splitParagraph(para)...)
			continue
		}

		// +2 accounts for the blank line between joined paragraphs.
		if current.Len() > 0 && current.Len()+len(para)+2 > c.chunkSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()

	return chunks
}

// splitParagraph breaks an oversized paragraph on word boundaries, carrying
// the trailing overlap words into the next piece for context continuity.
func (c *Chunker) splitParagraph(para string) []string {
	words := strings.Fields(para)

	var pieces []string
	var piece []string
	size := 0

	for _, word := range words {
		if size > 0 && size+len(word)+1 > c.chunkSize {
			pieces = append(pieces, strings.Join(piece, " "))
			piece = overlapTail(piece, c.wordOverlap)
			size = 0
			for _, w := range piece {
				size += len(w) + 1
			}
		}
		piece = append(piece, word)
		size += len(word) + 1
	}
	if len(piece) > 0 {
		pieces = append(pieces, strings.Join(piece, " "))
	}

	return pieces
}

func overlapTail(words []string, n int) []string {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	if n > len(words) {
		n = len(words)
	}
	tail := make([]string, n)
	copy(tail, words[len(words)-n:])
	return tail
}
