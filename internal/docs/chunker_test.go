package docs

import (
	"strings"
	"testing"
)

func TestChunker_ChunkText(t *testing.T) {
	tests := []struct {
		name        string
		chunkSize   int
		wordOverlap int
		text        string
		wantChunks  int
		wantEach    func(t *testing.T, chunks []string)
	}{
		{
			name:       "empty text",
			chunkSize:  100,
			text:       "",
			wantChunks: 0,
		},
		{
			name:       "whitespace only",
			chunkSize:  100,
			text:       "  \n\n  ",
			wantChunks: 0,
		},
		{
			name:       "single small paragraph",
			chunkSize:  100,
			text:       "BridgeDB maps identifiers.",
			wantChunks: 1,
			wantEach: func(t *testing.T, chunks []string) {
				if chunks[0] != "BridgeDB maps identifiers." {
					t.Errorf("chunk = %q", chunks[0])
				}
			},
		},
		{
			name:       "small paragraphs packed together",
			chunkSize:  100,
			text:       "First paragraph.\n\nSecond paragraph.",
			wantChunks: 1,
			wantEach: func(t *testing.T, chunks []string) {
				if !strings.Contains(chunks[0], "First paragraph.") || !strings.Contains(chunks[0], "Second paragraph.") {
					t.Errorf("chunk = %q, want both paragraphs", chunks[0])
				}
			},
		},
		{
			name:       "paragraphs split when they exceed the chunk size",
			chunkSize:  25,
			text:       "First paragraph here.\n\nSecond paragraph here.",
			wantChunks: 2,
			wantEach: func(t *testing.T, chunks []string) {
				if chunks[0] != "First paragraph here." {
					t.Errorf("chunk 0 = %q", chunks[0])
				}
				if chunks[1] != "Second paragraph here." {
					t.Errorf("chunk 1 = %q", chunks[1])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(tt.chunkSize, tt.wordOverlap)
			chunks := c.ChunkText(tt.text)

			if len(chunks) != tt.wantChunks {
				t.Fatalf("ChunkText() returned %d chunks, want %d: %q", len(chunks), tt.wantChunks, chunks)
			}
			if tt.wantEach != nil {
				tt.wantEach(t, chunks)
			}
		})
	}
}

func TestChunker_ChunkText_OversizedParagraph(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	c := NewChunker(50, 2)
	chunks := c.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("ChunkText() returned %d chunks, want several: %q", len(chunks), chunks)
	}

	for i, chunk := range chunks {
		if len(chunk) > 50 {
			t.Errorf("chunk %d has length %d, want <= 50", i, len(chunk))
		}
	}

	// All input words survive chunking.
	total := 0
	for _, chunk := range chunks {
		total += len(strings.Fields(chunk))
	}
	if total < len(words) {
		t.Errorf("chunks contain %d words, want at least %d", total, len(words))
	}
}

func TestChunker_ChunkText_Overlap(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa"

	c := NewChunker(30, 2)
	chunks := c.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("ChunkText() returned %d chunks, want at least 2: %q", len(chunks), chunks)
	}

	for i := 1; i < len(chunks); i++ {
		prev := strings.Fields(chunks[i-1])
		cur := strings.Fields(chunks[i])
		if len(prev) < 2 || len(cur) < 2 {
			continue
		}
		if prev[len(prev)-2] != cur[0] || prev[len(prev)-1] != cur[1] {
			t.Errorf("chunk %d does not start with the overlap of chunk %d: %q -> %q", i, i-1, chunks[i-1], chunks[i])
		}
	}
}
