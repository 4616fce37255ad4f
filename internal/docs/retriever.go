package docs

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/qdrant/go-client/qdrant"
)

//go:generate mockgen -source=retriever.go -destination=mock_retriever.go -package=docs

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// TextChunker splits documentation into retrieval-sized chunks.
type TextChunker interface {
	ChunkText(text string) []string
}

// VectorDatabase stores and searches documentation chunk vectors.
type VectorDatabase interface {
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	UpsertPoints(ctx context.Context, points []*qdrant.PointStruct) error
	DeleteByDoc(ctx context.Context, docID string) error
	Search(ctx context.Context, vector []float32, limit uint64) ([]string, error)
}

// embeddingDims maps OpenAI embedding models to their vector dimensions.
var embeddingDims = map[string]uint64{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

// EmbeddingDim returns the vector size produced by an embedding model.
func EmbeddingDim(model string) uint64 {
	if dim, ok := embeddingDims[model]; ok {
		return dim
	}
	return 1536
}

// Retriever indexes the BridgeDB API documentation and retrieves the chunks
// most relevant to a question. Retrieval keeps prompts small; callers fall
// back to the full Reference block when no retriever is configured.
type Retriever struct {
	chunker     TextChunker
	embedder    Embedder
	store       VectorDatabase
	searchLimit int
}

// NewRetriever creates a documentation retriever and ensures the underlying
// collection exists with the embedding model's vector size.
func NewRetriever(ctx context.Context, chunker TextChunker, embedder Embedder, store VectorDatabase, embedModel string, searchLimit int) (*Retriever, error) {
	if err := store.EnsureCollection(ctx, EmbeddingDim(embedModel)); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	return &Retriever{
		chunker:     chunker,
		embedder:    embedder,
		store:       store,
		searchLimit: searchLimit,
	}, nil
}

// Ingest chunks, embeds, and indexes a documentation text. Re-ingesting the
// same docID replaces its chunks, so the index can be rebuilt in place even
// when the document shrank.
func (r *Retriever) Ingest(ctx context.Context, text, docID string) error {
	chunks := r.chunker.ChunkText(text)
	if len(chunks) == 0 {
		return fmt.Errorf("no chunks created from text")
	}

	if err := r.store.DeleteByDoc(ctx, docID); err != nil {
		return fmt.Errorf("failed to clear previous chunks: %w", err)
	}

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := r.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(chunkPointID(docID, i)),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":        chunk,
				"doc_id":      docID,
				"chunk_index": int64(i),
			}),
		})
	}

	if err := r.store.UpsertPoints(ctx, points); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

// Retrieve returns the documentation chunks most relevant to the question,
// joined into a single context block.
func (r *Retriever) Retrieve(ctx context.Context, question string) (string, error) {
	embedding, err := r.embedder.GenerateEmbedding(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %w", err)
	}

	texts, err := r.store.Search(ctx, embedding, uint64(r.searchLimit))
	if err != nil {
		return "", fmt.Errorf("failed to search: %w", err)
	}

	if len(texts) == 0 {
		return "", fmt.Errorf("no relevant documentation found")
	}

	return strings.Join(texts, "\n\n"), nil
}

// chunkPointID derives a stable point ID from the document ID and chunk
// index, so re-ingestion replaces rather than duplicates. The index is part
// of the hashed key; adding it to the hash instead would let one document's
// chunk IDs run into another's.
func chunkPointID(docID string, index int) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s#%d", docID, index)
	return h.Sum64()
}
