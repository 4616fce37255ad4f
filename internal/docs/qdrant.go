package docs

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// VectorStore wraps a Qdrant collection holding documentation chunks.
type VectorStore struct {
	client     *qdrant.Client
	collection string
}

// NewVectorStore connects to Qdrant over gRPC.
func NewVectorStore(host string, port int, collection string) (*VectorStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &VectorStore{
		client:     client,
		collection: collection,
	}, nil
}

// EnsureCollection creates the collection if it does not exist yet.
func (s *VectorStore) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	if _, err := s.client.GetCollectionInfo(ctx, s.collection); err == nil {
		return nil
	}

	err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// UpsertPoints writes documentation chunks into the collection.
func (s *VectorStore) UpsertPoints(ctx context.Context, points []*qdrant.PointStruct) error {
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// DeleteByDoc removes every chunk belonging to a document.
func (s *VectorStore) DeleteByDoc(ctx context.Context, docID string) error {
	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch("doc_id", docID)},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to delete points: %w", err)
	}
	return nil
}

// Search returns the texts of the chunks closest to the query vector.
func (s *VectorStore) Search(ctx context.Context, vector []float32, limit uint64) ([]string, error) {
	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, result := range results {
		if result.Payload == nil {
			continue
		}
		if value, ok := result.Payload["text"]; ok && value.GetStringValue() != "" {
			texts = append(texts, value.GetStringValue())
		}
	}

	return texts, nil
}
