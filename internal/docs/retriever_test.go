package docs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdrant/go-client/qdrant"
)

func TestNewRetriever(t *testing.T) {
	tests := []struct {
		name        string
		embedModel  string
		setupMocks  func(*MockVectorDatabase)
		wantErr     bool
		errContains string
	}{
		{
			name:       "collection sized for the embedding model",
			embedModel: "text-embedding-3-small",
			setupMocks: func(store *MockVectorDatabase) {
				store.EXPECT().EnsureCollection(gomock.Any(), uint64(1536)).Return(nil)
			},
		},
		{
			name:       "large embedding model",
			embedModel: "text-embedding-3-large",
			setupMocks: func(store *MockVectorDatabase) {
				store.EXPECT().EnsureCollection(gomock.Any(), uint64(3072)).Return(nil)
			},
		},
		{
			name:       "collection creation fails",
			embedModel: "text-embedding-3-small",
			setupMocks: func(store *MockVectorDatabase) {
				store.EXPECT().EnsureCollection(gomock.Any(), uint64(1536)).Return(errors.New("connection refused"))
			},
			wantErr:     true,
			errContains: "failed to ensure collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEmbedder := NewMockEmbedder(ctrl)
			mockStore := NewMockVectorDatabase(ctrl)
			tt.setupMocks(mockStore)

			r, err := NewRetriever(context.Background(), NewChunker(800, 40), mockEmbedder, mockStore, tt.embedModel, 4)

			if tt.wantErr {
				if err == nil {
					t.Fatal("NewRetriever() expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewRetriever() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewRetriever() unexpected error: %v", err)
			}
			if r == nil {
				t.Fatal("NewRetriever() returned nil retriever")
			}
		})
	}
}

func TestRetriever_Ingest(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		docID       string
		setupMocks  func(*MockTextChunker, *MockEmbedder, *MockVectorDatabase)
		wantErr     bool
		errContains string
	}{
		{
			name:  "chunks are embedded and upserted",
			text:  "BridgeDB documentation text",
			docID: "bridgedb_api.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorDatabase) {
				chunks := []string{"chunk one", "chunk two"}
				chunker.EXPECT().ChunkText("BridgeDB documentation text").Return(chunks)
				store.EXPECT().DeleteByDoc(gomock.Any(), "bridgedb_api.txt").Return(nil)
				embedder.EXPECT().GenerateEmbedding(gomock.Any(), "chunk one").Return([]float32{0.1, 0.2}, nil)
				embedder.EXPECT().GenerateEmbedding(gomock.Any(), "chunk two").Return([]float32{0.3, 0.4}, nil)
				store.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, points []*qdrant.PointStruct) error {
						if len(points) != 2 {
							t.Errorf("UpsertPoints() got %d points, want 2", len(points))
						}
						return nil
					})
			},
		},
		{
			name:  "clearing previous chunks fails",
			text:  "some documentation",
			docID: "doc.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorDatabase) {
				chunker.EXPECT().ChunkText("some documentation").Return([]string{"some documentation"})
				store.EXPECT().DeleteByDoc(gomock.Any(), "doc.txt").Return(errors.New("unavailable"))
			},
			wantErr:     true,
			errContains: "failed to clear previous chunks",
		},
		{
			name:  "no chunks",
			text:  "",
			docID: "empty.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorDatabase) {
				chunker.EXPECT().ChunkText("").Return(nil)
			},
			wantErr:     true,
			errContains: "no chunks",
		},
		{
			name:  "embedding fails",
			text:  "some documentation",
			docID: "doc.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorDatabase) {
				chunker.EXPECT().ChunkText("some documentation").Return([]string{"some documentation"})
				store.EXPECT().DeleteByDoc(gomock.Any(), "doc.txt").Return(nil)
				embedder.EXPECT().GenerateEmbedding(gomock.Any(), "some documentation").Return(nil, errors.New("quota"))
			},
			wantErr:     true,
			errContains: "failed to embed chunk",
		},
		{
			name:  "upsert fails",
			text:  "some documentation",
			docID: "doc.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorDatabase) {
				chunker.EXPECT().ChunkText("some documentation").Return([]string{"some documentation"})
				store.EXPECT().DeleteByDoc(gomock.Any(), "doc.txt").Return(nil)
				embedder.EXPECT().GenerateEmbedding(gomock.Any(), "some documentation").Return([]float32{0.1}, nil)
				store.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).Return(errors.New("unavailable"))
			},
			wantErr:     true,
			errContains: "failed to upsert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChunker := NewMockTextChunker(ctrl)
			mockEmbedder := NewMockEmbedder(ctrl)
			mockStore := NewMockVectorDatabase(ctrl)
			mockStore.EXPECT().EnsureCollection(gomock.Any(), gomock.Any()).Return(nil)
			tt.setupMocks(mockChunker, mockEmbedder, mockStore)

			r, err := NewRetriever(context.Background(), mockChunker, mockEmbedder, mockStore, "text-embedding-3-small", 4)
			if err != nil {
				t.Fatalf("NewRetriever() unexpected error: %v", err)
			}

			err = r.Ingest(context.Background(), tt.text, tt.docID)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Ingest() expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Ingest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Ingest() unexpected error: %v", err)
			}
		})
	}
}

func TestRetriever_Ingest_ReplacesPreviousChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunker := NewMockTextChunker(ctrl)
	mockEmbedder := NewMockEmbedder(ctrl)
	mockStore := NewMockVectorDatabase(ctrl)
	mockStore.EXPECT().EnsureCollection(gomock.Any(), gomock.Any()).Return(nil)

	// The old chunks must be gone before the new, shorter set is written,
	// otherwise stale higher-index chunks survive re-ingestion.
	mockChunker.EXPECT().ChunkText("shortened documentation").Return([]string{"shortened documentation"})
	deleted := mockStore.EXPECT().DeleteByDoc(gomock.Any(), "bridgedb_api.txt").Return(nil)
	mockEmbedder.EXPECT().GenerateEmbedding(gomock.Any(), "shortened documentation").Return([]float32{0.1}, nil)
	mockStore.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).Return(nil).After(deleted)

	r, err := NewRetriever(context.Background(), mockChunker, mockEmbedder, mockStore, "text-embedding-3-small", 4)
	if err != nil {
		t.Fatalf("NewRetriever() unexpected error: %v", err)
	}

	if err := r.Ingest(context.Background(), "shortened documentation", "bridgedb_api.txt"); err != nil {
		t.Fatalf("Ingest() unexpected error: %v", err)
	}
}

func TestChunkPointID(t *testing.T) {
	if chunkPointID("doc.txt", 3) != chunkPointID("doc.txt", 3) {
		t.Error("chunkPointID() is not stable for identical inputs")
	}

	// IDs must be unique across documents and chunk indexes; a scheme that
	// adds the index to a per-document hash aliases between documents.
	seen := make(map[uint64]string)
	for _, docID := range []string{"bridgedb_api.txt", "datasources.txt", ""} {
		for i := 0; i < 64; i++ {
			id := chunkPointID(docID, i)
			key := fmt.Sprintf("%s#%d", docID, i)
			if prev, ok := seen[id]; ok {
				t.Errorf("chunkPointID() collision: %s and %s both map to %d", prev, key, id)
			}
			seen[id] = key
		}
	}
}

func TestRetriever_Retrieve(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		setupMocks  func(*MockEmbedder, *MockVectorDatabase)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name:     "chunks joined into context",
			question: "What is the Ensembl system code?",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorDatabase) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "What is the Ensembl system code?").
					Return([]float32{0.1, 0.2}, nil)
				store.EXPECT().
					Search(gomock.Any(), []float32{0.1, 0.2}, uint64(4)).
					Return([]string{"En   Ensembl", "H    HGNC symbols"}, nil)
			},
			want: "En   Ensembl\n\nH    HGNC symbols",
		},
		{
			name:     "embedding fails",
			question: "some question",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorDatabase) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some question").
					Return(nil, errors.New("quota"))
			},
			wantErr:     true,
			errContains: "failed to embed question",
		},
		{
			name:     "search fails",
			question: "some question",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorDatabase) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some question").
					Return([]float32{0.1}, nil)
				store.EXPECT().
					Search(gomock.Any(), []float32{0.1}, uint64(4)).
					Return(nil, errors.New("unavailable"))
			},
			wantErr:     true,
			errContains: "failed to search",
		},
		{
			name:     "no results",
			question: "some question",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorDatabase) {
				embedder.EXPECT().
					GenerateEmbedding(gomock.Any(), "some question").
					Return([]float32{0.1}, nil)
				store.EXPECT().
					Search(gomock.Any(), []float32{0.1}, uint64(4)).
					Return([]string{}, nil)
			},
			wantErr:     true,
			errContains: "no relevant documentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChunker := NewMockTextChunker(ctrl)
			mockEmbedder := NewMockEmbedder(ctrl)
			mockStore := NewMockVectorDatabase(ctrl)
			mockStore.EXPECT().EnsureCollection(gomock.Any(), gomock.Any()).Return(nil)
			tt.setupMocks(mockEmbedder, mockStore)

			r, err := NewRetriever(context.Background(), mockChunker, mockEmbedder, mockStore, "text-embedding-3-small", 4)
			if err != nil {
				t.Fatalf("NewRetriever() unexpected error: %v", err)
			}

			got, err := r.Retrieve(context.Background(), tt.question)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Retrieve() expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Retrieve() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Retrieve() = %q, want %q", got, tt.want)
			}
		})
	}
}
