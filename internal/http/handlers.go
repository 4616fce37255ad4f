package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nlbio/bridgedb-assistant/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// QueryOrchestrator turns one question into one displayed answer.
type QueryOrchestrator interface {
	HandleQuery(ctx context.Context, question string) (string, error)
}

// DocIndexer ingests documentation text into the retrieval index.
type DocIndexer interface {
	Ingest(ctx context.Context, text, docID string) error
}

type QueryReq struct {
	Question string `json:"question"`
}

type IngestReq struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

type Handler struct {
	orchestrator QueryOrchestrator
	indexer      DocIndexer
}

// NewHandlers initializes handlers with dependencies. indexer may be nil
// when no retrieval index is configured.
func NewHandlers(orchestrator QueryOrchestrator, indexer DocIndexer) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		indexer:      indexer,
	}
}

func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Question == "" {
		errorResponse(w, http.StatusBadRequest, "Question is required", nil)
		return
	}

	requestID := uuid.NewString()
	ctx := r.Context()

	answer, err := h.orchestrator.HandleQuery(ctx, req.Question)
	if err != nil {
		slog.Error("Error handling query", "error", err, "request_id", requestID)
		errorResponse(w, http.StatusBadGateway, "Failed to answer question", err)
		return
	}

	response := types.QueryResponse{
		Answer:    answer,
		RequestID: requestID,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func (h *Handler) IngestHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if h.indexer == nil {
		errorResponse(w, http.StatusServiceUnavailable, "Documentation retrieval is not configured", nil)
		return
	}

	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Text == "" {
		errorResponse(w, http.StatusBadRequest, "Text is required", nil)
		return
	}

	if err := h.indexer.Ingest(r.Context(), req.Text, req.ID); err != nil {
		slog.Error("Error ingesting documentation", "error", err, "doc_id", req.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to ingest documentation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "success"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
