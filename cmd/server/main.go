package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/nlbio/bridgedb-assistant/internal/bridgedb"
	"github.com/nlbio/bridgedb-assistant/internal/config"
	"github.com/nlbio/bridgedb-assistant/internal/docs"
	"github.com/nlbio/bridgedb-assistant/internal/llm"
	"github.com/nlbio/bridgedb-assistant/internal/orchestrator"

	httphandler "github.com/nlbio/bridgedb-assistant/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbedModel, cfg.Temperature)
	slog.Info("Initialized OpenAI client", "model", cfg.OpenAIModel)

	// Initialize BridgeDB client
	mapperClient := bridgedb.NewClient(cfg.BridgeDBBaseURL, cfg.PubChemBaseURL, cfg.RequestTimeout)
	slog.Info("Initialized BridgeDB client", "base_url", cfg.BridgeDBBaseURL)

	// Initialize documentation retriever when an index is configured
	var retriever orchestrator.ContextRetriever
	var indexer httphandler.DocIndexer
	if cfg.RetrievalEnabled() {
		store, err := docs.NewVectorStore(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection)
		if err != nil {
			slog.Error("Failed to create vector store", "error", err)
			os.Exit(1)
		}

		chunker := docs.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
		docRetriever, err := docs.NewRetriever(context.Background(), chunker, llmClient, store, cfg.OpenAIEmbedModel, cfg.SearchLimit)
		if err != nil {
			slog.Error("Failed to create documentation retriever", "error", err)
			os.Exit(1)
		}

		retriever = docRetriever
		indexer = docRetriever
		slog.Info("Initialized documentation retriever", "collection", cfg.QdrantCollection)
	} else {
		slog.Info("Documentation retrieval disabled, using built-in reference")
	}

	// Initialize query orchestrator
	orch := orchestrator.New(llmClient, mapperClient, retriever)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(orch, indexer)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
