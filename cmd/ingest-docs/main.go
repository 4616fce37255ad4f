package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Posts the BridgeDB API documentation files to a running server so the
// retrieval index can be (re)built. Usage: ingest-docs <server-url> [dir]
func main() {
	if len(os.Args) < 2 {
		slog.Error("Usage: ingest-docs <server-url> [docs-dir]")
		os.Exit(1)
	}

	serverURL := os.Args[1]
	docsDir := "docs"
	if len(os.Args) > 2 {
		docsDir = os.Args[2]
	}

	files, err := filepath.Glob(filepath.Join(docsDir, "*.txt"))
	if err != nil {
		slog.Error("Failed to read docs directory", "error", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		slog.Error("No .txt files found", "dir", docsDir)
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			slog.Error("Failed to read file", "file", file, "error", err)
			failed++
			continue
		}

		reqBody := map[string]interface{}{
			"text": string(content),
			"id":   filepath.Base(file),
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			slog.Error("Failed to marshal request", "file", file, "error", err)
			failed++
			continue
		}

		url := fmt.Sprintf("%s/api/ingest", serverURL)
		resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			slog.Error("Failed to post documentation", "file", file, "error", err)
			failed++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			slog.Error("Server rejected documentation", "file", file, "status", resp.StatusCode)
			failed++
			continue
		}

		slog.Info("Ingested documentation", "file", file)
	}

	if failed > 0 {
		slog.Error("Some files failed to ingest", "failed", failed, "total", len(files))
		os.Exit(1)
	}
}
