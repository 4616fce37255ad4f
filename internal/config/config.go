package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIEmbedModel string
	Temperature      float64

	// Upstream API configuration
	BridgeDBBaseURL string
	PubChemBaseURL  string
	RequestTimeout  time.Duration

	// Documentation retrieval configuration. Retrieval is enabled only
	// when QdrantHost is set; otherwise queries use the full built-in
	// documentation block as prompt context.
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string
	ChunkSize        int
	ChunkOverlap     int
	SearchLimit      int
}

// LoadConfig loads configuration from a .env file (if present), environment
// variables, and command-line flags. Flags take precedence over environment
// variables.
func LoadConfig() (*Config, error) {
	// Secrets live in a .env file in development; a missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{}

	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4o-mini"), "OpenAI model for chat completions")
	openAIEmbedModel := flag.String("openai-embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"), "OpenAI model for embeddings")
	temperature := flag.Float64("temperature", getEnvAsFloat("OPENAI_TEMPERATURE", 0), "Sampling temperature for chat completions")
	bridgeDBBaseURL := flag.String("bridgedb-url", getEnv("BRIDGEDB_URL", "https://webservice.bridgedb.org"), "BridgeDB web service base URL")
	pubChemBaseURL := flag.String("pubchem-url", getEnv("PUBCHEM_URL", "https://pubchem.ncbi.nlm.nih.gov/rest/pug"), "PubChem PUG REST base URL")
	requestTimeout := flag.Int("request-timeout", getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30), "Timeout in seconds for outbound HTTP calls")
	qdrantHost := flag.String("qdrant-host", getEnv("QDRANT_HOST", ""), "Qdrant host (empty disables documentation retrieval)")
	qdrantPort := flag.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantCollection := flag.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "bridgedb-docs"), "Qdrant collection name")
	chunkSize := flag.Int("chunk-size", getEnvAsInt("CHUNK_SIZE", 800), "Documentation chunk size")
	chunkOverlap := flag.Int("chunk-overlap", getEnvAsInt("CHUNK_OVERLAP", 40), "Documentation chunk overlap in words")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 4), "Number of documentation chunks to retrieve")

	flag.Parse()

	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIEmbedModel = *openAIEmbedModel
	cfg.Temperature = *temperature
	cfg.BridgeDBBaseURL = *bridgeDBBaseURL
	cfg.PubChemBaseURL = *pubChemBaseURL
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantCollection = *qdrantCollection
	cfg.ChunkSize = *chunkSize
	cfg.ChunkOverlap = *chunkOverlap
	cfg.SearchLimit = *searchLimit

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (set via .env, environment variable, or -openai-key flag)")
	}

	return cfg, nil
}

// RetrievalEnabled reports whether a documentation retrieval index is configured.
func (c *Config) RetrievalEnabled() bool {
	return c.QdrantHost != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
