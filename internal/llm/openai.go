package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const defaultSystemPrompt = `You are an assistant for the BridgeDB identifier-mapping web service.
You help users find and translate identifiers of genes, proteins, and chemical compounds across biological databases.
When a question asks to map, translate, or cross-reference an identifier, call the map_identifier tool with the datasource system code from the documentation.
When the documentation already answers the question, answer directly and concisely.
If the question is unrelated to identifier mapping, say so.`

const defaultUserPromptTemplate = `Use the BridgeDB API documentation below to answer the question.

Documentation:
{context}

Question: {question}`

// Operators can override prompts by dropping files into prompts/.
var systemPromptPaths = []string{
	"prompts/system_prompt.txt",
	"./prompts/system_prompt.txt",
	"../prompts/system_prompt.txt",
}

var userPromptPaths = []string{
	"prompts/user_prompt.txt",
	"./prompts/user_prompt.txt",
	"../prompts/user_prompt.txt",
}

// Complete makes a single chat completion request carrying the documentation
// context, the user question, and the identifier-mapping tool definition.
func (c *Client) Complete(ctx context.Context, contextText, question string) (*Completion, error) {
	userPrompt := strings.ReplaceAll(c.userPromptTemplate, "{context}", contextText)
	userPrompt = strings.ReplaceAll(userPrompt, "{question}", question)

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Tools:       assistantTools(),
		Temperature: param.Opt[float64]{Value: c.temperature},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	msg := res.Choices[0].Message
	completion := &Completion{Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	return completion, nil
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfString: param.Opt[string]{Value: text},
	}
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Convert []float64 to []float32 for Qdrant
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}

// resolvePrompt returns the first readable prompt file, or the fallback.
func resolvePrompt(paths []string, fallback string) string {
	for _, path := range paths {
		if p, err := loadPrompt(path); err == nil {
			return p
		}
	}
	return fallback
}

// loadPrompt loads a prompt from a file
func loadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
