package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and provides assistant-specific methods
type Client struct {
	client             *openai.Client
	model              string
	embedModel         string
	temperature        float64
	systemPrompt       string
	userPromptTemplate string
}

// NewClient creates a new LLM client with API key. Prompts are resolved once
// here: a prompts/ file overrides the built-in default when present.
func NewClient(apiKey, model, embedModel string, temperature float64) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:             &client,
		model:              model,
		embedModel:         embedModel,
		temperature:        temperature,
		systemPrompt:       resolvePrompt(systemPromptPaths, defaultSystemPrompt),
		userPromptTemplate: resolvePrompt(userPromptPaths, defaultUserPromptTemplate),
	}
}

// ToolCall is a typed tool invocation emitted by the model. Arguments is the
// raw JSON argument object as returned by the provider.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Completion is the outcome of a single chat completion request: either a
// direct answer in Text, or one or more tool calls to execute. When ToolCalls
// is non-empty, Text may still carry accompanying commentary from the model.
type Completion struct {
	Text      string
	ToolCalls []ToolCall
}
