// Package orchestrator turns one user question into one displayed answer:
// build prompt context, make one completion call, execute at most one
// identifier-mapping lookup, format the result.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nlbio/bridgedb-assistant/internal/bridgedb"
	"github.com/nlbio/bridgedb-assistant/internal/docs"
	"github.com/nlbio/bridgedb-assistant/internal/llm"
)

//go:generate mockgen -source=orchestrator.go -destination=mock_orchestrator.go -package=orchestrator

// CompletionClient defines the LLM operations the orchestrator needs.
type CompletionClient interface {
	Complete(ctx context.Context, contextText, question string) (*llm.Completion, error)
}

// IdentifierMapper defines the upstream mapping operations.
type IdentifierMapper interface {
	MapIdentifier(ctx context.Context, species, source, identifier string) ([]bridgedb.Xref, error)
	ResolveCompound(ctx context.Context, name string) (string, error)
}

// ContextRetriever narrows the documentation context to a question.
type ContextRetriever interface {
	Retrieve(ctx context.Context, question string) (string, error)
}

// Orchestrator wires the completion client, the mapping client, and the
// optional documentation retriever together.
type Orchestrator struct {
	llm       CompletionClient
	mapper    IdentifierMapper
	retriever ContextRetriever
}

// New creates an orchestrator. retriever may be nil, in which case every
// query uses the full built-in documentation block as context.
func New(completions CompletionClient, mapper IdentifierMapper, retriever ContextRetriever) *Orchestrator {
	return &Orchestrator{
		llm:       completions,
		mapper:    mapper,
		retriever: retriever,
	}
}

// mapArgs are the decoded arguments of a map_identifier tool call.
type mapArgs struct {
	Species    string `json:"species"`
	Source     string `json:"source"`
	Identifier string `json:"identifier"`
}

// HandleQuery answers a single question. A completion failure is returned as
// an error with no upstream lookup made; a lookup failure is reported inline
// in the answer text so the next query stays usable.
func (o *Orchestrator) HandleQuery(ctx context.Context, question string) (string, error) {
	contextText := o.contextFor(ctx, question)

	completion, err := o.llm.Complete(ctx, contextText, question)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	if len(completion.ToolCalls) == 0 {
		return completion.Text, nil
	}

	// One upstream lookup per query; extra tool calls are ignored.
	call := completion.ToolCalls[0]
	if call.Name != llm.ToolMapIdentifier {
		slog.Warn("Unknown tool call", "tool", call.Name)
		return fallbackText(completion), nil
	}

	var args mapArgs
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		slog.Warn("Undecodable tool arguments", "error", err, "arguments", call.Arguments)
		return fallbackText(completion), nil
	}
	if args.Source == "" || args.Identifier == "" {
		slog.Warn("Incomplete tool arguments", "arguments", call.Arguments)
		return fallbackText(completion), nil
	}
	if args.Species == "" {
		args.Species = "Human"
	}

	identifier := args.Identifier
	if args.Source == "Cpc" && !isNumeric(identifier) {
		cid, err := o.mapper.ResolveCompound(ctx, identifier)
		if err != nil {
			slog.Error("Compound resolution failed", "error", err, "compound", identifier)
			return fmt.Sprintf("Error: unable to find a PubChem compound for %q: %v", identifier, err), nil
		}
		identifier = cid
	}

	xrefs, err := o.mapper.MapIdentifier(ctx, args.Species, args.Source, identifier)
	if err != nil {
		slog.Error("Mapping lookup failed", "error", err, "species", args.Species, "source", args.Source, "identifier", identifier)
		return fmt.Sprintf("Error: failed to retrieve mappings for %s from %s: %v", identifier, args.Source, err), nil
	}

	return bridgedb.FormatXrefs(identifier, args.Source, xrefs), nil
}

// contextFor returns retrieved documentation when a retriever is configured,
// degrading to the full reference block on any retrieval failure.
func (o *Orchestrator) contextFor(ctx context.Context, question string) string {
	if o.retriever == nil {
		return docs.Reference
	}

	contextText, err := o.retriever.Retrieve(ctx, question)
	if err != nil {
		slog.Warn("Documentation retrieval failed, using full reference", "error", err)
		return docs.Reference
	}

	return contextText
}

// fallbackText surfaces the raw completion when its tool instructions cannot
// be used, so the user still sees what the model said.
func fallbackText(completion *llm.Completion) string {
	if strings.TrimSpace(completion.Text) != "" {
		return completion.Text
	}
	return "I could not interpret the model's response. Please rephrase your question."
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
