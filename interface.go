package chatadapter

import (
	"context"
	"net/http"
)

// Provider is implemented by every supported LLM backend.
type Provider interface {
	// Init builds the provider client from the adapter configuration. It is
	// called once, from New.
	Init(llm Adapter) error
	// Complete forwards a conversation plus its new user query to the remote
	// model and returns the full answer.
	Complete(ctx context.Context, llm Adapter, r Request) (*Completion, error)
	// CompleteStream is Complete with incremental delivery. Every chunk
	// carries the text accumulated so far; the final chunk carries the token
	// count. The channel is closed once the stream ends.
	CompleteStream(ctx context.Context, llm Adapter, r Request) (<-chan StreamChunk, error)
	// CountTokens reports the provider-counted token size of a conversation.
	// Providers without a counting endpoint embed CountTokensUnsupported.
	CountTokens(ctx context.Context, llm Adapter, history []Message) (int32, error)
}

// Adapter is the subset of the adapter configuration providers read from.
type Adapter interface {
	DefaultModel() string
	ApiKey() string
	SystemInstruction() string
	HttpClient() *http.Client
}

// Completion is a provider's response to a single chat exchange.
type Completion struct {
	// Answer is the text of the model's reply.
	Answer string
	// Model is the model version reported by the provider.
	Model string
	// Tokens is the provider-reported usage for the exchange. Its unit is
	// defined by the provider.
	Tokens int32
}
