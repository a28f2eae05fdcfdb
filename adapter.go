package chatadapter

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
)

const (
	defaultProvider = "__DEFAULT__"
)

// ChatAdapter is the main entrypoint for holding conversations with an LLM
// provider. It forwards each message together with the conversation history
// kept in its store, and records every completed exchange.
type ChatAdapter struct {
	providers       map[string]Provider
	defaultProvider Provider

	store      HistoryStore
	httpClient *http.Client
	log        *slog.Logger

	defaultModel      string
	apiKey            string
	systemInstruction string
}

// New creates a new ChatAdapter with the given options.
// It initializes the registered LLM providers and returns a configured
// adapter. An API key is required.
//
// Example usage:
//
//	llm, err := chatadapter.New(
//		chatadapter.WithDefaultProvider(provider),
//		chatadapter.WithApiKey(os.Getenv("CHAT_API_KEY")),
//		chatadapter.WithDefaultModel("gemini-1.5-pro-latest"),
//	)
func New(opts ...adapterOption) (*ChatAdapter, error) {
	llm := ChatAdapter{
		providers: make(map[string]Provider),
	}

	for _, opt := range opts {
		opt(&llm)
	}

	if llm.apiKey == "" {
		return nil, errors.New("an API key is required")
	}

	if llm.store == nil {
		llm.store = NewMemoryHistoryStore()
	}
	if llm.log == nil {
		llm.log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	for name, provider := range llm.providers {
		if err := provider.Init(&llm); err != nil {
			return nil, errors.Wrapf(err, "could not initialize LLM provider '%s'", name)
		}
	}

	return &llm, nil
}

// GetProvider resolves a provider by name, or the default provider when name
// is nil.
func (llm *ChatAdapter) GetProvider(requestProvider *string) (Provider, error) {
	provider := llm.defaultProvider

	if requestProvider != nil {
		p, ok := llm.providers[*requestProvider]
		if !ok {
			return nil, errors.Newf("unknown provider '%s'", *requestProvider)
		}

		provider = p
	}

	if provider == nil {
		return nil, errors.New("no provider was configured")
	}

	return provider, nil
}

// Send forwards a message to the model within a conversation and returns the
// answer together with the provider-reported token count.
//
// On success the stored history grows by the completed exchange. Any provider
// fault is returned as an *UpstreamError wrapping the original error, and the
// history is left untouched.
func (llm *ChatAdapter) Send(ctx context.Context, conversationId int64, text string, opts ...SendOption) (string, int32, error) {
	r := Request{Query: text}

	for _, opt := range opts {
		opt(&r)
	}

	provider, err := llm.GetProvider(r.provider)
	if err != nil {
		return "", 0, err
	}

	r.History = llm.store.Load(conversationId)

	llm.log.InfoContext(ctx, "sending chat message", "conversation_id", conversationId)

	completion, err := provider.Complete(ctx, llm, r)
	if err != nil {
		llm.log.ErrorContext(ctx, "chat completion failed", "conversation_id", conversationId, "error", err)

		return "", 0, NewUpstreamError(err)
	}

	llm.store.Replace(conversationId, append(r.History,
		Message{Role: RoleUser, Text: text},
		Message{Role: RoleAi, Text: completion.Answer},
	))

	return completion.Answer, completion.Tokens, nil
}

// SendStream is Send with incremental delivery.
//
// The returned channel yields chunks carrying the accumulated answer with
// StreamInProgress, then one final chunk with StreamFinished and the token
// count, and is closed. The stored history is updated with the completed
// exchange before the final chunk is delivered. A chunk with a non-nil Err
// terminates the stream and leaves the history untouched.
func (llm *ChatAdapter) SendStream(ctx context.Context, conversationId int64, text string, opts ...SendOption) (<-chan StreamChunk, error) {
	r := Request{Query: text}

	for _, opt := range opts {
		opt(&r)
	}

	provider, err := llm.GetProvider(r.provider)
	if err != nil {
		return nil, err
	}

	r.History = llm.store.Load(conversationId)

	llm.log.InfoContext(ctx, "sending chat message", "conversation_id", conversationId, "stream", true)

	upstream, err := provider.CompleteStream(ctx, llm, r)
	if err != nil {
		llm.log.ErrorContext(ctx, "chat completion failed", "conversation_id", conversationId, "error", err)

		return nil, NewUpstreamError(err)
	}

	out := make(chan StreamChunk)

	go func() {
		defer close(out)

		for chunk := range upstream {
			if chunk.Err != nil {
				llm.log.ErrorContext(ctx, "chat completion failed", "conversation_id", conversationId, "error", chunk.Err)

				out <- StreamChunk{Err: NewUpstreamError(chunk.Err)}

				return
			}

			if chunk.Status == StreamFinished {
				llm.store.Replace(conversationId, append(r.History,
					Message{Role: RoleUser, Text: text},
					Message{Role: RoleAi, Text: chunk.Text},
				))
			}

			out <- chunk
		}
	}()

	return out, nil
}

// Reset discards the stored history for a conversation. Resetting an unknown
// conversation is a no-op.
func (llm *ChatAdapter) Reset(conversationId int64) {
	llm.store.Reset(conversationId)

	llm.log.Info("conversation history reset", "conversation_id", conversationId)
}

// Stats reports the number of recorded messages in a conversation and its
// token count as counted by the provider.
//
// The message count is valid even when token counting fails; providers
// without a counting endpoint report ErrCountTokensUnsupported.
func (llm *ChatAdapter) Stats(ctx context.Context, conversationId int64) (int, int32, error) {
	provider, err := llm.GetProvider(nil)
	if err != nil {
		return 0, 0, err
	}

	history := llm.store.Load(conversationId)

	tokens, err := provider.CountTokens(ctx, llm, history)
	if err != nil {
		if errors.Is(err, ErrCountTokensUnsupported) {
			return len(history), 0, err
		}

		return len(history), 0, NewUpstreamError(err)
	}

	return len(history), tokens, nil
}

func (llm ChatAdapter) DefaultModel() string {
	return llm.defaultModel
}

func (llm ChatAdapter) ApiKey() string {
	return llm.apiKey
}

func (llm ChatAdapter) SystemInstruction() string {
	return llm.systemInstruction
}

func (llm ChatAdapter) HttpClient() *http.Client {
	return llm.httpClient
}
