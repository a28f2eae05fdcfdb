package chatadapter

import (
	"log/slog"
	"net/http"
)

type adapterOption func(*ChatAdapter)

// WithProvider registers a named LLM provider.
//
// The first registered provider becomes the default one unless
// WithDefaultProvider is also used.
func WithProvider(name string, provider Provider) adapterOption {
	return func(llm *ChatAdapter) {
		llm.providers[name] = provider

		if llm.defaultProvider == nil {
			llm.defaultProvider = provider
		}
	}
}

// WithDefaultProvider registers the provider used when a call does not name
// one explicitly.
func WithDefaultProvider(provider Provider) adapterOption {
	return func(llm *ChatAdapter) {
		llm.providers[defaultProvider] = provider
		llm.defaultProvider = provider
	}
}

func WithApiKey(key string) adapterOption {
	return func(llm *ChatAdapter) {
		llm.apiKey = key
	}
}

func WithDefaultModel(model string) adapterOption {
	return func(llm *ChatAdapter) {
		llm.defaultModel = model
	}
}

// WithSystemInstruction sets a system prompt sent with every request, in the
// provider-native form. It is not recorded in conversation histories.
func WithSystemInstruction(instruction string) adapterOption {
	return func(llm *ChatAdapter) {
		llm.systemInstruction = instruction
	}
}

// WithHistoryStore replaces the default in-memory conversation store.
//
// Customize it to your needs, for example a file store or a database.
func WithHistoryStore(store HistoryStore) adapterOption {
	return func(llm *ChatAdapter) {
		llm.store = store
	}
}

func WithHttpClient(client *http.Client) adapterOption {
	return func(llm *ChatAdapter) {
		llm.httpClient = client
	}
}

func WithLogger(log *slog.Logger) adapterOption {
	return func(llm *ChatAdapter) {
		llm.log = log
	}
}
