package chatadapter

import "github.com/samber/lo"

// Request is a fully resolved chat request handed to a provider: the
// conversation so far, the new user query, and any per-call overrides.
type Request struct {
	// History is the prior conversation, oldest turn first.
	History []Message
	// Query is the new user message.
	Query string

	Model       *string
	MaxTokens   *int
	Temperature *float64
	TopP        *float64

	provider *string
}

// SendOption tweaks a single Send, SendStream or Stats call.
type SendOption func(*Request)

// WithModel overrides the model used for this specific call.
//
// If not provided, the default model set on the adapter is used.
func WithModel(model string) SendOption {
	return func(r *Request) {
		r.Model = lo.ToPtr(model)
	}
}

// WithMaxTokens limits how many tokens the provider can emit for its answer.
func WithMaxTokens(tokens int) SendOption {
	return func(r *Request) {
		r.MaxTokens = lo.ToPtr(tokens)
	}
}

// WithTemperature sets a custom temperature value to be used.
//
// Default value depends on the model.
func WithTemperature(temp float64) SendOption {
	return func(r *Request) {
		r.Temperature = lo.ToPtr(temp)
	}
}

// WithTopP sets the `top_p` parameter.
func WithTopP(topp float64) SendOption {
	return func(r *Request) {
		r.TopP = lo.ToPtr(topp)
	}
}

// ToProvider routes this call to a named provider instead of the default one.
func ToProvider(name string) SendOption {
	return func(r *Request) {
		r.provider = lo.ToPtr(name)
	}
}
