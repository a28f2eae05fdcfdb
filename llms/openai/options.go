package openai

type opt func(*OpenAi)

// WithBaseUrl points the provider at an OpenAI-compatible endpoint, such as
// a local Ollama instance or a proxy.
func WithBaseUrl(url string) opt {
	return func(p *OpenAi) {
		p.baseUrl = url
	}
}
