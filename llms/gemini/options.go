package gemini

import "google.golang.org/genai"

type opt func(*Gemini)

// WithBackend represents which Google GenAI backend to use (VertexAI or Gemini).
//
// It only accepts values of `genai.BackendGeminiAPI` or `genai.BackendVertexAI`.
func WithBackend(backend genai.Backend) opt {
	return func(p *Gemini) {
		p.backend = backend
	}
}

// WithProject defines the Google Cloud Platform project to use to connect to VertexAI.
//
// It is only taken into account when using the VertexAI backend.
func WithProject(project string) opt {
	return func(p *Gemini) {
		p.project = project
	}
}

// WithLocation defines the Google Cloud Platform region to use to connect to VertexAI.
//
// It is only taken into account when using the VertexAI backend.
func WithLocation(location string) opt {
	return func(p *Gemini) {
		p.location = location
	}
}
