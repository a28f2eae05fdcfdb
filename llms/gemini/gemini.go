package gemini

import (
	"context"
	"strings"

	chatadapter "github.com/botforge/chat-adapter"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"google.golang.org/genai"
)

// Gemini talks to the Google GenAI API, either through the Gemini API or
// through VertexAI.
type Gemini struct {
	client *genai.Client

	backend  genai.Backend
	project  string
	location string
}

func New(opts ...opt) (*Gemini, error) {
	llm := Gemini{
		backend: genai.BackendGeminiAPI,
	}

	for _, opt := range opts {
		opt(&llm)
	}

	return &llm, nil
}

func (p *Gemini) Init(llm chatadapter.Adapter) error {
	cfg := genai.ClientConfig{
		Project:  p.project,
		Location: p.location,
	}

	if p.backend != genai.BackendUnspecified {
		cfg.Backend = p.backend
	}
	if cfg.Backend == genai.BackendGeminiAPI {
		cfg.APIKey = llm.ApiKey()
	}
	if llm.HttpClient() != nil {
		cfg.HTTPClient = llm.HttpClient()
	}

	client, err := genai.NewClient(context.Background(), &cfg)
	if err != nil {
		return err
	}

	p.client = client

	return nil
}

func (p *Gemini) Complete(ctx context.Context, llm chatadapter.Adapter, r chatadapter.Request) (*chatadapter.Completion, error) {
	model, contents, cfg := p.buildRequest(llm, r)

	response, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "LLM provider failed to generate content")
	}
	if len(response.Candidates) == 0 {
		return nil, errors.New("LLM provider returned no candidates")
	}

	completion := chatadapter.Completion{
		Model:  response.ModelVersion,
		Answer: response.Text(),
	}

	if response.UsageMetadata != nil {
		completion.Tokens = response.UsageMetadata.TotalTokenCount
	}

	return &completion, nil
}

func (p *Gemini) CompleteStream(ctx context.Context, llm chatadapter.Adapter, r chatadapter.Request) (<-chan chatadapter.StreamChunk, error) {
	model, contents, cfg := p.buildRequest(llm, r)

	out := make(chan chatadapter.StreamChunk)

	go func() {
		defer close(out)

		var answer strings.Builder
		var tokens int32

		for response, err := range p.client.Models.GenerateContentStream(ctx, model, contents, cfg) {
			if err != nil {
				out <- chatadapter.StreamChunk{Err: errors.Wrap(err, "LLM provider failed to stream content")}

				return
			}

			if response.UsageMetadata != nil {
				tokens = response.UsageMetadata.TotalTokenCount
			}

			if text := response.Text(); text != "" {
				answer.WriteString(text)

				out <- chatadapter.StreamChunk{Text: answer.String(), Status: chatadapter.StreamInProgress}
			}
		}

		out <- chatadapter.StreamChunk{Text: answer.String(), Status: chatadapter.StreamFinished, Tokens: tokens}
	}()

	return out, nil
}

func (p *Gemini) CountTokens(ctx context.Context, llm chatadapter.Adapter, history []chatadapter.Message) (int32, error) {
	if len(history) == 0 {
		return 0, nil
	}

	contents := lo.Map(history, func(msg chatadapter.Message, _ int) *genai.Content {
		return genai.NewContentFromText(msg.Text, role(msg))
	})

	response, err := p.client.Models.CountTokens(ctx, llm.DefaultModel(), contents, nil)
	if err != nil {
		return 0, errors.Wrap(err, "LLM provider failed to count tokens")
	}

	return response.TotalTokens, nil
}

func (p *Gemini) buildRequest(llm chatadapter.Adapter, r chatadapter.Request) (string, []*genai.Content, *genai.GenerateContentConfig) {
	cfg := genai.GenerateContentConfig{}

	if instruction := llm.SystemInstruction(); instruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(instruction)},
		}
	}

	if r.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*r.MaxTokens)
	}
	if r.Temperature != nil {
		cfg.Temperature = lo.ToPtr(float32(*r.Temperature))
	}
	if r.TopP != nil {
		cfg.TopP = lo.ToPtr(float32(*r.TopP))
	}

	contents := make([]*genai.Content, 0, len(r.History)+1)

	for _, msg := range r.History {
		// A system turn recorded in the history overrides the configured
		// instruction rather than being replayed as a user turn.
		if msg.Role == chatadapter.RoleSystem {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{genai.NewPartFromText(msg.Text)},
			}

			continue
		}

		contents = append(contents, genai.NewContentFromText(msg.Text, role(msg)))
	}

	contents = append(contents, genai.NewContentFromText(r.Query, genai.RoleUser))

	model := llm.DefaultModel()
	if r.Model != nil {
		model = *r.Model
	}

	return model, contents, &cfg
}

func role(msg chatadapter.Message) genai.Role {
	if msg.Role == chatadapter.RoleAi {
		return genai.RoleModel
	}

	return genai.RoleUser
}
