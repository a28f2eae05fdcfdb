package openai

import (
	"context"
	"strings"

	chatadapter "github.com/botforge/chat-adapter"
	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAi talks to the OpenAI chat completions API, or to any compatible
// endpoint through WithBaseUrl.
//
// The chat completions API has no token counting endpoint, so Stats on this
// provider reports chatadapter.ErrCountTokensUnsupported.
type OpenAi struct {
	chatadapter.CountTokensUnsupported

	client openai.Client

	baseUrl string
}

func New(opts ...opt) (*OpenAi, error) {
	llm := OpenAi{}

	for _, opt := range opts {
		opt(&llm)
	}

	return &llm, nil
}

func (p *OpenAi) Init(llm chatadapter.Adapter) error {
	opts := []option.RequestOption{
		option.WithAPIKey(llm.ApiKey()),
	}

	if p.baseUrl != "" {
		opts = append(opts, option.WithBaseURL(p.baseUrl))
	}
	if llm.HttpClient() != nil {
		opts = append(opts, option.WithHTTPClient(llm.HttpClient()))
	}

	p.client = openai.NewClient(opts...)

	return nil
}

func (p *OpenAi) Complete(ctx context.Context, llm chatadapter.Adapter, r chatadapter.Request) (*chatadapter.Completion, error) {
	cfg := p.buildRequest(llm, r)

	response, err := p.client.Chat.Completions.New(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "LLM provider failed to generate content")
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("LLM provider returned no choices")
	}

	return &chatadapter.Completion{
		Model:  response.Model,
		Answer: response.Choices[0].Message.Content,
		Tokens: int32(response.Usage.TotalTokens),
	}, nil
}

func (p *OpenAi) CompleteStream(ctx context.Context, llm chatadapter.Adapter, r chatadapter.Request) (<-chan chatadapter.StreamChunk, error) {
	cfg := p.buildRequest(llm, r)
	cfg.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, cfg)

	out := make(chan chatadapter.StreamChunk)

	go func() {
		defer close(out)
		defer stream.Close()

		var answer strings.Builder
		var tokens int64

		for stream.Next() {
			chunk := stream.Current()

			if chunk.Usage.TotalTokens > 0 {
				tokens = chunk.Usage.TotalTokens
			}

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				answer.WriteString(chunk.Choices[0].Delta.Content)

				out <- chatadapter.StreamChunk{Text: answer.String(), Status: chatadapter.StreamInProgress}
			}
		}

		if err := stream.Err(); err != nil {
			out <- chatadapter.StreamChunk{Err: errors.Wrap(err, "LLM provider failed to stream content")}

			return
		}

		out <- chatadapter.StreamChunk{Text: answer.String(), Status: chatadapter.StreamFinished, Tokens: int32(tokens)}
	}()

	return out, nil
}

func (p *OpenAi) buildRequest(llm chatadapter.Adapter, r chatadapter.Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(r.History)+2)

	if instruction := llm.SystemInstruction(); instruction != "" {
		messages = append(messages, openai.SystemMessage(instruction))
	}

	for _, msg := range r.History {
		switch msg.Role {
		case chatadapter.RoleAi:
			messages = append(messages, openai.AssistantMessage(msg.Text))
		case chatadapter.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Text))
		default:
			messages = append(messages, openai.UserMessage(msg.Text))
		}
	}

	messages = append(messages, openai.UserMessage(r.Query))

	model := llm.DefaultModel()
	if r.Model != nil {
		model = *r.Model
	}

	cfg := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}

	if r.MaxTokens != nil {
		cfg.MaxCompletionTokens = openai.Int(int64(*r.MaxTokens))
	}
	if r.Temperature != nil {
		cfg.Temperature = openai.Float(*r.Temperature)
	}
	if r.TopP != nil {
		cfg.TopP = openai.Float(*r.TopP)
	}

	return cfg
}
