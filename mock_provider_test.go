package chatadapter

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Init(llm Adapter) error {
	return p.Called(llm).Error(0)
}

func (p *MockProvider) Complete(ctx context.Context, llm Adapter, r Request) (*Completion, error) {
	args := p.Called(ctx, llm, r)

	if completion := args.Get(0); completion != nil {
		return completion.(*Completion), args.Error(1)
	}

	return nil, args.Error(1)
}

func (p *MockProvider) CompleteStream(ctx context.Context, llm Adapter, r Request) (<-chan StreamChunk, error) {
	args := p.Called(ctx, llm, r)

	if stream := args.Get(0); stream != nil {
		return stream.(<-chan StreamChunk), args.Error(1)
	}

	return nil, args.Error(1)
}

func (p *MockProvider) CountTokens(ctx context.Context, llm Adapter, history []Message) (int32, error) {
	args := p.Called(ctx, llm, history)

	return args.Get(0).(int32), args.Error(1)
}
