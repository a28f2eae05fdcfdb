package chatadapter

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAll(t *testing.T) {
	provider := NewMockProvider()
	provider.On("Init", mock.Anything).Return(nil)
	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(&Completion{Answer: "Hello!", Tokens: 10}, nil)

	store := NewMemoryHistoryStore()
	llm, _ := New(WithDefaultProvider(provider), WithApiKey("apikey"), WithHistoryStore(store))

	answers := All(t.Context(), llm, "Hello everyone!", 1, 2, 3)

	assert.Len(t, answers, 3)

	for idx, answer := range answers {
		assert.EqualValues(t, idx+1, answer.ConversationId)
		assert.Equal(t, "Hello!", answer.Answer)
		assert.EqualValues(t, 10, answer.Tokens)
		assert.Nil(t, answer.Error)
	}

	for conversationId := range int64(3) {
		assert.Equal(t, 2, store.Len(conversationId+1))
	}
}

func TestAllPartialFailure(t *testing.T) {
	provider := NewMockProvider()
	provider.On("Init", mock.Anything).Return(nil)

	store := NewMemoryHistoryStore()
	llm, _ := New(WithDefaultProvider(provider), WithApiKey("apikey"), WithHistoryStore(store))

	provider.On("Complete", mock.Anything, llm, mock.MatchedBy(func(r Request) bool {
		return len(r.History) == 0
	})).Return(nil, errors.New("model overloaded")).Once()
	provider.On("Complete", mock.Anything, llm, mock.Anything).Return(&Completion{Answer: "Hello!"}, nil)

	answers := All(t.Context(), llm, "Hello everyone!", 1, 2)

	errored := 0

	for _, answer := range answers {
		if answer.Error != nil {
			var upstream *UpstreamError

			assert.ErrorAs(t, answer.Error, &upstream)
			errored += 1
		}
	}

	assert.Equal(t, 1, errored)
}
