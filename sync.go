package chatadapter

import (
	"context"
	"sync"
)

// AsyncAnswer is the outcome of one conversation in a fan-out send.
type AsyncAnswer struct {
	ConversationId int64
	Answer         string
	Tokens         int32
	Error          error
}

// All sends the same message to several conversations concurrently and waits
// for every answer. Answers are returned in the order of the conversation
// ids; each failed conversation carries its own error.
func All(ctx context.Context, llm *ChatAdapter, text string, conversationIds ...int64) []AsyncAnswer {
	var wg sync.WaitGroup

	answers := make([]AsyncAnswer, len(conversationIds))

	for idx, conversationId := range conversationIds {
		wg.Add(1)

		go func() {
			defer wg.Done()

			answer, tokens, err := llm.Send(ctx, conversationId, text)
			if err != nil {
				answers[idx] = AsyncAnswer{ConversationId: conversationId, Error: err}
				return
			}

			answers[idx] = AsyncAnswer{ConversationId: conversationId, Answer: answer, Tokens: tokens}
		}()
	}

	wg.Wait()

	return answers
}
