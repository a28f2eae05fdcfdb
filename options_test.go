package chatadapter

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdapterOptions(t *testing.T) {
	provider := NewMockProvider()
	provider.On("Init", mock.Anything).Return(nil)

	store := NewMemoryHistoryStore()
	client := &http.Client{}
	log := slog.Default()

	llm, err := New(
		WithDefaultProvider(provider),
		WithApiKey("apikey"),
		WithDefaultModel("themodel"),
		WithSystemInstruction("You are a helpful assistant."),
		WithHistoryStore(store),
		WithHttpClient(client),
		WithLogger(log),
	)

	assert.Nil(t, err)
	assert.Equal(t, "apikey", llm.ApiKey())
	assert.Equal(t, "themodel", llm.DefaultModel())
	assert.Equal(t, "You are a helpful assistant.", llm.SystemInstruction())
	assert.Equal(t, client, llm.HttpClient())
	assert.Equal(t, store, llm.store)
	assert.Equal(t, log, llm.log)
}

func TestDefaultsApplied(t *testing.T) {
	provider := NewMockProvider()
	provider.On("Init", mock.Anything).Return(nil)

	llm, err := New(WithDefaultProvider(provider), WithApiKey("apikey"))

	assert.Nil(t, err)
	assert.IsType(t, &MemoryHistoryStore{}, llm.store)
	assert.NotNil(t, llm.log)
	assert.Nil(t, llm.HttpClient())
}
