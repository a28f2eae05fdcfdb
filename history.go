package chatadapter

import "sync"

type Role int

const (
	RoleSystem Role = iota
	RoleUser
	RoleAi
)

// Message is a single turn of a conversation, in a provider-neutral form.
// Providers translate it to and from their native content types.
type Message struct {
	Role Role
	Text string
}

// HistoryStore maintains the context of previous messages exchanged with a
// provider, keyed by conversation id, to be able to send it with every
// request.
//
// Implementations must be safe for concurrent use: the adapter calls into the
// store from whichever goroutine invoked it.
type HistoryStore interface {
	// Load returns the recorded history for a conversation, oldest first.
	// An unknown conversation loads as empty.
	Load(conversationId int64) []Message
	// Replace swaps the whole history of a conversation for a new one.
	Replace(conversationId int64, messages []Message)
	// Append records messages at the end of a conversation's history.
	Append(conversationId int64, messages ...Message)
	// Reset removes all history for a conversation. Resetting an unknown
	// conversation is a no-op.
	Reset(conversationId int64)
	// Len returns the number of recorded messages for a conversation.
	Len(conversationId int64) int
}

// MemoryHistoryStore is the default HistoryStore, holding every conversation
// in process memory. Histories are created lazily on first write and live
// until Reset or the end of the process.
type MemoryHistoryStore struct {
	mu            sync.Mutex
	conversations map[int64][]Message
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{
		conversations: make(map[int64][]Message),
	}
}

func (s *MemoryHistoryStore) Load(conversationId int64) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.conversations[conversationId]
	out := make([]Message, len(history))
	copy(out, history)

	return out
}

func (s *MemoryHistoryStore) Replace(conversationId int64, messages []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conversationId] = messages
}

func (s *MemoryHistoryStore) Append(conversationId int64, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conversationId] = append(s.conversations[conversationId], messages...)
}

func (s *MemoryHistoryStore) Reset(conversationId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, conversationId)
}

func (s *MemoryHistoryStore) Len(conversationId int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conversations[conversationId])
}
