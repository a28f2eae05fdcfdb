package chatadapter

type StreamStatus int

const (
	// StreamInProgress marks an intermediate chunk of a streaming answer.
	StreamInProgress StreamStatus = iota
	// StreamFinished marks the final chunk. It carries the complete answer
	// and the token count for the exchange.
	StreamFinished
)

// StreamChunk is one item of a streaming answer.
//
// Text holds the answer accumulated so far, not the delta, so every chunk is
// a prefix of the next one. A chunk with a non-nil Err terminates the stream;
// no further chunks follow it.
type StreamChunk struct {
	Text   string
	Status StreamStatus
	Tokens int32
	Err    error
}
