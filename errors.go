package chatadapter

// UpstreamError wraps any fault raised while talking to the remote model,
// whether it came from the transport or from the model itself. The original
// error is preserved as the cause.
type UpstreamError struct {
	cause error
}

func NewUpstreamError(err error) *UpstreamError {
	return &UpstreamError{cause: err}
}

func (e *UpstreamError) Error() string {
	return "upstream provider error: " + e.cause.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}
