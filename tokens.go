package chatadapter

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrCountTokensUnsupported is returned by providers whose API has no token
// counting endpoint.
var ErrCountTokensUnsupported = errors.New("provider does not support token counting")

// CountTokensUnsupported is embedded by providers that cannot count tokens.
type CountTokensUnsupported struct{}

func (CountTokensUnsupported) CountTokens(context.Context, Adapter, []Message) (int32, error) {
	return 0, ErrCountTokensUnsupported
}
