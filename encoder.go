package govuk

import (
	"errors"

	"github.com/pthm/govuk/lib/encoding"
)

// Sentinel errors for model state transport.
var (
	ErrStateInvalidFormat = errors.New("govuk: model state has an invalid format")
	ErrStateTampered      = errors.New("govuk: model state failed verification")
)

// StateCodec encodes ModelState for a round trip through the client, so that
// a POST handler can redirect and the following GET can redisplay errors.
type StateCodec struct {
	enc    *encoding.Encoder
	sealed bool
}

// NewStateCodec creates a codec keyed with key. When sealed is true the state
// is encrypted; otherwise it is signed and readable by the client.
func NewStateCodec(key []byte, sealed bool) (*StateCodec, error) {
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		return nil, err
	}
	return &StateCodec{enc: enc.WithPurpose(ModelStateCookie), sealed: sealed}, nil
}

// Encode serialises state.
func (c *StateCodec) Encode(state *ModelState) (string, error) {
	if state == nil {
		state = NewModelState()
	}
	return c.enc.Encode(state, c.sealed)
}

// Decode parses a value produced by Encode.
func (c *StateCodec) Decode(encoded string) (*ModelState, error) {
	state := NewModelState()
	if err := c.enc.Decode(encoded, c.sealed, state); err != nil {
		return nil, wrapEncodingError(err)
	}
	if state.Errors == nil {
		state.Errors = make(map[string][]string)
	}
	if state.Values == nil {
		state.Values = make(map[string]string)
	}
	return state, nil
}

// wrapEncodingError maps encoding package errors onto govuk sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) || errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrStateTampered
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrStateInvalidFormat
	}
	return err
}
