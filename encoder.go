package rafters

import (
	"errors"

	"github.com/pthm/rafters/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new settings encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// EncodeSettings turns the raw settings of a component into a token, so
// the same component can be rebuilt from a URL or form value:
//
//	token, err := rafters.EncodeSettings(enc, card.RawSettings(), false)
//	...
//	settings, err := rafters.DecodeSettings(enc, token, false)
//	card := NewCard(settings)
//
// Signed tokens are readable by clients; pass sensitive to encrypt.
func EncodeSettings(enc *Encoder, s Settings, sensitive bool) (string, error) {
	return enc.Encode(s, sensitive)
}

// DecodeSettings reverses EncodeSettings. Failures are reported as
// ErrInvalidFormat, ErrSignatureInvalid or ErrDecryptFailed.
func DecodeSettings(enc *Encoder, token string, sensitive bool) (Settings, error) {
	m, err := enc.Decode(token, sensitive)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return Settings(m), nil
}

// wrapEncodingError wraps encoding package errors with rafters sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
