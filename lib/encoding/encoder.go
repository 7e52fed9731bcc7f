// Package encoding serialises small values for round trips through the
// client, such as validation state carried across a redirect. Values are
// packed with msgpack and then either signed or sealed.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// Encoder handles encoding and decoding of values.
// It supports two modes:
//   - Signed (default): base64 msgpack + HMAC signature, readable but tamper-proof
//   - Sealed: AES-256-GCM, fully opaque
type Encoder struct {
	key     []byte
	gcm     cipher.AEAD
	purpose []byte
}

// NewEncoder creates a new encoder with the given key. Keys shorter than 32
// bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: key is required")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		key: key,
		gcm: gcm,
	}, nil
}

// WithPurpose returns an encoder whose output only decodes under the same
// purpose. The purpose is mixed into the signature and used as additional
// data when sealing.
func (e *Encoder) WithPurpose(purpose string) *Encoder {
	c := *e
	c.purpose = []byte(purpose)
	return &c
}

// Encode packs v and returns a URL- and cookie-safe string.
func (e *Encoder) Encode(v any, sealed bool) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}

	if sealed {
		return e.seal(packed)
	}
	return e.sign(packed), nil
}

// Decode reverses Encode into v, which must be a pointer.
func (e *Encoder) Decode(encoded string, sealed bool, v any) error {
	var packed []byte
	var err error

	if sealed {
		packed, err = e.open(encoded)
	} else {
		packed, err = e.verify(encoded)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(data))
	return b64 + "." + sig
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	parts := strings.SplitN(encoded, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}

	return data, nil
}

func (e *Encoder) seal(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := e.gcm.Seal(nonce, nonce, data, e.purpose)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (e *Encoder) open(encoded string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	ciphertext = ciphertext[e.gcm.NonceSize():]

	plain, err := e.gcm.Open(nil, nonce, ciphertext, e.purpose)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plain, nil
}

// mac is a truncated HMAC-SHA256 over the purpose, a zero byte and data.
func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(e.purpose)
	m.Write([]byte{0})
	m.Write(data)
	return m.Sum(nil)[:16]
}
