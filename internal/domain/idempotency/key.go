package idempotency

import (
	"errors"
	"regexp"
)

const MaxKeyLength = 50

var (
	ErrEmptyKey        = errors.New("idempotency key cannot be empty")
	ErrKeyTooLong      = errors.New("idempotency key must be at most 50 characters long")
	ErrInvalidKeyChars = errors.New("idempotency key contains invalid characters")
)

// Unreserved URI characters plus ':' so keys survive headers, forms and URLs unescaped.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._~:\-]+$`)

// Key is a caller-supplied token identifying one logical request.
type Key struct {
	value string
}

func NewKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, ErrEmptyKey
	}
	if len(raw) > MaxKeyLength {
		return Key{}, ErrKeyTooLong
	}
	if !keyPattern.MatchString(raw) {
		return Key{}, ErrInvalidKeyChars
	}
	return Key{value: raw}, nil
}

func (k Key) String() string { return k.value }
