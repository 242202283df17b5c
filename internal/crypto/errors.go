package crypto

import "errors"

var (
	// ErrDecryption covers wrong passwords, tampering, truncation and
	// unknown formats. Callers must not distinguish between them.
	ErrDecryption = errors.New("decryption failed")
	// ErrEmptyPassword is returned by Encrypt for an empty password.
	ErrEmptyPassword = errors.New("empty password")
)
