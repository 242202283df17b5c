package service

import "errors"

// Sentinel errors of the vault. They are wrapped together with the underlying
// cause, so both can be matched with [errors.Is].
var (
	// ErrValidation is returned for empty note text, an empty password or an
	// unknown theme.
	ErrValidation = errors.New("validation failed")

	// ErrDecryption is returned by Unlock for a wrong password or a stored
	// collection that cannot be decrypted or parsed. The session is locked.
	ErrDecryption = errors.New("incorrect password or corrupted data")

	// ErrNotFound is returned when no note has the requested id.
	ErrNotFound = errors.New("note not found")

	// ErrLocked is returned for note operations while the vault is locked.
	ErrLocked = errors.New("vault is locked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
