package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown backend or a missing
	// path for a durable backend.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates Argon2id parameters the KDF rejects.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidServerConfigs indicates a missing API address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a negative auto-lock duration.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
