// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: empty path for %s backend", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	// argon2 requires at least 8 KiB of memory per lane
	if cfg.Crypto.ArgonTime < 1 || cfg.Crypto.ArgonThreads < 1 ||
		cfg.Crypto.ArgonMemoryKiB < 8*uint32(cfg.Crypto.ArgonThreads) {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.AutoLockAfter < 0 || cfg.Workers.AutoLockCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
