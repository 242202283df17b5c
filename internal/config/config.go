// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backends understood by the store package.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// StructuredConfig is the merged configuration of both binaries.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Crypto Crypto `envPrefix:"CRYPTO_"`

	Server Server `envPrefix:"SERVER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	Export Export `envPrefix:"EXPORT_"`

	Client Client `envPrefix:"CLIENT_"`

	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name; empty means debug.
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	LogFile string `env:"LOG_FILE"`
}

// Storage selects the durable key-value surface holding the vault.
type Storage struct {
	// Backend is one of memory, file or sqlite.
	Backend string `env:"BACKEND"`

	// Path is the JSON document (file) or database file (sqlite).
	Path string `env:"PATH"`
}

// Crypto holds Argon2id tuning used when the vault is encrypted. Decryption
// always uses the parameters recorded in the blob header.
type Crypto struct {
	ArgonTime      uint32 `env:"ARGON_TIME"`
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`
	ArgonThreads   uint8  `env:"ARGON_THREADS"`
}

// Server configures the loopback JSON API.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures background jobs.
type Workers struct {
	// AutoLockAfter locks an idle unlocked vault. Zero disables auto-lock.
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`

	AutoLockCheckInterval time.Duration `env:"AUTO_LOCK_CHECK_INTERVAL"`
}

// Export configures the plaintext export view.
type Export struct {
	// DateLayout is a Go time layout used for the localized note date.
	DateLayout string `env:"DATE_LAYOUT"`
}

// Client configures the terminal client.
type Client struct {
	// RemoteAddress attaches the client to a running loopback API instead of
	// opening the storage itself.
	RemoteAddress string `env:"REMOTE_ADDRESS"`
}

// Default values applied to fields that no source has set.
const (
	DefaultStorageBackend        = BackendFile
	DefaultFilePath              = "vault.json"
	DefaultSQLitePath            = "vault.db"
	DefaultArgonTime             = 1
	DefaultArgonMemoryKiB        = 64 * 1024
	DefaultArgonThreads          = 4
	DefaultHTTPAddress           = "127.0.0.1:8080"
	DefaultRequestTimeout        = 10 * time.Second
	DefaultAutoLockCheckInterval = 30 * time.Second
	DefaultDateLayout            = "1/2/2006"
)

// GetStructuredConfig builds the configuration from the environment, the
// process command line, and an optional JSON file, applies defaults, and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case BackendFile:
			cfg.Storage.Path = DefaultFilePath
		case BackendSQLite:
			cfg.Storage.Path = DefaultSQLitePath
		}
	}

	if cfg.Crypto.ArgonTime == 0 {
		cfg.Crypto.ArgonTime = DefaultArgonTime
	}
	if cfg.Crypto.ArgonMemoryKiB == 0 {
		cfg.Crypto.ArgonMemoryKiB = DefaultArgonMemoryKiB
	}
	if cfg.Crypto.ArgonThreads == 0 {
		cfg.Crypto.ArgonThreads = DefaultArgonThreads
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workers.AutoLockCheckInterval == 0 {
		cfg.Workers.AutoLockCheckInterval = DefaultAutoLockCheckInterval
	}

	if cfg.Export.DateLayout == "" {
		cfg.Export.DateLayout = DefaultDateLayout
	}
}
