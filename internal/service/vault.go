// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

// Vault is the single owner of the decrypted notes, the folder list and the
// session. It implements both [NoteRepository] and [SessionController].
//
// mu is held for the whole of every operation, persistence included, so
// mutations are linearized and readers never see a half-applied change.
type Vault struct {
	store     store.VaultStore
	cipher    crypto.Cipher
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	mu sync.Mutex

	state     State
	password  []byte
	notes     []models.Note
	editingID int64
	editing   bool

	folders       []string
	foldersLoaded bool

	lastActivity time.Time
}

// VaultOption customises a [Vault].
type VaultOption func(*Vault)

// WithClock replaces time.Now for id generation, default dates and idle time.
func WithClock(now func() time.Time) VaultOption {
	return func(v *Vault) {
		v.now = now
	}
}

// NewVault returns a locked vault over vaultStore.
func NewVault(vaultStore store.VaultStore, cipher crypto.Cipher, validator validators.Validator, logger *logger.Logger, opts ...VaultOption) *Vault {
	v := &Vault{
		store:     vaultStore,
		cipher:    cipher,
		validator: validator,
		logger:    logger,
		now:       time.Now,
		state:     Locked,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.lastActivity = v.now()
	return v
}

// Unlock implements [NoteRepository] and [SessionController]. Any failure,
// including a failed attempt while already unlocked, leaves the vault locked.
func (v *Vault) Unlock(ctx context.Context, password string) ([]models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.validator.Validate(ctx, validators.Password(password)); err != nil {
		v.lock()
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	blob, found, err := v.store.LoadBlob(ctx)
	if err != nil {
		v.lock()
		return nil, err
	}

	notes := []models.Note{}
	if found {
		plaintext, err := v.cipher.Decrypt(blob, password)
		if err != nil {
			v.lock()
			v.logger.Warn().Str("func", "Vault.Unlock").Msg("failed to decrypt vault")
			return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
		}

		notes, err = decodeCollection(ctx, plaintext, v.validator)
		if err != nil {
			v.lock()
			v.logger.Warn().Err(err).Str("func", "Vault.Unlock").Msg("decrypted vault is not a valid note collection")
			return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
		}
	}

	v.zeroPassword()
	v.password = []byte(password)
	v.notes = notes
	v.editing = false
	v.editingID = 0
	v.state = Unlocked
	v.touch()

	v.logger.Info().Str("func", "Vault.Unlock").Int("notes", len(notes)).Bool("new_vault", !found).Msg("vault unlocked")

	return models.CloneNotes(notes), nil
}

// Lock implements [SessionController].
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == Unlocked {
		v.logger.Info().Str("func", "Vault.Lock").Msg("vault locked")
	}
	v.lock()
}

// lock requires v.mu.
func (v *Vault) lock() {
	v.zeroPassword()
	v.password = nil
	v.notes = nil
	v.editing = false
	v.editingID = 0
	v.state = Locked
}

func (v *Vault) zeroPassword() {
	for i := range v.password {
		v.password[i] = 0
	}
}

func (v *Vault) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

func (v *Vault) IsUnlocked() bool {
	return v.State() == Unlocked
}

func (v *Vault) IdleFor() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.now().Sub(v.lastActivity)
}

// LockIfIdle implements [SessionController]. The idle check and the lock run
// under one hold of v.mu, so activity cannot slip in between them.
func (v *Vault) LockIfIdle(timeout time.Duration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if timeout <= 0 || v.state != Unlocked {
		return false
	}
	idle := v.now().Sub(v.lastActivity)
	if idle < timeout {
		return false
	}

	v.lock()
	v.logger.Info().Str("func", "Vault.LockIfIdle").Dur("idle", idle).Msg("vault locked after inactivity")
	return true
}

// touch requires v.mu.
func (v *Vault) touch() {
	v.lastActivity = v.now()
}

// requireUnlocked requires v.mu.
func (v *Vault) requireUnlocked() error {
	if v.state != Unlocked {
		return ErrLocked
	}
	return nil
}

// persist encrypts notes with the session password and overwrites the stored
// blob. It does not touch v.notes; callers commit only after it succeeds.
func (v *Vault) persist(ctx context.Context, notes []models.Note) error {
	plaintext, err := encodeCollection(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	blob, err := v.cipher.Encrypt(plaintext, string(v.password))
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.persist").Msg("failed to encrypt vault")
		return fmt.Errorf("encrypt notes: %w", err)
	}

	if err = v.store.SaveBlob(ctx, blob); err != nil {
		return err
	}

	return nil
}
