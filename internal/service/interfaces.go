package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-vault/models"
)

// NoteRepository owns the decrypted note collection and the folder list.
// Every returned note or slice is a copy the caller may keep or modify.
type NoteRepository interface {
	// Unlock loads and decrypts the stored collection. A vault with nothing
	// stored unlocks empty.
	Unlock(ctx context.Context, password string) ([]models.Note, error)

	Create(ctx context.Context, in models.NoteInput) (models.Note, error)
	Update(ctx context.Context, id int64, in models.NoteInput) (models.Note, error)
	// Delete removes the note with id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (models.Note, error)
	// ListAll returns notes in insertion order.
	ListAll(ctx context.Context) ([]models.Note, error)
	// FilterByFolder returns the notes of folder; an empty folder means all.
	FilterByFolder(ctx context.Context, folder string) ([]models.Note, error)

	// AddFolder reports whether a new folder was added. Blank and duplicate
	// names are ignored.
	AddFolder(ctx context.Context, name string) (bool, error)
	Folders(ctx context.Context) ([]string, error)
}

// SessionController drives the lock state and the edit target of the
// presentation layer.
type SessionController interface {
	Unlock(ctx context.Context, password string) ([]models.Note, error)
	// Lock forgets the password and the decrypted notes. Idempotent.
	Lock()

	State() State
	IsUnlocked() bool

	BeginEdit(ctx context.Context, id int64) (models.Note, error)
	CancelEdit()
	EditingID() (int64, bool)
	// Save creates a note when nothing is being edited, otherwise updates the
	// edit target and clears it.
	Save(ctx context.Context, in models.NoteInput) (models.Note, error)

	// IdleFor is the time since the last successful operation.
	IdleFor() time.Duration
	// LockIfIdle locks the session when it is unlocked and has been idle for
	// at least timeout, and reports whether it did.
	LockIfIdle(timeout time.Duration) bool
}

// PreferencesService stores presentation preferences that live outside the
// encrypted collection.
type PreferencesService interface {
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
