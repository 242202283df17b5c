package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-vault/models"
)

// BeginEdit implements [SessionController].
func (v *Vault) BeginEdit(ctx context.Context, id int64) (models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.requireUnlocked(); err != nil {
		return models.Note{}, err
	}

	idx := v.indexOf(id)
	if idx < 0 {
		return models.Note{}, ErrNotFound
	}

	v.editing = true
	v.editingID = id
	v.touch()

	return v.notes[idx].Clone(), nil
}

func (v *Vault) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.editing = false
	v.editingID = 0
}

func (v *Vault) EditingID() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.editingID, v.editing
}

// Save implements [SessionController]. When the edit target has been deleted
// in the meantime the target is cleared and ErrNotFound returned.
func (v *Vault) Save(ctx context.Context, in models.NoteInput) (models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.editing {
		return v.create(ctx, in)
	}

	id := v.editingID
	note, err := v.update(ctx, id, in)
	if err == nil || errors.Is(err, ErrNotFound) {
		v.editing = false
		v.editingID = 0
	}
	return note, err
}
