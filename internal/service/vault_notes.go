package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-vault/models"
)

// Create implements [NoteRepository].
func (v *Vault) Create(ctx context.Context, in models.NoteInput) (models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.create(ctx, in)
}

// create requires v.mu.
func (v *Vault) create(ctx context.Context, in models.NoteInput) (models.Note, error) {
	if err := v.requireUnlocked(); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	note := v.buildNote(nextID(v.notes, v.now()), in)

	next := append(models.CloneNotes(v.notes), note)
	if err := v.persist(ctx, next); err != nil {
		return models.Note{}, err
	}
	v.notes = next
	v.touch()

	v.logger.Debug().Str("func", "Vault.Create").Int64("id", note.ID).Msg("note created")

	return note.Clone(), nil
}

// Update implements [NoteRepository]. The note keeps its id and position.
func (v *Vault) Update(ctx context.Context, id int64, in models.NoteInput) (models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.update(ctx, id, in)
}

// update requires v.mu.
func (v *Vault) update(ctx context.Context, id int64, in models.NoteInput) (models.Note, error) {
	if err := v.requireUnlocked(); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	idx := v.indexOf(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	note := v.buildNote(id, in)

	next := models.CloneNotes(v.notes)
	next[idx] = note
	if err := v.persist(ctx, next); err != nil {
		return models.Note{}, err
	}
	v.notes = next
	v.touch()

	v.logger.Debug().Str("func", "Vault.Update").Int64("id", id).Msg("note updated")

	return note.Clone(), nil
}

// Delete implements [NoteRepository]. The collection is persisted even when
// id is absent.
func (v *Vault) Delete(ctx context.Context, id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.requireUnlocked(); err != nil {
		return err
	}

	next := make([]models.Note, 0, len(v.notes))
	for _, n := range v.notes {
		if n.ID != id {
			next = append(next, n.Clone())
		}
	}

	if err := v.persist(ctx, next); err != nil {
		return err
	}
	v.notes = next
	if v.editing && v.editingID == id {
		v.editing = false
		v.editingID = 0
	}
	v.touch()

	v.logger.Debug().Str("func", "Vault.Delete").Int64("id", id).Msg("note deleted")

	return nil
}

// FindByID implements [NoteRepository].
func (v *Vault) FindByID(_ context.Context, id int64) (models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.requireUnlocked(); err != nil {
		return models.Note{}, err
	}

	idx := v.indexOf(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	v.touch()

	return v.notes[idx].Clone(), nil
}

// ListAll implements [NoteRepository].
func (v *Vault) ListAll(ctx context.Context) ([]models.Note, error) {
	return v.FilterByFolder(ctx, "")
}

// FilterByFolder implements [NoteRepository].
func (v *Vault) FilterByFolder(_ context.Context, folder string) ([]models.Note, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.requireUnlocked(); err != nil {
		return nil, err
	}
	v.touch()

	out := make([]models.Note, 0, len(v.notes))
	for _, n := range v.notes {
		if folder == "" || n.Folder == folder {
			out = append(out, n.Clone())
		}
	}
	return out, nil
}

// buildNote applies the form rules: text trimmed, tags trimmed with blanks
// dropped, missing date set to today (UTC).
func (v *Vault) buildNote(id int64, in models.NoteInput) models.Note {
	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	date := in.Date
	if date == "" {
		date = v.now().UTC().Format(models.DateLayout)
	}

	return models.Note{
		ID:     id,
		Text:   strings.TrimSpace(in.Text),
		Tags:   tags,
		Folder: in.Folder,
		Date:   date,
	}
}

// indexOf requires v.mu.
func (v *Vault) indexOf(id int64) int {
	return slices.IndexFunc(v.notes, func(n models.Note) bool { return n.ID == id })
}
