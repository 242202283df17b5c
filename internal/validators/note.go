package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the identifier of a stored note.
	FieldID = "id"

	// FieldText targets the note body.
	FieldText = "text"

	// FieldNotes targets a whole collection: every entry plus id uniqueness.
	FieldNotes = "notes"
)

// Password is the master password as typed by the user. It is a distinct type
// so it can be dispatched by [NoteValidator.Validate].
type Password string

// NoteValidator implements the Validator interface for note inputs, stored
// notes, note collections and passwords.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - models.NoteInput / *models.NoteInput: text must not be blank;
//   - models.Note / *models.Note: id > 0 and text not empty;
//   - []models.Note: every note valid and ids unique;
//   - Password: not empty.
//
// Returns ErrUnsupportedType for anything else.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateInput(ctx, value, fields...)
	case *models.NoteInput:
		return v.validateInput(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case []models.Note:
		return v.validateCollection(ctx, value)

	case Password:
		if value == "" {
			return ErrEmptyPassword
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateInput(_ context.Context, in models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(in.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNote checks a note loaded from the vault. Text is checked for
// emptiness only: whitespace-only bodies written by older builds are kept.
func (v *NoteValidator) validateNote(_ context.Context, n models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if n.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldText:
			if n.Text == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCollection(ctx context.Context, notes []models.Note) error {
	seen := make(map[int64]struct{}, len(notes))
	for i, n := range notes {
		if err := v.validateNote(ctx, n); err != nil {
			return fmt.Errorf("note #%d: %w", i, err)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("note #%d: %w: %d", i, ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}
