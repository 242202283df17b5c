package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText     = errors.New("note text is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidNoteID = errors.New("invalid note id")
	ErrDuplicateID   = errors.New("duplicate note id")
)
