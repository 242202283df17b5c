package app

import (
	"errors"

	"github.com/MKhiriev/go-note-vault/internal/export"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
)

// UserMessage returns the text shown to the user for err. More specific
// causes are checked before the sentinels that wrap them. An error that
// carries its own user message, such as a failed remote call, keeps it.
func UserMessage(err error) string {
	var carrier interface{ UserMessage() string }

	switch {
	case err == nil:
		return ""
	case errors.As(err, &carrier) && carrier.UserMessage() != "":
		return carrier.UserMessage()
	case errors.Is(err, validators.ErrEmptyPassword):
		return MsgPasswordRequired
	case errors.Is(err, validators.ErrEmptyText):
		return MsgTextAndPasswordRequired
	case errors.Is(err, store.ErrInvalidTheme):
		return MsgInvalidTheme
	case errors.Is(err, service.ErrValidation):
		return MsgInvalidDataProvided
	case errors.Is(err, service.ErrDecryption):
		return MsgIncorrectPassword
	case errors.Is(err, service.ErrLocked):
		return MsgVaultLocked
	case errors.Is(err, service.ErrNotFound):
		return MsgNoteNotFound
	case errors.Is(err, store.ErrStorage):
		return MsgStorageFailure
	case errors.Is(err, export.ErrUnsupportedFormat):
		return MsgUnsupportedFormat
	case errors.Is(err, export.ErrNothingToExport):
		return MsgNothingToExport
	default:
		return MsgInternalServerError
	}
}
