package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/export"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/utils"
)

// errorStatusList is ordered: the first matching sentinel wins.
var errorStatusList = []struct {
	target error
	status int
}{
	{ErrForeignHost, http.StatusMisdirectedRequest},
	{ErrForeignOrigin, http.StatusForbidden},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{ErrInvalidNoteID, http.StatusBadRequest},
	{ErrInvalidRequestBody, http.StatusBadRequest},

	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrDecryption, http.StatusUnauthorized},
	{service.ErrLocked, http.StatusLocked},
	{service.ErrNotFound, http.StatusNotFound},

	{store.ErrInvalidTheme, http.StatusBadRequest},
	{store.ErrStorage, http.StatusInternalServerError},

	{export.ErrUnsupportedFormat, http.StatusBadRequest},
	{export.ErrNothingToExport, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError keeps request decoding errors distinguishable from the
// generic user messages.
func messageFromError(err error) string {
	if errors.Is(err, ErrForeignHost) || errors.Is(err, ErrForeignOrigin) {
		return app.MsgForeignRequest
	}
	if errors.Is(err, ErrUnsupportedMediaType) {
		return app.MsgJSONRequired
	}
	if errors.Is(err, ErrInvalidNoteID) || errors.Is(err, ErrInvalidRequestBody) {
		return app.MsgInvalidDataProvided
	}
	return app.UserMessage(err)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err), status)
}
