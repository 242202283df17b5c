package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.services.Preferences.Theme(r.Context())
	if err != nil {
		h.writeError(w, r, "http.getTheme", err)
		return
	}

	utils.WriteJSON(w, models.ThemePayload{Theme: theme}, http.StatusOK)
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	var req models.ThemePayload
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "http.setTheme", err)
		return
	}

	if err := h.services.Preferences.SetTheme(r.Context(), req.Theme); err != nil {
		h.writeError(w, r, "http.setTheme", err)
		return
	}

	utils.WriteJSON(w, req, http.StatusOK)
}
