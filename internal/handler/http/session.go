package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	resp := models.SessionResponse{State: h.services.Session.State().String()}
	if id, ok := h.services.Session.EditingID(); ok {
		resp.EditingID = &id
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "http.unlock", err)
		return
	}

	notes, err := h.services.Session.Unlock(r.Context(), req.Password)
	if err != nil {
		h.writeError(w, r, "http.unlock", err)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	h.services.Session.Lock()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) beginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "http.beginEdit", err)
		return
	}

	note, err := h.services.Session.BeginEdit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "http.beginEdit", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	h.services.Session.CancelEdit()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var in models.NoteInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, "http.save", err)
		return
	}

	note, err := h.services.Session.Save(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "http.save", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
