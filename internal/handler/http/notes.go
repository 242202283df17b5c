package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

// listNotes returns every note, or only those of ?folder= when given.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.Notes.FilterByFolder(r.Context(), r.URL.Query().Get("folder"))
	if err != nil {
		h.writeError(w, r, "http.listNotes", err)
		return
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var in models.NoteInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, "http.createNote", err)
		return
	}

	note, err := h.services.Notes.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "http.createNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "http.getNote", err)
		return
	}

	note, err := h.services.Notes.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "http.getNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "http.updateNote", err)
		return
	}

	var in models.NoteInput
	if err = decodeJSON(r, &in); err != nil {
		h.writeError(w, r, "http.updateNote", err)
		return
	}

	note, err := h.services.Notes.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, "http.updateNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "http.deleteNote", err)
		return
	}

	if err = h.services.Notes.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "http.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
