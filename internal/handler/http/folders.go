package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.services.Notes.Folders(r.Context())
	if err != nil {
		h.writeError(w, r, "http.listFolders", err)
		return
	}

	utils.WriteJSON(w, models.FoldersResponse{Folders: folders}, http.StatusOK)
}

// addFolder answers 201 when the folder is new and 200 when the list is
// unchanged (blank or duplicate name).
func (h *Handler) addFolder(w http.ResponseWriter, r *http.Request) {
	var req models.FolderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "http.addFolder", err)
		return
	}

	added, err := h.services.Notes.AddFolder(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, r, "http.addFolder", err)
		return
	}

	folders, err := h.services.Notes.Folders(r.Context())
	if err != nil {
		h.writeError(w, r, "http.addFolder", err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, models.FoldersResponse{Added: &added, Folders: folders}, status)
}
