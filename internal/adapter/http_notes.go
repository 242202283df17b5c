package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-vault/models"
)

// Unlock implements [service.NoteRepository] and [service.SessionController].
func (h *HTTPVaultAdapter) Unlock(ctx context.Context, password string) ([]models.Note, error) {
	var out models.NotesResponse
	req := h.jsonRequest(ctx, models.UnlockRequest{Password: password}).SetResult(&out)
	if err := h.do(req, http.MethodPost, "/api/session/unlock", "unlock"); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (h *HTTPVaultAdapter) Create(ctx context.Context, in models.NoteInput) (models.Note, error) {
	var note models.Note
	req := h.jsonRequest(ctx, in).SetResult(&note)
	if err := h.do(req, http.MethodPost, "/api/notes", "create"); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *HTTPVaultAdapter) Update(ctx context.Context, id int64, in models.NoteInput) (models.Note, error) {
	var note models.Note
	req := h.jsonRequest(ctx, in).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&note)
	if err := h.do(req, http.MethodPut, "/api/notes/{id}", "update"); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *HTTPVaultAdapter) Delete(ctx context.Context, id int64) error {
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
	return h.do(req, http.MethodDelete, "/api/notes/{id}", "delete")
}

func (h *HTTPVaultAdapter) FindByID(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note
	req := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&note)
	if err := h.do(req, http.MethodGet, "/api/notes/{id}", "findByID"); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *HTTPVaultAdapter) ListAll(ctx context.Context) ([]models.Note, error) {
	return h.FilterByFolder(ctx, "")
}

func (h *HTTPVaultAdapter) FilterByFolder(ctx context.Context, folder string) ([]models.Note, error) {
	var out models.NotesResponse
	req := h.request(ctx).SetResult(&out)
	if folder != "" {
		req.SetQueryParam("folder", folder)
	}
	if err := h.do(req, http.MethodGet, "/api/notes", "filterByFolder"); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (h *HTTPVaultAdapter) AddFolder(ctx context.Context, name string) (bool, error) {
	var out models.FoldersResponse
	req := h.jsonRequest(ctx, models.FolderRequest{Name: name}).SetResult(&out)
	if err := h.do(req, http.MethodPost, "/api/folders", "addFolder"); err != nil {
		return false, err
	}
	if out.Added == nil {
		return false, ErrUnexpectedResponse
	}
	return *out.Added, nil
}

func (h *HTTPVaultAdapter) Folders(ctx context.Context) ([]string, error) {
	var out models.FoldersResponse
	req := h.request(ctx).SetResult(&out)
	if err := h.do(req, http.MethodGet, "/api/folders", "folders"); err != nil {
		return nil, err
	}
	return out.Folders, nil
}
