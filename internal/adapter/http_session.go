package adapter

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

// Lock implements [service.SessionController]. A failed call is logged only;
// the server locks itself after inactivity anyway.
func (h *HTTPVaultAdapter) Lock() {
	ctx, cancel := h.backgroundContext()
	defer cancel()

	if err := h.do(h.request(ctx), http.MethodPost, "/api/session/lock", "lock"); err != nil {
		h.logger.Warn().Err(err).Str("func", "adapter.Lock").Msg("remote lock failed")
	}
}

func (h *HTTPVaultAdapter) session() (models.SessionResponse, error) {
	ctx, cancel := h.backgroundContext()
	defer cancel()

	var out models.SessionResponse
	err := h.do(h.request(ctx).SetResult(&out), http.MethodGet, "/api/session", "session")
	return out, err
}

// State reports [service.Locked] when the server cannot be reached.
func (h *HTTPVaultAdapter) State() service.State {
	s, err := h.session()
	if err != nil || s.State != service.Unlocked.String() {
		return service.Locked
	}
	return service.Unlocked
}

func (h *HTTPVaultAdapter) IsUnlocked() bool {
	return h.State() == service.Unlocked
}

func (h *HTTPVaultAdapter) BeginEdit(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note
	req := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&note)
	if err := h.do(req, http.MethodPost, "/api/session/edit/{id}", "beginEdit"); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *HTTPVaultAdapter) CancelEdit() {
	ctx, cancel := h.backgroundContext()
	defer cancel()

	if err := h.do(h.request(ctx), http.MethodDelete, "/api/session/edit", "cancelEdit"); err != nil {
		h.logger.Warn().Err(err).Str("func", "adapter.CancelEdit").Msg("remote cancel edit failed")
	}
}

func (h *HTTPVaultAdapter) EditingID() (int64, bool) {
	s, err := h.session()
	if err != nil || s.EditingID == nil {
		return 0, false
	}
	return *s.EditingID, true
}

func (h *HTTPVaultAdapter) Save(ctx context.Context, in models.NoteInput) (models.Note, error) {
	var note models.Note
	req := h.jsonRequest(ctx, in).SetResult(&note)
	if err := h.do(req, http.MethodPost, "/api/session/save", "save"); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// IdleFor is always zero: inactivity is tracked by the server.
func (h *HTTPVaultAdapter) IdleFor() time.Duration {
	return 0
}

// LockIfIdle never locks: the server's own worker does.
func (h *HTTPVaultAdapter) LockIfIdle(time.Duration) bool {
	return false
}

func (h *HTTPVaultAdapter) Theme(ctx context.Context) (models.Theme, error) {
	var out models.ThemePayload
	if err := h.do(h.request(ctx).SetResult(&out), http.MethodGet, "/api/theme", "theme"); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (h *HTTPVaultAdapter) SetTheme(ctx context.Context, theme models.Theme) error {
	req := h.jsonRequest(ctx, models.ThemePayload{Theme: theme})
	return h.do(req, http.MethodPut, "/api/theme", "setTheme")
}

// GetAppVersion returns an empty string when the server cannot be reached.
func (h *HTTPVaultAdapter) GetAppVersion(ctx context.Context) string {
	var out models.VersionResponse
	if err := h.do(h.request(ctx).SetResult(&out), http.MethodGet, "/api/version", "version"); err != nil {
		return ""
	}
	return out.Version
}
