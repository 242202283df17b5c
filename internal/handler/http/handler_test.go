package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	server *httptest.Server
	store  store.VaultStore
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	log := logger.Nop()
	vaultStore := store.NewVaultStore(store.NewMemoryStorage(), log)
	cipher := crypto.NewCipher(crypto.Argon2Params{Time: 1, MemoryKiB: 64, Threads: 1})
	vault := service.NewVault(vaultStore, cipher, validators.NewNoteValidator(), log)

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, log)
	require.NoError(t, err)

	services := &service.Services{
		Notes:       vault,
		Session:     vault,
		Preferences: service.NewPreferencesService(vaultStore, log),
		AppInfo:     appInfo,
	}

	cfg := &config.StructuredConfig{}
	cfg.Export.DateLayout = "02.01.2006"
	cfg.Server.RequestTimeout = 5 * time.Second

	srv := httptest.NewServer(NewHandler(services, cfg, log).Init())
	t.Cleanup(srv.Close)

	return &apiFixture{server: srv, store: vaultStore}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func requireError(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	body := decodeBody[utils.ErrorResponse](t, resp)
	assert.Equal(t, message, body.Error)
}

func TestAPI_NoteLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[models.NotesResponse](t, resp).Notes)

	resp = f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "Buy milk", Tags: []string{"home"}, Date: "2024-03-05"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.Note](t, resp)
	require.Positive(t, created.ID)
	path := "/api/notes/" + strconv.FormatInt(created.ID, 10)

	resp = f.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeBody[models.Note](t, resp))

	resp = f.do(t, http.MethodPut, path, models.NoteInput{Text: "Buy oat milk", Date: "2024-03-05"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Buy oat milk", decodeBody[models.Note](t, resp).Text)

	resp = f.do(t, http.MethodGet, path+"/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Buy oat milk")
	assert.Contains(t, string(text), "05.03.2024")

	resp = f.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[models.NotesResponse](t, resp).Notes)

	resp = f.do(t, http.MethodGet, path, nil)
	requireError(t, resp, http.StatusNotFound, app.MsgNoteNotFound)
}

func TestAPI_ErrorStatuses(t *testing.T) {
	f := newAPIFixture(t)

	// locked
	resp := f.do(t, http.MethodGet, "/api/notes", nil)
	requireError(t, resp, http.StatusLocked, app.MsgVaultLocked)

	resp = f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{})
	requireError(t, resp, http.StatusBadRequest, app.MsgPasswordRequired)

	resp = f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "   "})
	requireError(t, resp, http.StatusBadRequest, app.MsgTextAndPasswordRequired)

	resp = f.do(t, http.MethodPost, "/api/notes", `{"text":"a","extra":1}`)
	requireError(t, resp, http.StatusBadRequest, app.MsgInvalidDataProvided)

	resp = f.do(t, http.MethodPost, "/api/notes", `{"text":"a"} {}`)
	requireError(t, resp, http.StatusBadRequest, app.MsgInvalidDataProvided)

	resp = f.do(t, http.MethodGet, "/api/notes/abc", nil)
	requireError(t, resp, http.StatusBadRequest, app.MsgInvalidDataProvided)

	resp = f.do(t, http.MethodGet, "/api/export", nil)
	requireError(t, resp, http.StatusNotFound, app.MsgNothingToExport)

	resp = f.do(t, http.MethodGet, "/api/export?format=pdf", nil)
	requireError(t, resp, http.StatusBadRequest, app.MsgUnsupportedFormat)
}

func TestAPI_WrongPasswordLocks(t *testing.T) {
	f := newAPIFixture(t)

	f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	resp := f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "kept"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "wrong"})
	requireError(t, resp, http.StatusUnauthorized, app.MsgIncorrectPassword)

	resp = f.do(t, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "locked", decodeBody[models.SessionResponse](t, resp).State)

	resp = f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notes := decodeBody[models.NotesResponse](t, resp).Notes
	require.Len(t, notes, 1)
	assert.Equal(t, "kept", notes[0].Text)
}

func TestAPI_EditSession(t *testing.T) {
	f := newAPIFixture(t)
	f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})

	resp := f.do(t, http.MethodPost, "/api/session/save", models.NoteInput{Text: "draft"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[models.Note](t, resp)

	resp = f.do(t, http.MethodPost, "/api/session/edit/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/session", nil)
	session := decodeBody[models.SessionResponse](t, resp)
	assert.Equal(t, "unlocked", session.State)
	require.NotNil(t, session.EditingID)
	assert.Equal(t, created.ID, *session.EditingID)

	resp = f.do(t, http.MethodPost, "/api/session/save", models.NoteInput{Text: "final"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeBody[models.Note](t, resp)
	assert.Equal(t, created.ID, saved.ID)
	assert.Equal(t, "final", saved.Text)

	resp = f.do(t, http.MethodGet, "/api/session", nil)
	assert.Nil(t, decodeBody[models.SessionResponse](t, resp).EditingID)

	f.do(t, http.MethodPost, "/api/session/edit/"+strconv.FormatInt(created.ID, 10), nil)
	resp = f.do(t, http.MethodDelete, "/api/session/edit", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = f.do(t, http.MethodGet, "/api/session", nil)
	assert.Nil(t, decodeBody[models.SessionResponse](t, resp).EditingID)

	resp = f.do(t, http.MethodPost, "/api/session/lock", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = f.do(t, http.MethodGet, "/api/notes", nil)
	assert.Equal(t, http.StatusLocked, resp.StatusCode)
}

func TestAPI_FoldersAndFilter(t *testing.T) {
	f := newAPIFixture(t)

	// folders do not need an unlocked vault
	resp := f.do(t, http.MethodPost, "/api/folders", models.FolderRequest{Name: "Work"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	added := decodeBody[models.FoldersResponse](t, resp)
	require.NotNil(t, added.Added)
	assert.True(t, *added.Added)
	assert.Equal(t, []string{"Work"}, added.Folders)

	resp = f.do(t, http.MethodPost, "/api/folders", models.FolderRequest{Name: "Work"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, *decodeBody[models.FoldersResponse](t, resp).Added)

	resp = f.do(t, http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Work"}, decodeBody[models.FoldersResponse](t, resp).Folders)

	f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "a", Folder: "Work"})
	f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "b"})

	resp = f.do(t, http.MethodGet, "/api/notes?folder=Work", nil)
	notes := decodeBody[models.NotesResponse](t, resp).Notes
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].Text)

	resp = f.do(t, http.MethodGet, "/api/notes", nil)
	assert.Len(t, decodeBody[models.NotesResponse](t, resp).Notes, 2)
}

func TestAPI_Theme(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.ThemeLight, decodeBody[models.ThemePayload](t, resp).Theme)

	resp = f.do(t, http.MethodPut, "/api/theme", models.ThemePayload{Theme: models.ThemeDark})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/theme", nil)
	assert.Equal(t, models.ThemeDark, decodeBody[models.ThemePayload](t, resp).Theme)

	resp = f.do(t, http.MethodPut, "/api/theme", `{"theme":"blue"}`)
	requireError(t, resp, http.StatusBadRequest, app.MsgInvalidTheme)
}

func TestAPI_ExportAll(t *testing.T) {
	f := newAPIFixture(t)
	f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "first"})
	f.do(t, http.MethodPost, "/api/notes", models.NoteInput{Text: "second"})

	resp := f.do(t, http.MethodGet, "/api/export?format=DOCX", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="vaultlify_notes.docx"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Note 1")
	assert.Contains(t, string(body), "Note 2")
	assert.Contains(t, string(body), "second")
}

func TestAPI_VersionAndTraceID(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", decodeBody[models.VersionResponse](t, resp).Version)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestAPI_CompressesJSON(t *testing.T) {
	f := newAPIFixture(t)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/version", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var v models.VersionResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&v))
	assert.Equal(t, "1.2.3", v.Version)
}

// rawRequest sends body with explicit headers and Host, bypassing the JSON
// defaults of do.
func (f *apiFixture) rawRequest(t *testing.T, method, path, body string, host string, header map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if host != "" {
		req.Host = host
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAPI_RejectsCrossSiteRequests(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/session/unlock", models.UnlockRequest{Password: "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// simple cross-site form posts carry text/plain
	resp = f.rawRequest(t, http.MethodPost, "/api/notes", `{"text":"injected"}`, "",
		map[string]string{"Content-Type": "text/plain"})
	requireError(t, resp, http.StatusUnsupportedMediaType, app.MsgJSONRequired)

	resp = f.rawRequest(t, http.MethodPost, "/api/session/save", `{"text":"injected"}`, "", nil)
	requireError(t, resp, http.StatusUnsupportedMediaType, app.MsgJSONRequired)

	resp = f.rawRequest(t, http.MethodPost, "/api/session/unlock", `{"password":"wrong"}`, "",
		map[string]string{"Content-Type": "text/plain;charset=UTF-8"})
	requireError(t, resp, http.StatusUnsupportedMediaType, app.MsgJSONRequired)

	resp = f.rawRequest(t, http.MethodPost, "/api/notes", `{"text":"injected"}`, "",
		map[string]string{"Content-Type": "application/json", "Origin": "http://evil.example"})
	requireError(t, resp, http.StatusForbidden, app.MsgForeignRequest)

	resp = f.rawRequest(t, http.MethodGet, "/api/notes", "", "evil.example:8080", nil)
	requireError(t, resp, http.StatusMisdirectedRequest, app.MsgForeignRequest)

	// nothing above reached the vault
	resp = f.do(t, http.MethodGet, "/api/session", nil)
	assert.Equal(t, "unlocked", decodeBody[models.SessionResponse](t, resp).State)
	resp = f.do(t, http.MethodGet, "/api/notes", nil)
	assert.Empty(t, decodeBody[models.NotesResponse](t, resp).Notes)

	// the API's own origin and a charset parameter are fine
	resp = f.rawRequest(t, http.MethodPost, "/api/notes", `{"text":"mine"}`, "",
		map[string]string{"Content-Type": "application/json; charset=utf-8", "Origin": f.server.URL})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.rawRequest(t, http.MethodGet, "/api/notes", "", "localhost", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[models.NotesResponse](t, resp).Notes, 1)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"decryption", service.ErrDecryption, http.StatusUnauthorized},
		{"locked", service.ErrLocked, http.StatusLocked},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"storage", store.ErrStorage, http.StatusInternalServerError},
		{"bad id", ErrInvalidNoteID, http.StatusBadRequest},
		{"foreign host", ErrForeignHost, http.StatusMisdirectedRequest},
		{"foreign origin", ErrForeignOrigin, http.StatusForbidden},
		{"not json", ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
