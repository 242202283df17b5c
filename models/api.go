package models

// Wire types of the loopback JSON API, shared by the handlers and the HTTP
// adapter.

type UnlockRequest struct {
	Password string `json:"password"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// SessionResponse describes the session. EditingID is null when no note is
// being edited.
type SessionResponse struct {
	State     string `json:"state"`
	EditingID *int64 `json:"editing_id"`
}

type FolderRequest struct {
	Name string `json:"name"`
}

// FoldersResponse lists folders. Added is only set in reply to an add.
type FoldersResponse struct {
	Added   *bool    `json:"added,omitempty"`
	Folders []string `json:"folders"`
}

type ThemePayload struct {
	Theme Theme `json:"theme"`
}

type VersionResponse struct {
	Version string `json:"version"`
}
