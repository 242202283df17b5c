package adapter

import "github.com/MKhiriev/go-note-vault/internal/service"

var (
	_ service.NoteRepository     = (*HTTPVaultAdapter)(nil)
	_ service.SessionController  = (*HTTPVaultAdapter)(nil)
	_ service.PreferencesService = (*HTTPVaultAdapter)(nil)
	_ service.AppInfoService     = (*HTTPVaultAdapter)(nil)
)
