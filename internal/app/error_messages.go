// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both
// presentations: the loopback HTTP API and the terminal UI.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or shown in the UI. Keeping them in one place ensures
// consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTextAndPasswordRequired is shown when a note is saved without text.
	MsgTextAndPasswordRequired = "Note text and password are required."

	// MsgPasswordRequired is shown when unlocking with an empty password.
	MsgPasswordRequired = "Password is required."

	// MsgIncorrectPassword is shown when the vault cannot be decrypted.
	MsgIncorrectPassword = "Incorrect password or corrupted data."

	// MsgVaultLocked is shown when a note operation is attempted while locked.
	MsgVaultLocked = "Vault is locked. Unlock it first."

	// MsgNoteNotFound is shown when the requested note does not exist.
	MsgNoteNotFound = "Note not found."

	// MsgInvalidTheme is shown for a theme other than light or dark.
	MsgInvalidTheme = "Theme must be light or dark."

	// MsgStorageFailure is shown when notes could not be read or saved.
	MsgStorageFailure = "Failed to save notes."

	// MsgUnsupportedFormat is shown for an unknown export format.
	MsgUnsupportedFormat = "Unsupported format. Please choose txt, doc, or docx."

	// MsgNothingToExport is shown when exporting an empty vault.
	MsgNothingToExport = "No notes to export."

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// written.
	MsgClipboardUnavailable = "Clipboard is not available."

	// MsgForeignRequest is returned when a request comes from another site
	// or is addressed to a non-local host name.
	MsgForeignRequest = "Only local clients may use the vault API."

	// MsgJSONRequired is returned for a request body not sent as
	// application/json.
	MsgJSONRequired = "Content-Type must be application/json."

	// MsgInternalServerError is returned for any unexpected failure.
	MsgInternalServerError = "internal server error"
)
