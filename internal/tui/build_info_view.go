// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-vault/models"
)

func (p *palette) renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-note-vault\n")
	b.WriteString("Version: " + info.BuildVersion() + "\n")
	b.WriteString("Date: " + info.BuildDate() + "\n")
	b.WriteString("Commit: " + info.BuildCommit() + "\n")
	b.WriteString("Theme: " + string(p.theme))

	return p.renderPage("ABOUT", p.styles.overlay.Render(b.String()), "esc: back")
}
