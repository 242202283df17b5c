package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/export"
)

func (h *Handler) exportNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "http.exportNote", err)
		return
	}

	note, err := h.services.Notes.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "http.exportNote", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.RenderNote(note, -1, h.dateLayout)))
}

// exportAll serves the whole collection as a download. The document is
// rendered in full before anything is written so failures keep their status.
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = "txt"
	}

	format, err := export.LookupFormat(formatName)
	if err != nil {
		h.writeError(w, r, "http.exportAll", err)
		return
	}

	notes, err := h.services.Notes.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, "http.exportAll", err)
		return
	}

	var buf bytes.Buffer
	if err = export.WriteAll(&buf, notes, h.dateLayout); err != nil {
		h.writeError(w, r, "http.exportAll", err)
		return
	}

	w.Header().Set("Content-Type", format.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
