// Package export renders decrypted notes as plaintext documents for the
// clipboard, file downloads and printing.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-vault/models"
)

var (
	// ErrUnsupportedFormat is returned for pdf and for any unknown format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNothingToExport is returned when the collection is empty.
	ErrNothingToExport = errors.New("no notes to export")
)

// DefaultDateLayout matches en-US toLocaleDateString output.
const DefaultDateLayout = "1/2/2006"

const divider = "========================================"

// FileFormat describes one downloadable export.
type FileFormat struct {
	Ext      string
	FileName string
	MIMEType string
}

const wordMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var formats = map[string]FileFormat{
	"txt":  {Ext: "txt", FileName: "vaultlify_notes.txt", MIMEType: "text/plain; charset=utf-8"},
	"doc":  {Ext: "doc", FileName: "vaultlify_notes.doc", MIMEType: wordMIME},
	"docx": {Ext: "docx", FileName: "vaultlify_notes.docx", MIMEType: wordMIME},
}

// LookupFormat resolves a user-typed format name, case-insensitively.
func LookupFormat(name string) (FileFormat, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FileFormat{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// ToExport builds the plaintext view of note. index is zero-based; a negative
// index produces the untitled single-note form.
func ToExport(note models.Note, index int, dateLayout string) models.NoteExport {
	title := "Note"
	if index >= 0 {
		title = fmt.Sprintf("Note %d", index+1)
	}

	return models.NoteExport{
		Title:  title,
		Text:   strings.TrimSpace(note.Text),
		Tags:   strings.Join(note.Tags, ", "),
		Folder: note.Folder,
		Date:   localizeDate(note.Date, dateLayout),
	}
}

// localizeDate reformats a YYYY-MM-DD date. Anything else is returned as is.
func localizeDate(date, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

// Render lays out one exported note between divider lines.
func Render(exp models.NoteExport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(exp.Title + "\n")
	b.WriteString(divider + "\n")
	b.WriteString("Text:\n")
	b.WriteString(exp.Text + "\n\n")
	b.WriteString("Tags: " + exp.Tags + "\n")
	b.WriteString("Folder: " + exp.Folder + "\n")
	b.WriteString("Date: " + exp.Date + "\n\n")
	b.WriteString(divider + "\n")
	return b.String()
}

// RenderNote is ToExport followed by Render.
func RenderNote(note models.Note, index int, dateLayout string) string {
	return Render(ToExport(note, index, dateLayout))
}

// WriteAll writes every note, numbered from 1, separated by blank lines.
func WriteAll(w io.Writer, notes []models.Note, dateLayout string) error {
	if len(notes) == 0 {
		return ErrNothingToExport
	}

	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = RenderNote(n, i, dateLayout)
	}

	if _, err := io.WriteString(w, strings.Join(parts, "\n")); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
