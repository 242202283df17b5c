package models

// NoteExport is the plaintext rendition of a note handed to export and print
// collaborators.
type NoteExport struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Tags   string `json:"tags"`
	Folder string `json:"folder"`
	Date   string `json:"date"`
}
