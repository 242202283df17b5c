// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// DateLayout is the calendar date format stored in [Note.Date].
const DateLayout = "2006-01-02"

// Note is a single entry of the vault. The whole collection is serialized to
// JSON, encrypted, and stored as one blob.
type Note struct {
	// ID is derived from the creation time in Unix milliseconds and never
	// changes once assigned.
	ID int64 `json:"id"`

	// Text is the note body. Committed notes always have non-empty text.
	Text string `json:"text"`

	// Tags keep the order the user typed them in. Duplicates are allowed.
	Tags []string `json:"tags"`

	// Folder is the name of the folder the note belongs to, or empty.
	Folder string `json:"folder"`

	// Date is the calendar date attached to the note (YYYY-MM-DD by default).
	Date string `json:"date"`
}

// Clone returns a deep copy of n so callers never share the tag slice with
// the repository.
func (n Note) Clone() Note {
	out := n
	out.Tags = slices.Clone(n.Tags)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// NoteInput carries the user-editable fields of a note for create and update.
type NoteInput struct {
	Text   string   `json:"text"`
	Tags   []string `json:"tags"`
	Folder string   `json:"folder"`
	Date   string   `json:"date"`
}

// ParseTags splits a comma-separated tag line, trims every tag, and drops
// empty entries: "work, , urgent" -> ["work", "urgent"].
func ParseTags(line string) []string {
	parts := strings.Split(line, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CloneNotes deep-copies a note collection.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
