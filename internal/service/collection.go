package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

var errNotAnArray = errors.New("collection is not a json array")

func encodeCollection(notes []models.Note) (string, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	payload, err := json.Marshal(notes)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// decodeCollection parses a decrypted collection strictly: a single JSON
// array of objects with known fields only, each passing the note rules and
// with unique ids. Null tags become empty.
//
// Strictness matters for legacy blobs, which carry no integrity tag: a wrong
// password there can decrypt to bytes that happen to be valid UTF-8.
func decodeCollection(ctx context.Context, plaintext string, validator validators.Validator) ([]models.Note, error) {
	trimmed := strings.TrimSpace(plaintext)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, errNotAnArray
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var notes []models.Note
	if err := dec.Decode(&notes); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode collection: trailing data")
	}

	if err := validator.Validate(ctx, notes); err != nil {
		return nil, fmt.Errorf("validate collection: %w", err)
	}

	return models.CloneNotes(notes), nil
}

// nextID returns the creation time in Unix milliseconds, or one more than the
// largest existing id when the clock has not moved past it.
func nextID(notes []models.Note, now time.Time) int64 {
	id := now.UnixMilli()
	for _, n := range notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}
