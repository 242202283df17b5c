// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Both are reported as 400 Bad Request.
var (
	// ErrInvalidNoteID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrInvalidRequestBody is returned when the JSON body cannot be decoded
	// into the expected request type.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// Request origin errors. The API only serves pages and tools on this machine.
var (
	// ErrForeignHost is returned for a Host header that is not a loopback
	// name or the listen address (421).
	ErrForeignHost = errors.New("request addressed to a foreign host")

	// ErrForeignOrigin is returned when the Origin header names a site other
	// than the API itself (403).
	ErrForeignOrigin = errors.New("request from a foreign origin")

	// ErrUnsupportedMediaType is returned for a body that is not sent as
	// application/json (415).
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
