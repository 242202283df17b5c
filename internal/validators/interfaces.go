// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note input, stored note collections and the
// master password before the vault acts on them. It knows nothing about
// storage, encryption or transport.
package validators

import "context"

// Validator checks obj and returns a sentinel from this package wrapped with
// the offending detail. fields narrows the check to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
