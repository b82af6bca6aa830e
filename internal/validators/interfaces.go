// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input before it reaches a storage
// backend.
//
// A Validator accepts any supported value and, optionally, the names of the
// fields to check; with no field names every field is validated. The state
// service wraps its repository calls with [StateRequestValidator] so that
// names and versions are safe to embed in SQL arguments and S3 object keys.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to the named fields.
	Validate(context.Context, any, ...string) error
}
