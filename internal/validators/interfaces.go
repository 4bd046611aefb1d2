// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks auth request payloads against the input policy
// and reports every violation as a field error.
//
// Validation failures are returned as FieldErrors so that services can hand
// them to the caller unchanged; other errors (unsupported type, unknown
// field) indicate a programming mistake.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// Go struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
