// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the form validation rules of the client and the
// submit-gated display policy shared by every form.
//
// Core concepts:
//   - Validator: generic interface to validate a value, optionally scoped to
//     a subset of named fields. Failures are reported as [FieldErrors].
//   - Gate: remembers whether the user already tried to submit and decides
//     which errors are visible.
//
// Rules are pure: the same values (and the same clock) always yield the same
// errors, and validation never touches the network.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// Rule violations are returned as [FieldErrors].
	Validate(context.Context, any, ...string) error
}
