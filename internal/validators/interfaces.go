// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Request DTOs declare their rules with `validate` struct tags and may
// expose a ValidationMessages method mapping a json field name (or
// "field.tag") to the message reported to the client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// A failed rule set is reported as models.ValidationErrors.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to the named Go struct fields.
	Validate(context.Context, any, ...string) error
}
