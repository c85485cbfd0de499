// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for vault records.
//
// Validator is a generic interface that validates arbitrary values and
// supports optional field-level scoping. Implementations are injected into
// services so validation stays out of the mutation and storage code.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
