// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the session
// validator.
//
// The primary abstraction is [SessionAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_adapter_mock.go -package=mock

// SessionAdapter talks to the session validator.
type SessionAdapter interface {
	// Validate sends initData to the validator and returns its verdict.
	// A non-2xx response is returned as an error, never as false.
	Validate(ctx context.Context, initData string) (bool, error)

	// Version returns the validator's reported application version.
	Version(ctx context.Context) (string, error)
}
