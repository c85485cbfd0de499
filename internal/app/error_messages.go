// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants used by the validator
// handlers and the vault client.
//
// The HTTP messages are written into response bodies verbatim. The notice
// messages are shown to the vault user after a mutation settles.
package app

// HTTP response messages.
const (
	// MsgInitDataMissing is returned when the validate request carries no
	// initData (absent, empty, or an undecodable body).
	MsgInitDataMissing = "initData missing"

	// MsgServerMisconfigured is returned when BOT_TOKEN is not set.
	MsgServerMisconfigured = "server misconfigured"

	// MsgMethodNotAllowed is the plain-text body of a 405 response.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)

// User notices.
const (
	MsgAssetSaved   = "Asset saved!"
	MsgAssetUpdated = "Asset updated!"
	MsgAssetDeleted = "Asset deleted!"

	MsgMaxAssets       = "Maximum 10 assets allowed"
	MsgSaveFailed      = "Failed to save asset"
	MsgUpdateFailed    = "Failed to update asset"
	MsgDeleteFailed    = "Failed to delete asset"
	MsgLoadFailed      = "Error loading assets"
	MsgInvalidSession  = "Invalid session! Please restart."
	MsgValidationError = "Error validating session."
	MsgBiometricFailed = "Biometric authentication failed."
	MsgVaultReset      = "Vault reset. A new device key will be generated on next unlock."
)
