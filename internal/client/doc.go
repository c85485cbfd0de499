// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command-line application.
//
// Every vault command opens the session gate first, so a launch without a
// genuine session string or without the biometric confirmation never reads
// or writes the stored assets.
package client
