// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MutationState describes where an optimistic vault mutation is in its
// lifecycle.
type MutationState int

const (
	// MutationPending means the in-memory list is already updated but the
	// encrypted write has not resolved yet.
	MutationPending MutationState = iota

	// MutationCommitted means the new list was encrypted and persisted.
	MutationCommitted

	// MutationRolledBack means persisting failed and the in-memory list was
	// restored to its pre-mutation snapshot.
	MutationRolledBack
)

// String returns a lowercase name of the state, suitable for logs.
func (s MutationState) String() string {
	switch s {
	case MutationPending:
		return "pending"
	case MutationCommitted:
		return "committed"
	case MutationRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// MutationKind names the vault operation that produced a mutation.
type MutationKind string

const (
	MutationAdd    MutationKind = "add"
	MutationEdit   MutationKind = "edit"
	MutationDelete MutationKind = "delete"
)
