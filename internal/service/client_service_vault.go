// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/legacy-vault/internal/app"
	"github.com/MKhiriev/legacy-vault/internal/crypto"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/store"
	"github.com/MKhiriev/legacy-vault/internal/validators"
	"github.com/MKhiriev/legacy-vault/models"
)

// noEdit is the EditIndex value when no record is selected.
const noEdit = -1

// VaultState is the in-memory view of the vault for one session.
type VaultState struct {
	// Assets is the decrypted list in display order.
	Assets models.AssetList

	// EditIndex is the record selected by BeginEdit, or -1.
	EditIndex int

	// Unlocked is set by a successful Unlock and cleared by Reset.
	Unlocked bool

	// LoadErr is the soft error of the last load, if any. The vault is
	// unlocked with an empty list in that case.
	LoadErr error
}

// PendingMutation tracks the persist step of one optimistic mutation. The
// in-memory list already reflects the mutation when it is returned.
type PendingMutation struct {
	kind models.MutationKind
	done chan struct{}

	mu    sync.Mutex
	state models.MutationState
	err   error
}

func newPendingMutation(kind models.MutationKind) *PendingMutation {
	return &PendingMutation{
		kind:  kind,
		done:  make(chan struct{}),
		state: models.MutationPending,
	}
}

func (m *PendingMutation) settle(state models.MutationState, err error) {
	m.mu.Lock()
	m.state, m.err = state, err
	m.mu.Unlock()
	close(m.done)
}

// Kind returns the operation that produced m.
func (m *PendingMutation) Kind() models.MutationKind { return m.kind }

// Done is closed once the mutation is committed or rolled back.
func (m *PendingMutation) Done() <-chan struct{} { return m.done }

// State returns the current lifecycle state.
func (m *PendingMutation) State() models.MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the persistence error of a rolled back mutation, nil
// otherwise.
func (m *PendingMutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Wait blocks until the mutation settles and returns its error. It returns
// ctx.Err() if ctx ends first; the persist step keeps running.
func (m *PendingMutation) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return m.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mutationNotices are the messages shown after a mutation settles.
var mutationNotices = map[models.MutationKind]struct{ ok, failed string }{
	models.MutationAdd:    {ok: app.MsgAssetSaved, failed: app.MsgSaveFailed},
	models.MutationEdit:   {ok: app.MsgAssetUpdated, failed: app.MsgUpdateFailed},
	models.MutationDelete: {ok: app.MsgAssetDeleted, failed: app.MsgDeleteFailed},
}

type clientVaultService struct {
	store     store.KeyValueStore
	keys      ClientDeviceKeyService
	cipher    crypto.VaultCipher
	validator validators.Validator
	gate      ClientSessionGate
	feedback  host.Feedback

	mu    sync.Mutex
	state VaultState

	inflight sync.WaitGroup
	pending  atomic.Int64

	logger *logger.Logger
}

// NewClientVaultService returns a locked [ClientVaultService].
func NewClientVaultService(
	kv store.KeyValueStore,
	keys ClientDeviceKeyService,
	cipher crypto.VaultCipher,
	validator validators.Validator,
	gate ClientSessionGate,
	feedback host.Feedback,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		store:     kv,
		keys:      keys,
		cipher:    cipher,
		validator: validator,
		gate:      gate,
		feedback:  feedback,
		state:     VaultState{Assets: models.AssetList{}, EditIndex: noEdit},
		logger:    logger,
	}
}

// ─── session ───

func (s *clientVaultService) Unlock(ctx context.Context) error {
	if _, err := s.gate.Open(ctx); err != nil {
		return err
	}

	if _, err := s.keys.EnsureDeviceKey(ctx); err != nil {
		return fmt.Errorf("error preparing device key: %w", err)
	}

	loadErr := s.LoadAssets(ctx)
	if loadErr != nil && !isSoftLoadError(loadErr) {
		return loadErr
	}

	s.mu.Lock()
	s.state.Unlocked = true
	s.state.LoadErr = loadErr
	s.mu.Unlock()

	return nil
}

func isSoftLoadError(err error) bool {
	return errors.Is(err, ErrDecrypt) || errors.Is(err, ErrDeviceKeyMissing)
}

func (s *clientVaultService) LoadAssets(ctx context.Context) error {
	list, err := s.readAssets(ctx)

	s.mu.Lock()
	s.state.Assets = list
	s.state.EditIndex = noEdit
	s.mu.Unlock()

	if errors.Is(err, ErrDecrypt) {
		s.feedback.ShowAlert(app.MsgLoadFailed)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientVaultService.LoadAssets").Msg("assets not loaded, vault is empty")
		return err
	}

	s.logger.Debug().Str("func", "clientVaultService.LoadAssets").Int("count", len(list)).Msg("assets loaded")
	return nil
}

// readAssets never returns a partially decoded list: on error the list is
// empty.
func (s *clientVaultService) readAssets(ctx context.Context) (models.AssetList, error) {
	empty := models.AssetList{}

	blob, err := s.store.Get(ctx, store.KeyAssets)
	if errors.Is(err, store.ErrNotFound) || (err == nil && blob == "") {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("error reading assets: %w", err)
	}

	deviceKey, err := s.keys.GetDeviceKey(ctx)
	if err != nil {
		return empty, err
	}

	var list models.AssetList
	if err = s.cipher.DecryptData(blob, deviceKey, &list); err != nil {
		return empty, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	if err = s.validator.Validate(ctx, &list, validators.FieldPresence, validators.FieldCapacity, validators.FieldRecords); err != nil {
		return empty, fmt.Errorf("%w: %w: %w", ErrDecrypt, crypto.ErrDecrypt, err)
	}

	return list, nil
}

func (s *clientVaultService) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeyAssets); err != nil {
		return fmt.Errorf("error deleting assets: %w", err)
	}
	if err := s.keys.DestroyDeviceKey(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = VaultState{Assets: models.AssetList{}, EditIndex: noEdit}
	s.mu.Unlock()

	s.feedback.ShowAlert(app.MsgVaultReset)
	s.logger.Info().Str("func", "clientVaultService.Reset").Msg("vault reset")
	return nil
}

// ─── mutations ───

func (s *clientVaultService) Add(ctx context.Context, record models.AssetRecord) (*PendingMutation, error) {
	if err := s.validator.Validate(ctx, record, validators.FieldType); err != nil {
		return nil, err
	}

	m, err := s.applyOptimistic(ctx, models.MutationAdd, func(st *VaultState) error {
		if len(st.Assets) >= models.MaxAssets {
			return ErrCapacityExceeded
		}
		st.Assets = append(st.Assets.Clone(), record)
		return nil
	})
	if errors.Is(err, ErrCapacityExceeded) {
		s.feedback.ShowAlert(app.MsgMaxAssets)
	}
	return m, err
}

func (s *clientVaultService) Edit(ctx context.Context, index int, record models.AssetRecord) (*PendingMutation, error) {
	if err := s.validator.Validate(ctx, record, validators.FieldType); err != nil {
		return nil, err
	}

	return s.applyOptimistic(ctx, models.MutationEdit, func(st *VaultState) error {
		if index < 0 || index >= len(st.Assets) {
			return fmt.Errorf("%w: %d", ErrAssetIndexOutOfRange, index)
		}
		next := st.Assets.Clone()
		next[index] = record
		st.Assets = next
		st.EditIndex = noEdit
		return nil
	})
}

func (s *clientVaultService) SaveEdit(ctx context.Context, record models.AssetRecord) (*PendingMutation, error) {
	index, ok := s.EditIndex()
	if !ok {
		return nil, ErrNoAssetSelected
	}
	return s.Edit(ctx, index, record)
}

func (s *clientVaultService) Delete(ctx context.Context, index int) (*PendingMutation, error) {
	return s.applyOptimistic(ctx, models.MutationDelete, func(st *VaultState) error {
		if index < 0 || index >= len(st.Assets) {
			return fmt.Errorf("%w: %d", ErrAssetIndexOutOfRange, index)
		}
		next := make(models.AssetList, 0, len(st.Assets)-1)
		next = append(next, st.Assets[:index]...)
		st.Assets = append(next, st.Assets[index+1:]...)

		switch {
		case st.EditIndex == index:
			st.EditIndex = noEdit
		case st.EditIndex > index:
			st.EditIndex--
		}
		return nil
	})
}

// applyOptimistic applies mutate to the in-memory state and persists the
// result in the background. If persisting fails the asset list is restored
// to its pre-mutation snapshot and a selection the mutation shifted points
// at its record again. An edit the mutation closed stays closed.
//
// Overlapping mutations are not serialised: each one persists the list it
// produced and restores the snapshot it took, so the last one to settle wins.
func (s *clientVaultService) applyOptimistic(ctx context.Context, kind models.MutationKind, mutate func(*VaultState) error) (*PendingMutation, error) {
	s.mu.Lock()
	if !s.state.Unlocked {
		s.mu.Unlock()
		return nil, ErrVaultLocked
	}

	snapshot := s.state.Assets.Clone()
	sel := selection{before: s.state.EditIndex}
	if err := mutate(&s.state); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	next := s.state.Assets.Clone()
	sel.after = s.state.EditIndex

	m := newPendingMutation(kind)
	s.inflight.Add(1)
	s.pending.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.inflight.Done()
		defer s.pending.Add(-1)

		s.settle(m, snapshot, sel, s.persist(context.WithoutCancel(ctx), next))
	}()

	return m, nil
}

// selection is the EditIndex around one mutation.
type selection struct {
	before, after int
}

func (s *clientVaultService) settle(m *PendingMutation, snapshot models.AssetList, sel selection, err error) {
	notice := mutationNotices[m.kind]

	if err != nil {
		s.mu.Lock()
		s.state.Assets = snapshot
		if sel.after != noEdit && s.state.EditIndex == sel.after {
			s.state.EditIndex = sel.before
		}
		if s.state.EditIndex >= len(snapshot) {
			s.state.EditIndex = noEdit
		}
		s.mu.Unlock()

		s.logger.Err(err).Str("func", "clientVaultService.settle").
			Str("kind", string(m.kind)).Msg("mutation rolled back")
		s.feedback.NotificationOccurred(host.NotificationError)
		s.feedback.ShowAlert(notice.failed)
		m.settle(models.MutationRolledBack, fmt.Errorf("%w: %w", ErrPersistenceFailure, err))
		return
	}

	s.logger.Debug().Str("func", "clientVaultService.settle").
		Str("kind", string(m.kind)).Msg("mutation committed")
	s.feedback.NotificationOccurred(host.NotificationSuccess)
	s.feedback.ShowAlert(notice.ok)
	m.settle(models.MutationCommitted, nil)
}

// persist seals list under the stored device key and writes it. A missing
// device key fails the write rather than generating a new key, which would
// orphan the existing blob.
func (s *clientVaultService) persist(ctx context.Context, list models.AssetList) error {
	deviceKey, err := s.keys.GetDeviceKey(ctx)
	if err != nil {
		return err
	}

	blob, err := s.cipher.EncryptData(list, deviceKey)
	if err != nil {
		return fmt.Errorf("error encrypting assets: %w", err)
	}

	if err = s.store.Set(ctx, store.KeyAssets, blob); err != nil {
		return fmt.Errorf("error writing assets: %w", err)
	}
	return nil
}

// ─── edit mode ───

func (s *clientVaultService) BeginEdit(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Unlocked {
		return ErrVaultLocked
	}
	if index < 0 || index >= len(s.state.Assets) {
		return fmt.Errorf("%w: %d", ErrAssetIndexOutOfRange, index)
	}
	s.state.EditIndex = index
	return nil
}

func (s *clientVaultService) CancelEdit() {
	s.mu.Lock()
	s.state.EditIndex = noEdit
	s.mu.Unlock()
}

func (s *clientVaultService) EditIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EditIndex, s.state.EditIndex != noEdit
}

// ─── read access ───

func (s *clientVaultService) Assets() models.AssetList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Assets.Clone()
}

func (s *clientVaultService) State() VaultState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Assets = s.state.Assets.Clone()
	return st
}

func (s *clientVaultService) Pending() int {
	return int(s.pending.Load())
}

func (s *clientVaultService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
