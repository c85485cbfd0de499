package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/legacy-vault/internal/adapter"
	"github.com/MKhiriev/legacy-vault/internal/app"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/mock"
)

type gateMocks struct {
	adapter   *mock.MockSessionAdapter
	biometric *mock.MockBiometricManager
	feedback  *mock.MockFeedback
	closer    *mock.MockCloser
}

func newTestSessionGate(t *testing.T, ctrl *gomock.Controller) (*clientSessionGate, gateMocks) {
	t.Helper()

	m := gateMocks{
		adapter:   mock.NewMockSessionAdapter(ctrl),
		biometric: mock.NewMockBiometricManager(ctrl),
		feedback:  mock.NewMockFeedback(ctrl),
		closer:    mock.NewMockCloser(ctrl),
	}
	h := &host.Host{
		InitData:  "query_id=1&hash=abc",
		Biometric: m.biometric,
		Feedback:  m.feedback,
		Closer:    m.closer,
	}

	gate := NewClientSessionGate(m.adapter, h, logger.Nop()).(*clientSessionGate)
	gate.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return gate, m
}

// ─── validation step ───

func TestSessionGate_Open_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	gomock.InOrder(
		m.adapter.EXPECT().Validate(gomock.Any(), "query_id=1&hash=abc").Return(true, nil),
		m.biometric.EXPECT().Available().Return(true),
		m.biometric.EXPECT().AccessGranted().Return(true),
		m.biometric.EXPECT().Authenticate(gomock.Any(), reasonAuthenticate).
			Return(host.BiometricResult{Authenticated: true, Token: "bio-token"}, nil),
	)
	m.closer.EXPECT().Close().Times(0)

	session, err := gate.Open(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "bio-token", session.Token)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), session.OpenedAt)
}

func TestSessionGate_Open_InvalidSessionClosesHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(false, nil)
	m.feedback.EXPECT().ShowAlert(app.MsgInvalidSession)
	m.closer.EXPECT().Close()
	m.biometric.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Times(0)

	session, err := gate.Open(context.Background())

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionGate_Open_ValidationErrorDoesNotClose(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "transport failure",
			err:     errors.New("connection refused"),
			wantErr: ErrSessionValidation,
		},
		{
			name:    "server misconfigured",
			err:     fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "server misconfigured"),
			wantErr: ErrServerMisconfigured,
		},
		{
			name:    "init data missing",
			err:     fmt.Errorf("%w: %s", adapter.ErrBadRequest, "initData missing"),
			wantErr: ErrInitDataMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gate, m := newTestSessionGate(t, ctrl)
			m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(false, tt.err)
			m.feedback.EXPECT().ShowAlert(app.MsgValidationError)
			m.closer.EXPECT().Close().Times(0)

			session, err := gate.Open(context.Background())

			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─── biometric step ───

func TestSessionGate_Open_BiometricUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil)
	m.biometric.EXPECT().Available().Return(false)

	_, err := gate.Open(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, err, host.ErrBiometricUnavailable)
}

func TestSessionGate_Open_RequestsAccessFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	gomock.InOrder(
		m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil),
		m.biometric.EXPECT().Available().Return(true),
		m.biometric.EXPECT().AccessGranted().Return(false),
		m.biometric.EXPECT().RequestAccess(gomock.Any(), reasonRequestAccess).Return(true, nil),
		m.biometric.EXPECT().Authenticate(gomock.Any(), reasonAuthenticate).
			Return(host.BiometricResult{Authenticated: true, Token: "t"}, nil),
	)

	session, err := gate.Open(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "t", session.Token)
}

func TestSessionGate_Open_AccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil)
	m.biometric.EXPECT().Available().Return(true)
	m.biometric.EXPECT().AccessGranted().Return(false)
	m.biometric.EXPECT().RequestAccess(gomock.Any(), gomock.Any()).Return(false, nil)
	m.biometric.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Times(0)

	_, err := gate.Open(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionGate_Open_RequestAccessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate, m := newTestSessionGate(t, ctrl)
	m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil)
	m.biometric.EXPECT().Available().Return(true)
	m.biometric.EXPECT().AccessGranted().Return(false)
	m.biometric.EXPECT().RequestAccess(gomock.Any(), gomock.Any()).Return(false, context.Canceled)

	_, err := gate.Open(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionGate_Open_AuthenticationFails(t *testing.T) {
	tests := []struct {
		name   string
		result host.BiometricResult
		err    error
	}{
		{name: "not authenticated", result: host.BiometricResult{Authenticated: false}},
		{name: "prompt error", err: errors.New("sensor error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gate, m := newTestSessionGate(t, ctrl)
			m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil)
			m.biometric.EXPECT().Available().Return(true)
			m.biometric.EXPECT().AccessGranted().Return(true)
			m.biometric.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)
			m.feedback.EXPECT().ShowAlert(app.MsgBiometricFailed)

			session, err := gate.Open(context.Background())

			assert.Nil(t, session)
			assert.ErrorIs(t, err, ErrNotAuthenticated)
		})
	}
}
