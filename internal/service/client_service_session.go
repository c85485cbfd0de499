package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/legacy-vault/internal/adapter"
	"github.com/MKhiriev/legacy-vault/internal/app"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
)

const (
	reasonRequestAccess = "Secure your asset vault"
	reasonAuthenticate  = "Unlock your vault"
)

// Session is an authorised launch. Token is the opaque biometric token and
// lives in memory only.
type Session struct {
	Token    string
	OpenedAt time.Time
}

type clientSessionGate struct {
	adapter adapter.SessionAdapter
	host    *host.Host

	now    func() time.Time
	logger *logger.Logger
}

// NewClientSessionGate returns a [ClientSessionGate] validating h.InitData
// through sessionAdapter and authenticating with h.Biometric.
func NewClientSessionGate(sessionAdapter adapter.SessionAdapter, h *host.Host, logger *logger.Logger) ClientSessionGate {
	return &clientSessionGate{
		adapter: sessionAdapter,
		host:    h,
		now:     time.Now,
		logger:  logger,
	}
}

func (g *clientSessionGate) Open(ctx context.Context) (*Session, error) {
	if err := g.validate(ctx); err != nil {
		return nil, err
	}

	token, err := g.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	g.logger.Info().Str("func", "clientSessionGate.Open").Msg("session opened")
	return &Session{Token: token, OpenedAt: g.now()}, nil
}

// validate asks the validator about the session string. A rejected session
// is closed; a failed round trip is only reported.
func (g *clientSessionGate) validate(ctx context.Context) error {
	valid, err := g.adapter.Validate(ctx, g.host.InitData)
	if err != nil {
		g.logger.Err(err).Str("func", "clientSessionGate.validate").Msg("session validation failed")
		g.host.Feedback.ShowAlert(app.MsgValidationError)
		return mapAdapterError(err)
	}

	if !valid {
		g.logger.Warn().Str("func", "clientSessionGate.validate").Msg("session rejected by validator")
		g.host.Feedback.ShowAlert(app.MsgInvalidSession)
		g.host.Closer.Close()
		return ErrInvalidSession
	}

	return nil
}

func (g *clientSessionGate) authenticate(ctx context.Context) (string, error) {
	biometric := g.host.Biometric

	if !biometric.Available() {
		return "", fmt.Errorf("%w: %w", ErrNotAuthenticated, host.ErrBiometricUnavailable)
	}

	if !biometric.AccessGranted() {
		granted, err := biometric.RequestAccess(ctx, reasonRequestAccess)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
		}
		if !granted {
			return "", fmt.Errorf("%w: biometric access denied", ErrNotAuthenticated)
		}
	}

	result, err := biometric.Authenticate(ctx, reasonAuthenticate)
	if err != nil {
		g.host.Feedback.ShowAlert(app.MsgBiometricFailed)
		return "", fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	if !result.Authenticated {
		g.host.Feedback.ShowAlert(app.MsgBiometricFailed)
		return "", ErrNotAuthenticated
	}

	return result.Token, nil
}
