package service

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

// botSecret is read from the environment on every request so that a rotated
// token takes effect without a restart. It is deliberately kept out of
// config.StructuredConfig.
type botSecret struct {
	BotToken string `env:"BOT_TOKEN"`
}

// TokenSource returns the current bot token. An empty token means the server
// is misconfigured.
type TokenSource func() (string, error)

// EnvTokenSource reads BOT_TOKEN from the process environment.
func EnvTokenSource() (string, error) {
	secret, err := env.ParseAs[botSecret]()
	if err != nil {
		return "", err
	}
	return secret.BotToken, nil
}

type sessionService struct {
	token TokenSource

	logger *logger.Logger
}

// NewSessionService returns a [SessionService] that validates against the
// bot token returned by token.
func NewSessionService(token TokenSource, logger *logger.Logger) SessionService {
	return &sessionService{
		token:  token,
		logger: logger,
	}
}

func (s *sessionService) Validate(ctx context.Context, initData string) (bool, error) {
	log := logger.FromContext(ctx)

	if initData == "" {
		return false, ErrInitDataMissing
	}

	botToken, err := s.token()
	if err != nil {
		log.Err(err).Str("func", "sessionService.Validate").Msg("failed to read bot token")
		return false, ErrServerMisconfigured
	}

	valid, err := ValidateInitData(initData, botToken)
	if err != nil {
		return false, err
	}

	log.Debug().Str("func", "sessionService.Validate").Bool("valid", valid).Msg("session checked")
	return valid, nil
}
