package service

import "context"

// SessionService checks host-issued session strings.
type SessionService interface {
	// Validate returns the verdict for initData. ErrInitDataMissing and
	// ErrServerMisconfigured are the only errors.
	Validate(ctx context.Context, initData string) (bool, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
