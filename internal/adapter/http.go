package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/utils"
	"github.com/MKhiriev/legacy-vault/models"
)

const (
	validatePath = "/api/validate"
	versionPath  = "/api/version"
)

type httpSessionAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSessionAdapter constructs an HTTP implementation of [SessionAdapter].
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPSessionAdapter(cfg config.ClientAdapter, log *logger.Logger) (SessionAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSessionAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate implements [SessionAdapter].
func (h *httpSessionAdapter) Validate(ctx context.Context, initData string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ValidateRequest{InitData: initData}).
		Post(validatePath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpSessionAdapter.Validate").Msg("validate request failed")
		return false, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Int("status", resp.StatusCode()).Str("func", "*httpSessionAdapter.Validate").Msg("validator rejected request")
		return false, err
	}

	var vr models.ValidateResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return false, fmt.Errorf("%w: decode validate response: %w", ErrUnexpectedResponse, err)
	}

	return vr.Valid, nil
}

// Version implements [SessionAdapter].
func (h *httpSessionAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return "", fmt.Errorf("%w: decode version response: %w", ErrUnexpectedResponse, err)
	}

	return vr.Version, nil
}
