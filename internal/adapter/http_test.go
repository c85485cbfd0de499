// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/models"
)

func newTestAdapter(t *testing.T, serverURL string) SessionAdapter {
	t.Helper()

	a, err := NewHTTPSessionAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── NewHTTPSessionAdapter ───────────────────────────────────────────────────

func TestNewHTTPSessionAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPSessionAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://vault.example.com/", want: "https://vault.example.com"},
		{name: "no scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Validate ────────────────────────────────────────────────────────────────

func TestValidate_Verdicts(t *testing.T) {
	for _, verdict := range []bool{true, false} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/validate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req models.ValidateRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "auth_date=1&hash=abc", req.InitData)

			_ = json.NewEncoder(w).Encode(models.ValidateResponse{Valid: verdict})
		}))

		got, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "auth_date=1&hash=abc")
		srv.Close()

		require.NoError(t, err)
		assert.Equal(t, verdict, got)
	}
}

func TestValidate_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing init data",
			status:  http.StatusBadRequest,
			body:    `{"valid":false,"error":"initData missing"}`,
			wantErr: ErrBadRequest,
			wantMsg: "initData missing",
		},
		{
			name:    "misconfigured server",
			status:  http.StatusInternalServerError,
			body:    `{"valid":false,"error":"server misconfigured"}`,
			wantErr: ErrInternalServerError,
			wantMsg: "server misconfigured",
		},
		{
			name:    "method not allowed",
			status:  http.StatusMethodNotAllowed,
			body:    "Method Not Allowed",
			wantErr: ErrMethodNotAllowed,
			wantMsg: "Method Not Allowed",
		},
		{
			name:    "unexpected status",
			status:  http.StatusTeapot,
			body:    "",
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			valid, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "x=1")

			assert.False(t, valid)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, ErrorMessage(err))
			}
		})
	}
}

func TestValidate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Validate(context.Background(), "x=1")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestValidate_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Validate(context.Background(), "x=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate request")
}

func TestValidate_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).Validate(ctx, "x=1")
	assert.Error(t, err)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte(`{"version":"1.4.0"}`))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestVersion_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── ErrorMessage ────────────────────────────────────────────────────────────

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Empty(t, ErrorMessage(ErrBadRequest))
}
