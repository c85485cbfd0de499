// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/utils"
	"github.com/MKhiriev/legacy-vault/models"
)

// maxValidateBody caps the request body. Real session strings are a few
// hundred bytes.
const maxValidateBody = 64 << 10

// validateRequest is [models.ValidateRequest] with initData kept raw, so a
// value of another JSON type can be told apart from a missing one.
type validateRequest struct {
	InitData json.RawMessage `json:"initData"`
}

// sessionString returns the initData to check. Falsy values (null, false,
// 0, "") read as missing. Any other non-string value is passed on in its
// JSON form, which carries no hash and so never validates.
func (r validateRequest) sessionString() string {
	raw := bytes.TrimSpace(r.InitData)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', 'f':
		return ""
	case 't', '{', '[':
		return string(raw)
	default:
		// overflow parses as ±Inf, which is truthy
		if f, _ := strconv.ParseFloat(string(raw), 64); f == 0 {
			return ""
		}
		return string(raw)
	}
}

// validate answers POST /api/validate.
//
// An undecodable body is treated like a missing initData field. The session
// string and its signature are never logged.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req validateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValidateBody)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		req = validateRequest{}
	}

	valid, err := h.services.SessionService.Validate(ctx, req.sessionString())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("session was not validated")
		h.metrics.observeValidation(resultFromError(err))
		utils.WriteJSON(w, models.ValidateResponse{Valid: false, Error: messageFromError(err)}, status)
		return
	}

	h.metrics.observeVerdict(valid)
	utils.WriteJSON(w, models.ValidateResponse{Valid: valid}, http.StatusOK)
}
