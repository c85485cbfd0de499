package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/legacy-vault/internal/adapter"
)

// mapAdapterError translates a validator client error into a service error.
// The validator's well-known messages map to the same sentinels the server
// side uses; anything else becomes ErrSessionValidation.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ErrorMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest) && msg == ErrInitDataMissing.Error():
		return ErrInitDataMissing
	case errors.Is(err, adapter.ErrInternalServerError) && msg == ErrServerMisconfigured.Error():
		return fmt.Errorf("%w: %w", ErrSessionValidation, ErrServerMisconfigured)
	default:
		return fmt.Errorf("%w: %w", ErrSessionValidation, err)
	}
}
