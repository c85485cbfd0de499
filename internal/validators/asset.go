package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-vault/models"
)

// Field name constants accepted by [AssetValidator.Validate].
const (
	// FieldType targets the asset type of a record.
	FieldType = "type"

	// FieldCapacity targets the record count of a list.
	FieldCapacity = "capacity"

	// FieldRecords targets every record of a list.
	FieldRecords = "records"

	// FieldPresence rejects a nil list. A decrypted "null" must not be
	// mistaken for an empty vault.
	FieldPresence = "presence"
)

// AssetValidator implements [Validator] for models.AssetRecord and
// models.AssetList, in value and pointer form.
type AssetValidator struct{}

// NewAssetValidator constructs a new AssetValidator.
func NewAssetValidator() Validator {
	return &AssetValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns
// ErrUnsupportedType for anything that is not an asset record or list.
func (v *AssetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AssetRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.AssetRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case models.AssetList:
		return v.validateList(ctx, value, fields...)
	case *models.AssetList:
		if value == nil {
			return ErrNilAssetList
		}
		return v.validateList(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateRecord checks a single record. Details and notes are free text
// and may be empty.
func (v *AssetValidator) validateRecord(_ context.Context, record models.AssetRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !record.Type.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidAssetType, record.Type)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateList checks a whole list.
//
// Default validated fields: Capacity, Records.
func (v *AssetValidator) validateList(ctx context.Context, list models.AssetList, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCapacity, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldPresence:
			if list == nil {
				return ErrNilAssetList
			}
		case FieldCapacity:
			if len(list) > models.MaxAssets {
				return fmt.Errorf("%w: %d > %d", ErrTooManyAssets, len(list), models.MaxAssets)
			}
		case FieldRecords:
			for i, record := range list {
				if err := v.validateRecord(ctx, record, FieldType); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
