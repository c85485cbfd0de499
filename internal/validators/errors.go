package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAssetType = errors.New("invalid asset type")
	ErrTooManyAssets    = errors.New("too many assets")
	ErrNilAssetList     = errors.New("asset list is null")
)
