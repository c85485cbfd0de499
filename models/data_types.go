package models

import "encoding/json"

// MaxAssets is the maximum number of records a vault can hold.
const MaxAssets = 10

// AssetType defines the semantic category of an asset record.
// The empty value is allowed and means "unspecified".
type AssetType string

const (
	// AssetTypeNone is the unspecified asset type.
	AssetTypeNone AssetType = ""

	// AssetTypeCrypto represents a crypto wallet, exchange account or address.
	AssetTypeCrypto AssetType = "crypto"

	// AssetTypeDomain represents a registered domain name.
	AssetTypeDomain AssetType = "domain"

	// AssetTypeOther represents anything that does not fit the other types.
	AssetTypeOther AssetType = "other"
)

// IsValid reports whether t is one of the known asset types.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeNone, AssetTypeCrypto, AssetTypeDomain, AssetTypeOther:
		return true
	default:
		return false
	}
}

// AssetRecord is a single vault entry. It is serialized to JSON and stored
// only inside the encrypted blob.
type AssetRecord struct {
	// Type is the category of the asset.
	Type AssetType `json:"type"`

	// Details holds the identifying information (e.g. a wallet address).
	Details string `json:"details"`

	// Notes holds free-form user notes. May be empty.
	Notes string `json:"notes"`
}

// AssetList is the ordered collection of records in display order.
type AssetList []AssetRecord

// Clone returns a copy of the list that shares no backing array with l.
// A nil list is cloned into an empty, non-nil list.
func (l AssetList) Clone() AssetList {
	out := make(AssetList, len(l))
	copy(out, l)
	return out
}

// MarshalJSON always encodes the list as a JSON array, never as null.
func (l AssetList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]AssetRecord(l))
}
