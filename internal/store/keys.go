package store

// Well-known keys of the persisted vault layout.
const (
	KeyDeviceKey = "dlv_device_key"
	KeyAssets    = "dlv_assets"
)

// ownerKey marks key as last written to the fallback store. The marker lives
// in the fallback store itself so it survives restarts.
func ownerKey(key string) string {
	return "dlv_fallback_owner:" + key
}
