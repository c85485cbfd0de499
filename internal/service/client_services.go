package service

import (
	"github.com/MKhiriev/legacy-vault/internal/adapter"
	"github.com/MKhiriev/legacy-vault/internal/crypto"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/store"
	"github.com/MKhiriev/legacy-vault/internal/validators"
)

// ClientServices bundles the vault client's services.
type ClientServices struct {
	DeviceKeyService ClientDeviceKeyService
	SessionGate      ClientSessionGate
	VaultService     ClientVaultService
}

func NewClientServices(kv store.KeyValueStore, sessionAdapter adapter.SessionAdapter, h *host.Host, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewVaultCipher()
	keySvc := NewClientDeviceKeyService(kv, cipher, logger)
	gate := NewClientSessionGate(sessionAdapter, h, logger)

	return &ClientServices{
		DeviceKeyService: keySvc,
		SessionGate:      gate,
		VaultService:     NewClientVaultService(kv, keySvc, cipher, validators.NewAssetValidator(), gate, h.Feedback, logger),
	}
}
