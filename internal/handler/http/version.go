package http

import (
	"net/http"

	"github.com/MKhiriev/legacy-vault/internal/utils"
	"github.com/MKhiriev/legacy-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK)
}
