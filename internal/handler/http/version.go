package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.services.AppInfo.GetAppVersion(r.Context())}, http.StatusOK)
}
