package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/models"
)

type settingsResponse struct {
	Sections []models.SettingsSection `json:"sections"`
}

func (h *Handler) getBilling(w http.ResponseWriter, r *http.Request) {
	plan, err := h.services.AccountService.Billing(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	sections, err := h.services.AccountService.Settings(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, settingsResponse{Sections: sections}, http.StatusOK)
}
