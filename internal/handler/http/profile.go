package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/models"
)

type profileResponse struct {
	Profile  models.UserProfile `json:"profile"`
	Initials string             `json:"initials"`
	Notice   *models.Notice     `json:"notice,omitempty"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.Profile(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profileResponse{Profile: profile, Initials: service.Initials(profile.OwnerName)}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profileResponse{
		Profile:  profile,
		Initials: service.Initials(profile.OwnerName),
		Notice:   &models.Notice{Title: app.TitleProfileUpdated, Message: app.MsgProfileUpdated},
	}, http.StatusOK)
}
