package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/models"
)

type businessResponse struct {
	RegistrationNo string `json:"registrationNo"`
	BusinessName   string `json:"businessName"`
}

type loginResponse struct {
	Token   string             `json:"token"`
	Profile models.UserProfile `json:"profile"`
	Notice  models.Notice      `json:"notice"`
}

// sessionResponse reports the session status. User and Initials are only
// filled for a caller holding a token of the active session.
type sessionResponse struct {
	IsLoggedIn bool                `json:"isLoggedIn"`
	User       *models.UserProfile `json:"user,omitempty"`
	Welcome    string              `json:"welcome"`
	Initials   string              `json:"initials,omitempty"`
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) requestSignupOTP(w http.ResponseWriter, r *http.Request) {
	var form models.SignupForm
	if err := decodeJSON(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}

	challenge, err := h.services.AuthService.RequestSignupOTP(r.Context(), form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

// signup completes registration. The record is stored only if the request
// is still alive once the simulated latency has passed.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var form models.SignupForm
	if err := decodeJSON(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.CompleteSignup(r.Context(), form); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Notice{Title: app.TitleAccountCreated, Message: app.MsgAccountCreated}, http.StatusCreated)
}

func (h *Handler) resolveBusiness(w http.ResponseWriter, r *http.Request) {
	regNo := chi.URLParam(r, "regNo")

	name, err := h.services.AuthService.ResolveBusiness(r.Context(), regNo)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, businessResponse{RegistrationNo: regNo, BusinessName: name}, http.StatusOK)
}

func (h *Handler) requestLoginOTP(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}

	challenge, err := h.services.AuthService.RequestLoginOTP(r.Context(), form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.CompleteLogin(ctx, form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, profile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, loginResponse{
		Token:   token.SignedString,
		Profile: profile,
		Notice: models.Notice{
			Title:   app.TitleLoginSuccessful,
			Message: fmt.Sprintf(app.MsgWelcomeBack, profile.BusinessName),
		},
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSession reports the session status without requiring a token so the
// browser shell can decide where to route on load. Profile details are
// disclosed only to the holder of the session's token.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := models.LoggedOut()

	profile, err := h.services.ProfileService.Profile(ctx)
	if err == nil {
		state = models.LoggedIn(profile)
	}

	resp := sessionResponse{IsLoggedIn: state.IsLoggedIn}
	if state.IsLoggedIn && h.holdsSessionToken(r) {
		resp.User = state.User
		resp.Initials = service.Initials(profile.OwnerName)
		resp.Welcome = fmt.Sprintf(app.MsgWelcomeOwnerFormat, service.WelcomeName(state))
	} else {
		resp.Welcome = fmt.Sprintf(app.MsgWelcomeOwnerFormat, service.WelcomeName(models.LoggedOut()))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// holdsSessionToken reports whether r carries a bearer token accepted by the
// session gate. A missing or rejected token is not an error here.
func (h *Handler) holdsSessionToken(r *http.Request) bool {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return false
	}
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return false
	}
	_, err = h.services.AuthService.ParseToken(r.Context(), tokenString)
	return err == nil
}
