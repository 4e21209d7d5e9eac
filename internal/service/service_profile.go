package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
	"github.com/MKhiriev/go-invoice-audit/models"
)

type profileService struct {
	sessions  SessionStore
	validator validators.Validator

	logger *logger.Logger
}

func NewProfileService(sessions SessionStore, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

func (p *profileService) Profile(ctx context.Context) (models.UserProfile, error) {
	state := p.sessions.State()
	if !state.IsLoggedIn || state.User == nil {
		return models.UserProfile{}, ErrNotLoggedIn
	}
	return *state.User, nil
}

// UpdateProfile applies the editable fields of update to the active
// session's profile and returns the merged result.
func (p *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.UserProfile{}, err
	}
	if _, err := p.Profile(ctx); err != nil {
		return models.UserProfile{}, err
	}

	if err := p.sessions.UpdateProfile(ctx, update); err != nil {
		log.Err(err).Str("func", "*profileService.UpdateProfile").Msg("error saving profile")
		return models.UserProfile{}, fmt.Errorf("profile update failed: %w", err)
	}

	// The session may have ended between the check and the write.
	return p.Profile(ctx)
}

// Initials returns the upper-cased first letters of the first two words of
// ownerName, or "U" when it has none.
func Initials(ownerName string) string {
	words := strings.Fields(ownerName)
	if len(words) == 0 {
		return "U"
	}

	var b strings.Builder
	for _, w := range words[:min(2, len(words))] {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// WelcomeName is the name shown in the dashboard greeting.
func WelcomeName(state models.SessionState) string {
	if state.User == nil || state.User.OwnerName == "" {
		return app.DefaultOwnerName
	}
	return state.User.OwnerName
}
