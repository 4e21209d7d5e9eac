package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/crypto"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
	"github.com/MKhiriev/go-invoice-audit/internal/workers"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// AuthOptions holds the tunables of the access flows.
type AuthOptions struct {
	// SimulatedLatency delays the final step of signup and login.
	SimulatedLatency time.Duration

	// Token parameters. Left empty by the terminal client, which has no
	// use for tokens; CreateToken then fails with ErrTokenCreationFailed.
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// authService is the concrete implementation of AuthService.
type authService struct {
	sessions  SessionStore
	validator validators.Validator
	hasher    crypto.PasswordHasher
	recorder  metrics.Recorder

	opts AuthOptions

	logger *logger.Logger
}

// NewAuthService wires the access flows to the session store.
// The returned service is safe for concurrent use.
func NewAuthService(
	sessions SessionStore,
	validator validators.Validator,
	hasher crypto.PasswordHasher,
	recorder metrics.Recorder,
	opts AuthOptions,
	logger *logger.Logger,
) AuthService {
	return &authService{
		sessions:  sessions,
		validator: validator,
		hasher:    hasher,
		recorder:  recorder,
		opts:      opts,
		logger:    logger,
	}
}

// RequestSignupOTP checks the signup form and "sends" a verification code
// to the phone number on it.
func (a *authService) RequestSignupOTP(ctx context.Context, form models.SignupForm) (models.OTPChallenge, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RequestSignupOTP").Msg("signup form rejected")
		return models.OTPChallenge{}, err
	}

	return models.OTPChallenge{
		Destination: form.Phone,
		Message:     fmt.Sprintf(app.MsgOTPSentTo, form.Phone),
	}, nil
}

// CompleteSignup re-checks the form together with its OTP, waits for the
// simulated latency and appends the record to the directory with the
// password hashed. Nothing is written if ctx ends during the wait.
func (a *authService) CompleteSignup(ctx context.Context, form models.SignupForm) error {
	log := logger.FromContext(ctx).With().Str("func", "*authService.CompleteSignup").Logger()

	if err := a.validator.Validate(ctx, form); err != nil {
		return err
	}
	if err := a.validator.Validate(ctx, form, validators.FieldOTP); err != nil {
		return err
	}

	record := form.Record()
	hash, err := a.hasher.Hash(record.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		a.recorder.RecordSignup(metrics.ResultFailure)
		return fmt.Errorf("signup failed: %w", err)
	}
	record.Password = hash

	err = workers.After(ctx, a.opts.SimulatedLatency, func(ctx context.Context) error {
		return a.sessions.RegisterSignup(ctx, record)
	})
	if err != nil {
		log.Err(err).Str("registration_no", record.RegistrationNo).Msg("signup was not completed")
		a.recorder.RecordSignup(metrics.ResultFailure)
		return fmt.Errorf("signup failed: %w", err)
	}

	log.Info().Str("registration_no", record.RegistrationNo).Msg("business registered")
	a.recorder.RecordSignup(metrics.ResultSuccess)
	return nil
}

// ResolveBusiness returns the business name registered under regNo.
// The input is trimmed; the directory lookup itself is exact.
func (a *authService) ResolveBusiness(ctx context.Context, regNo string) (string, error) {
	regNo = strings.TrimSpace(regNo)
	if regNo == "" {
		return "", fmt.Errorf("%w: %s is required", validators.ErrIncompleteForm, validators.FieldRegistrationNo)
	}

	name, ok, err := a.sessions.LookupBusinessName(ctx, regNo)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ResolveBusiness").Msg("directory lookup failed")
		return "", fmt.Errorf("business lookup failed: %w", err)
	}
	if !ok {
		return "", ErrBusinessNotFound
	}

	return name, nil
}

func (a *authService) RequestLoginOTP(ctx context.Context, form models.LoginForm) (models.OTPChallenge, error) {
	form.RegistrationNo = strings.TrimSpace(form.RegistrationNo)
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.OTPChallenge{}, err
	}

	return models.OTPChallenge{Message: app.MsgOTPSentRegistered}, nil
}

// CompleteLogin verifies the password against the first directory record
// with the given registration number, waits for the simulated latency and
// opens a session with that record's profile.
func (a *authService) CompleteLogin(ctx context.Context, form models.LoginForm) (models.UserProfile, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.CompleteLogin").Logger()

	form.RegistrationNo = strings.TrimSpace(form.RegistrationNo)
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.UserProfile{}, err
	}
	if err := a.validator.Validate(ctx, form, validators.FieldOTP); err != nil {
		return models.UserProfile{}, err
	}

	record, ok, err := a.sessions.FindSignup(ctx, form.RegistrationNo)
	if err != nil {
		log.Err(err).Msg("directory lookup failed")
		a.recorder.RecordLogin(metrics.ResultFailure)
		return models.UserProfile{}, fmt.Errorf("login failed: %w", err)
	}
	if !ok {
		a.recorder.RecordLogin(metrics.ResultFailure)
		return models.UserProfile{}, ErrBusinessNotFound
	}

	if err = a.hasher.Compare(record.Password, form.Password); err != nil {
		log.Warn().Str("registration_no", form.RegistrationNo).Msg("wrong password")
		a.recorder.RecordLogin(metrics.ResultFailure)
		return models.UserProfile{}, ErrWrongPassword
	}

	profile := record.Profile()
	err = workers.After(ctx, a.opts.SimulatedLatency, func(ctx context.Context) error {
		return a.sessions.Login(ctx, profile)
	})
	if err != nil {
		log.Err(err).Str("registration_no", form.RegistrationNo).Msg("login was not completed")
		a.recorder.RecordLogin(metrics.ResultFailure)
		return models.UserProfile{}, fmt.Errorf("login failed: %w", err)
	}

	log.Info().Str("registration_no", form.RegistrationNo).Msg("logged in")
	a.recorder.RecordLogin(metrics.ResultSuccess)
	return profile, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("logout failed")
		return fmt.Errorf("logout failed: %w", err)
	}

	a.recorder.RecordLogout()
	return nil
}

// CreateToken issues a session token whose subject is the registration
// number of profile.
func (a *authService) CreateToken(ctx context.Context, profile models.UserProfile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.opts.TokenIssuer, profile.RegistrationNo, a.opts.TokenDuration, a.opts.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString and checks that its subject is the
// business of the active session. A token that outlived its session is
// rejected with ErrSessionMismatch.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.opts.TokenSignKey, a.opts.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	state := a.sessions.State()
	if !state.IsLoggedIn || state.User == nil {
		return models.Token{}, ErrNotLoggedIn
	}
	if state.User.RegistrationNo != token.Subject {
		return models.Token{}, ErrSessionMismatch
	}

	return token, nil
}
