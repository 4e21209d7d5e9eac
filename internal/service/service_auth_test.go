// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-invoice-audit/internal/crypto"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/mock"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

type authDeps struct {
	sessions *mock.MockSessionStore
	hasher   *mock.MockPasswordHasher
	recorder *mock.MockRecorder
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, opts AuthOptions) (*authService, authDeps) {
	t.Helper()

	deps := authDeps{
		sessions: mock.NewMockSessionStore(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
		recorder: mock.NewMockRecorder(ctrl),
	}

	svc := NewAuthService(deps.sessions, validators.NewAccessValidator(), deps.hasher, deps.recorder, opts, logger.Nop()).(*authService)
	return svc, deps
}

func signupForm() models.SignupForm {
	return models.SignupForm{
		OwnerName:       "Asha Rao",
		BusinessName:    "Rao Traders",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		RegistrationNo:  "GST123",
		Location:        "Pune",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		CaptchaToken:    "captcha",
		OTP:             "123456",
	}
}

func loginForm() models.LoginForm {
	return models.LoginForm{
		RegistrationNo: "GST123",
		BusinessName:   "Rao Traders",
		Password:       "secret123",
		CaptchaToken:   "captcha",
		OTP:            "654321",
	}
}

func storedRecord() models.SignupRecord {
	r := signupForm().Record()
	r.Password = "$2a$10$hash"
	return r
}

// ── RequestSignupOTP ─────────────────────────────────────────────────────────

func TestAuthService_RequestSignupOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	challenge, err := svc.RequestSignupOTP(context.Background(), signupForm())

	require.NoError(t, err)
	assert.Equal(t, "9876543210", challenge.Destination)
	assert.Equal(t, "A verification code has been sent to 9876543210.", challenge.Message)
}

func TestAuthService_RequestSignupOTP_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	form := signupForm()
	form.ConfirmPassword = "different1"
	_, err := svc.RequestSignupOTP(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)

	form = signupForm()
	form.Password, form.ConfirmPassword = "short", "short"
	_, err = svc.RequestSignupOTP(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	form = signupForm()
	form.CaptchaToken = ""
	_, err = svc.RequestSignupOTP(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrIncompleteForm)
}

// ── CompleteSignup ───────────────────────────────────────────────────────────

func TestAuthService_CompleteSignup_StoresHashedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})
	ctx := context.Background()

	gomock.InOrder(
		deps.hasher.EXPECT().Hash("secret123").Return("$2a$10$hash", nil),
		deps.sessions.EXPECT().RegisterSignup(gomock.Any(), storedRecord()).Return(nil),
		deps.recorder.EXPECT().RecordSignup(metrics.ResultSuccess),
	)

	require.NoError(t, svc.CompleteSignup(ctx, signupForm()))
}

func TestAuthService_CompleteSignup_InvalidOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	form := signupForm()
	form.OTP = "123"

	err := svc.CompleteSignup(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrInvalidOTP)
}

func TestAuthService_CompleteSignup_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	deps.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrHashingPassword)
	deps.recorder.EXPECT().RecordSignup(metrics.ResultFailure)

	err := svc.CompleteSignup(context.Background(), signupForm())
	assert.ErrorIs(t, err, crypto.ErrHashingPassword)
}

func TestAuthService_CompleteSignup_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	deps.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$10$hash", nil)
	deps.sessions.EXPECT().RegisterSignup(gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)
	deps.recorder.EXPECT().RecordSignup(metrics.ResultFailure)

	err := svc.CompleteSignup(context.Background(), signupForm())
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestAuthService_CompleteSignup_CancelledDuringLatency(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{SimulatedLatency: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	deps.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$10$hash", nil)
	deps.recorder.EXPECT().RecordSignup(metrics.ResultFailure)
	// RegisterSignup must not be called.

	err := svc.CompleteSignup(ctx, signupForm())
	assert.ErrorIs(t, err, context.Canceled)
}

// ── ResolveBusiness ──────────────────────────────────────────────────────────

func TestAuthService_ResolveBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})
	ctx := context.Background()

	deps.sessions.EXPECT().LookupBusinessName(ctx, "GST123").Return("Rao Traders", true, nil)
	name, err := svc.ResolveBusiness(ctx, "  GST123 ")
	require.NoError(t, err)
	assert.Equal(t, "Rao Traders", name)

	deps.sessions.EXPECT().LookupBusinessName(ctx, "UNKNOWN").Return("", false, nil)
	_, err = svc.ResolveBusiness(ctx, "UNKNOWN")
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = svc.ResolveBusiness(ctx, "   ")
	assert.ErrorIs(t, err, validators.ErrIncompleteForm)

	deps.sessions.EXPECT().LookupBusinessName(ctx, "GST9").Return("", false, store.ErrStoreUnavailable)
	_, err = svc.ResolveBusiness(ctx, "GST9")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── RequestLoginOTP ──────────────────────────────────────────────────────────

func TestAuthService_RequestLoginOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	challenge, err := svc.RequestLoginOTP(context.Background(), loginForm())
	require.NoError(t, err)
	assert.Equal(t, "A verification code has been sent to your registered phone.", challenge.Message)

	form := loginForm()
	form.BusinessName = ""
	_, err = svc.RequestLoginOTP(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrIncompleteForm)
}

// ── CompleteLogin ────────────────────────────────────────────────────────────

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	record := storedRecord()
	form := loginForm()
	form.RegistrationNo = " GST123 "

	gomock.InOrder(
		deps.sessions.EXPECT().FindSignup(gomock.Any(), "GST123").Return(record, true, nil),
		deps.hasher.EXPECT().Compare(record.Password, "secret123").Return(nil),
		deps.sessions.EXPECT().Login(gomock.Any(), record.Profile()).Return(nil),
		deps.recorder.EXPECT().RecordLogin(metrics.ResultSuccess),
	)

	profile, err := svc.CompleteLogin(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, record.Profile(), profile)
}

func TestAuthService_CompleteLogin_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	deps.sessions.EXPECT().FindSignup(gomock.Any(), "GST123").Return(models.SignupRecord{}, false, nil)
	deps.recorder.EXPECT().RecordLogin(metrics.ResultFailure)

	_, err := svc.CompleteLogin(context.Background(), loginForm())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestAuthService_CompleteLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	deps.sessions.EXPECT().FindSignup(gomock.Any(), "GST123").Return(storedRecord(), true, nil)
	deps.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(crypto.ErrPasswordMismatch)
	deps.recorder.EXPECT().RecordLogin(metrics.ResultFailure)

	_, err := svc.CompleteLogin(context.Background(), loginForm())
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_CompleteLogin_InvalidOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	form := loginForm()
	form.OTP = ""

	_, err := svc.CompleteLogin(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrInvalidOTP)
}

func TestAuthService_CompleteLogin_CancelledDuringLatency(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{SimulatedLatency: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	deps.sessions.EXPECT().FindSignup(gomock.Any(), "GST123").Return(storedRecord(), true, nil)
	deps.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
	deps.recorder.EXPECT().RecordLogin(metrics.ResultFailure)
	// Login must not be called.

	_, err := svc.CompleteLogin(ctx, loginForm())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, AuthOptions{})

	deps.sessions.EXPECT().Logout(gomock.Any()).Return(nil)
	deps.recorder.EXPECT().RecordLogout()
	require.NoError(t, svc.Logout(context.Background()))

	boom := errors.New("disk full")
	deps.sessions.EXPECT().Logout(gomock.Any()).Return(boom)
	assert.ErrorIs(t, svc.Logout(context.Background()), boom)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func tokenOpts() AuthOptions {
	return AuthOptions{TokenSignKey: "sign-key", TokenIssuer: "invoice-audit", TokenDuration: time.Hour}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, tokenOpts())
	ctx := context.Background()
	profile := storedRecord().Profile()

	token, err := svc.CreateToken(ctx, profile)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	deps.sessions.EXPECT().State().Return(models.LoggedIn(profile))
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "GST123", parsed.Subject)
}

func TestAuthService_ParseToken_SessionEnded(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestAuthSvc(t, ctrl, tokenOpts())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, storedRecord().Profile())
	require.NoError(t, err)

	deps.sessions.EXPECT().State().Return(models.LoggedOut())
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	other := storedRecord().Profile()
	other.RegistrationNo = "GST999"
	deps.sessions.EXPECT().State().Return(models.LoggedIn(other))
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrSessionMismatch)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, tokenOpts())

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, AuthOptions{})

	_, err := svc.CreateToken(context.Background(), storedRecord().Profile())
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
