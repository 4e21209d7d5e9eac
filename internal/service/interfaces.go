package service

import (
	"context"

	"github.com/MKhiriev/go-invoice-audit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionStore is the part of the session store the services depend on.
// It is satisfied by *session.Store.
type SessionStore interface {
	Login(ctx context.Context, profile models.UserProfile) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	State() models.SessionState

	RegisterSignup(ctx context.Context, record models.SignupRecord) error
	FindSignup(ctx context.Context, regNo string) (models.SignupRecord, bool, error)
	LookupBusinessName(ctx context.Context, regNo string) (string, bool, error)
}

// AuthService drives the two-step signup and login flows and issues the
// session token used by the HTTP API.
type AuthService interface {
	RequestSignupOTP(ctx context.Context, form models.SignupForm) (models.OTPChallenge, error)
	CompleteSignup(ctx context.Context, form models.SignupForm) error

	ResolveBusiness(ctx context.Context, regNo string) (string, error)
	RequestLoginOTP(ctx context.Context, form models.LoginForm) (models.OTPChallenge, error)
	CompleteLogin(ctx context.Context, form models.LoginForm) (models.UserProfile, error)

	Logout(ctx context.Context) error

	CreateToken(ctx context.Context, profile models.UserProfile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	Profile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error)
}

// AccountService serves the static billing and settings pages.
type AccountService interface {
	Billing(ctx context.Context) (models.BillingPlan, error)
	Settings(ctx context.Context) ([]models.SettingsSection, error)
}

// DashboardService serves the invoice table and the summary cards.
type DashboardService interface {
	Invoices(ctx context.Context, cfg models.QueryConfig) []models.Invoice
	Metrics(ctx context.Context) models.Metrics
	Invoice(ctx context.Context, id string) (models.Invoice, error)
	AcknowledgeUpload(ctx context.Context, invoiceType models.InvoiceType) (models.UploadReceipt, error)
	InvoiceAction(ctx context.Context, id string, action models.InvoiceAction) (models.ActionNotice, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
