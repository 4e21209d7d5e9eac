package service

import (
	"fmt"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/crypto"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/internal/validators"
)

type Services struct {
	AuthService      AuthService
	ProfileService   ProfileService
	AccountService   AccountService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

// NewServices builds the services behind the HTTP API.
func NewServices(sessions SessionStore, recorder metrics.Recorder, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	return newServices(sessions, recorder, cfg.Version, AuthOptions{
		SimulatedLatency: cfg.SimulatedLatency,
		TokenSignKey:     cfg.TokenSignKey,
		TokenIssuer:      cfg.TokenIssuer,
		TokenDuration:    cfg.TokenDuration,
	}, logger)
}

// NewClientServices builds the services behind the terminal client.
// Tokens are not issued and metrics are discarded.
func NewClientServices(sessions SessionStore, cfg config.ClientApp, logger *logger.Logger) (*Services, error) {
	return newServices(sessions, metrics.Nop(), cfg.Version, AuthOptions{
		SimulatedLatency: cfg.SimulatedLatency,
	}, logger)
}

func newServices(sessions SessionStore, recorder metrics.Recorder, version string, opts AuthOptions, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(version)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewAccessValidator()

	return &Services{
		AuthService:      NewAuthService(sessions, validator, crypto.NewPasswordHasher(), recorder, opts, logger),
		ProfileService:   NewProfileService(sessions, validator, logger),
		AccountService:   NewAccountService(sessions),
		DashboardService: NewDashboardService(invoice.Catalog(), utils.NewIDGenerator("UPL-"), recorder, logger),
		AppInfoService:   appInfo,
	}, nil
}
