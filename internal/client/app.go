package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/tui"
)

var errNoUI = errors.New("client UI is not set")

type App struct {
	sessions SessionRestorer
	ui       UI

	logger *logger.Logger
}

func NewApp(sessions SessionRestorer, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{sessions: sessions, ui: ui, logger: logger}, nil
}

// Run restores the session and runs the UI. Quitting the UI is a normal
// exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.sessions.Initialize(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	state := a.sessions.State()
	log := a.logger.Info().Bool("logged_in", state.IsLoggedIn)
	if state.User != nil {
		log = log.Str("registration_no", state.User.RegistrationNo)
	}
	log.Msg("session restored")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	}

	return fmt.Errorf("run UI: %w", err)
}
