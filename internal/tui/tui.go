package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/session"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// SessionSource is the reactive session state the UI is gated by.
type SessionSource interface {
	State() models.SessionState
	Subscribe(fn session.Listener) (cancel func())
}

type TUI struct {
	services  *service.Services
	sessions  SessionSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, sessions SessionSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the dashboard, or the login page when logged out, and blocks
// until the user quits or ctx is cancelled. Quitting with ctrl+c returns
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageDashboard, t.sessions, t.buildInfo, t.logger)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.sessions.Subscribe(func(state models.SessionState) {
		p.Send(sessionChangedMsg{state: state})
	})
	defer unsubscribe()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]page {
	return map[string]page{
		pageLogin:     NewLoginModel(ctx, t.services.AuthService),
		pageSignup:    NewSignupModel(ctx, t.services.AuthService),
		pageDashboard: NewDashboardModel(ctx, t.services),
		pageProfile:   NewProfileModel(ctx, t.services.ProfileService),
		pageBilling:   NewBillingModel(ctx, t.services.AccountService),
		pageSettings:  NewSettingsModel(ctx, t.services.AccountService),
	}
}
