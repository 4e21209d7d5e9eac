package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/session"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// ---- Helpers ----

func newTestServices(t *testing.T, latency time.Duration) (*service.Services, *session.Store) {
	t.Helper()

	sessions := session.NewStore(store.NewMemoryStore(), logger.Nop())
	services, err := service.NewClientServices(sessions, config.ClientApp{
		Version:          "test",
		SimulatedLatency: latency,
	}, logger.Nop())
	require.NoError(t, err)

	return services, sessions
}

func testSignupForm() models.SignupForm {
	return models.SignupForm{
		OwnerName:       "Asha Rao",
		BusinessName:    "Rao Traders",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		RegistrationNo:  "GST123",
		Location:        "Pune",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		CaptchaToken:    captchaToken,
		OTP:             "123456",
	}
}

func testProfile() models.UserProfile {
	return testSignupForm().Record().Profile()
}

// collect runs cmd and flattens batches into the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// runCmd runs cmd, expecting exactly one message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	return msgs[0]
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func registerTestBusiness(t *testing.T, services *service.Services) {
	t.Helper()
	require.NoError(t, services.AuthService.CompleteSignup(context.Background(), testSignupForm()))
}
