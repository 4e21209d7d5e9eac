package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/session"
	"github.com/MKhiriev/go-invoice-audit/models"
)

func newTestRoot(t *testing.T, loggedIn bool) (RootModel, *session.Store) {
	t.Helper()

	services, sessions := newTestServices(t, 0)
	if loggedIn {
		require.NoError(t, sessions.Login(context.Background(), testProfile()))
	}

	ui := New(services, sessions, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
	root := NewRootModel(ui.pages(context.Background()), pageDashboard, sessions, ui.buildInfo, logger.Nop())
	root.Init()
	return root, sessions
}

// feed sends msg to the root and then every message its command produces.
func feed(r RootModel, msg tea.Msg) RootModel {
	updated, cmd := r.Update(msg)
	r = updated.(RootModel)
	for _, next := range collect(cmd) {
		updated, _ = r.Update(next)
		r = updated.(RootModel)
	}
	return r
}

func TestRootModel_StartsOnLoginWhenLoggedOut(t *testing.T) {
	root, _ := newTestRoot(t, false)
	assert.Equal(t, pageLogin, root.Current())
}

func TestRootModel_StartsOnDashboardWhenLoggedIn(t *testing.T) {
	root, _ := newTestRoot(t, true)
	assert.Equal(t, pageDashboard, root.Current())
}

func TestRootModel_GateRedirectsToLogin(t *testing.T) {
	root, _ := newTestRoot(t, false)

	root = feed(root, NavigateTo{Page: pageProfile})

	assert.Equal(t, pageLogin, root.Current())
	login := root.pages[pageLogin].(*LoginModel)
	require.NotNil(t, login.notice)
	assert.Equal(t, "Session expired", login.notice.Title)
}

func TestRootModel_SessionEndClosesProtectedPage(t *testing.T) {
	root, sessions := newTestRoot(t, true)
	root = feed(root, NavigateTo{Page: pageProfile})
	require.Equal(t, pageProfile, root.Current())

	require.NoError(t, sessions.Logout(context.Background()))
	root = feed(root, sessionChangedMsg{state: sessions.State()})

	assert.Equal(t, pageLogin, root.Current())
}

func TestRootModel_SessionChangeOnPublicPage(t *testing.T) {
	root, _ := newTestRoot(t, false)

	root = feed(root, sessionChangedMsg{state: models.LoggedOut()})

	assert.Equal(t, pageLogin, root.Current())
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root, _ := newTestRoot(t, true)

	root = feed(root, NavigateTo{Page: pageDashboard, Payload: noticeMsg{notice: models.Notice{Title: "Login Successful"}}})

	dash := root.pages[pageDashboard].(*DashboardModel)
	require.NotNil(t, dash.notice)
	assert.Equal(t, "Login Successful", dash.notice.Title)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, _ := newTestRoot(t, true)

	root = feed(root, NavigateTo{Page: "nowhere"})

	assert.Equal(t, pageDashboard, root.Current())
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	root, _ := newTestRoot(t, false)

	root = feed(root, keyPress("f1"))
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.2.3")

	// keys are swallowed while the window is open
	root = feed(root, keyPress("ctrl+n"))
	assert.Equal(t, pageLogin, root.Current())

	root = feed(root, keyPress("esc"))
	assert.False(t, root.showBuildInfo)

	updated, cmd := root.Update(keyPress("ctrl+c"))
	assert.True(t, updated.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
