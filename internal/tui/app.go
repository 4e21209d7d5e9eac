package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// page is a screen managed by [RootModel]. Leave is called when the root
// navigates away and must cancel any work the page has in flight.
type page interface {
	tea.Model
	Leave()
}

// sessionState reports whether a business is logged in.
type sessionState interface {
	State() models.SessionState
}

// protectedPages are only reachable with an active session.
var protectedPages = map[string]bool{
	pageDashboard: true,
	pageProfile:   true,
	pageBilling:   true,
	pageSettings:  true,
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the f1 build info window
// 3) handles NavigateTo messages, sending logged-out users to the login page
// 4) follows session changes: when the session ends, protected pages close
// 5) delegates all other messages to the active page
type RootModel struct {
	pages    map[string]page
	current  string
	sessions sessionState

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	logger *logger.Logger
}

// NewRootModel registers all pages and opens startPage, or the login page
// when startPage needs a session and there is none.
func NewRootModel(pages map[string]page, startPage string, sessions sessionState, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	if protectedPages[startPage] && !sessions.State().IsLoggedIn {
		startPage = pageLogin
	}

	return RootModel{
		pages:     pages,
		current:   startPage,
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (r RootModel) Init() tea.Cmd {
	current, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Payload)

	case sessionChangedMsg:
		if !msg.state.IsLoggedIn && protectedPages[r.current] {
			return r.navigate(pageLogin, nil)
		}
		return r, nil
	}

	current, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	if p, ok := updated.(page); ok {
		r.pages[r.current] = p
	}
	return r, cmd
}

func (r RootModel) navigate(name string, payload tea.Msg) (tea.Model, tea.Cmd) {
	if protectedPages[name] && !r.sessions.State().IsLoggedIn {
		name = pageLogin
		payload = noticeMsg{
			notice:  models.Notice{Title: app.TitleSessionExpired, Message: app.MsgLoginRequired},
			isError: true,
		}
	}

	next, ok := r.pages[name]
	if !ok {
		return r, nil
	}

	if current, ok := r.pages[r.current]; ok && name != r.current {
		current.Leave()
	}

	r.logger.Debug().Str("from", r.current).Str("to", name).Msg("navigate")
	r.current = name
	r.showBuildInfo = false

	cmd := next.Init()
	if payload != nil {
		return r, tea.Batch(cmd, func() tea.Msg { return payload })
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	current, ok := r.pages[r.current]
	if !ok {
		return renderPage(app.ProductName, "", "")
	}
	return current.View()
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}
