package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/models"
)

// Page names known to [RootModel].
const (
	pageLogin     = "login"
	pageSignup    = "signup"
	pageDashboard = "dashboard"
	pageProfile   = "profile"
	pageBilling   = "billing"
	pageSettings  = "settings"
)

// NavigateTo asks the root model to switch pages. Payload, when set, is
// delivered to the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// noticeMsg shows a notice on the receiving page.
type noticeMsg struct {
	notice  models.Notice
	isError bool
}

// sessionChangedMsg carries session store updates into the program.
type sessionChangedMsg struct {
	state models.SessionState
}

type businessResolvedMsg struct {
	seq          int
	businessName string
	err          error
}

type otpSentMsg struct {
	seq       int
	challenge models.OTPChallenge
	err       error
}

type loginDoneMsg struct {
	seq     int
	profile models.UserProfile
	err     error
}

type signupDoneMsg struct {
	seq int
	err error
}

type profileSavedMsg struct {
	seq     int
	profile models.UserProfile
	err     error
}

type logoutDoneMsg struct {
	err error
}
