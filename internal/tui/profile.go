package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/models"
)

const (
	profileOwnerName = iota
	profileEmail
	profilePhone
	profileLocation
)

var profileLabels = []string{
	"Owner name      ",
	"Email           ",
	"Phone           ",
	"Location        ",
}

// ProfileModel edits the editable part of the active profile. Business name
// and registration number are shown read-only.
type ProfileModel struct {
	ctx      context.Context
	profiles service.ProfileService
	task     task

	profile models.UserProfile
	inputs  []textinput.Model
	focus   int

	notice  *models.Notice
	isError bool
}

func NewProfileModel(ctx context.Context, profiles service.ProfileService) *ProfileModel {
	return &ProfileModel{
		ctx:      ctx,
		profiles: profiles,
		inputs: []textinput.Model{
			newInput("Full name", 64),
			newInput("name@example.com", 128),
			newInput("Mobile number", 15),
			newInput("City, State", 64),
		},
	}
}

// Init loads the current profile into the form.
func (m *ProfileModel) Init() tea.Cmd {
	m.task.abandon()
	m.notice = nil
	m.isError = false

	profile, err := m.profiles.Profile(m.ctx)
	if err != nil {
		m.profile = models.UserProfile{}
		m.fill()
		return errorNotice(err)
	}

	m.profile = profile
	m.fill()
	return textinput.Blink
}

func (m *ProfileModel) Leave() {
	m.task.abandon()
}

func (m *ProfileModel) fill() {
	m.inputs[profileOwnerName].SetValue(m.profile.OwnerName)
	m.inputs[profileEmail].SetValue(m.profile.Email)
	m.inputs[profilePhone].SetValue(m.profile.Phone)
	m.inputs[profileLocation].SetValue(m.profile.Location)

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = profileOwnerName
	m.inputs[m.focus].Focus()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.setNotice(msg.notice, msg.isError)
		return m, nil

	case profileSavedMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.setNotice(service.Describe(msg.err), true)
			return m, nil
		}
		m.profile = msg.profile
		m.fill()
		m.setNotice(models.Notice{Title: app.TitleProfileUpdated, Message: app.MsgProfileUpdated}, false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(msg, keys.tab):
			focusInput(m.inputs, &m.focus, 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			focusInput(m.inputs, &m.focus, -1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.task.running() {
				return m, nil
			}
			return m, m.cmdSave(m.changes())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// changes returns an update holding only the edited fields.
func (m *ProfileModel) changes() models.ProfileUpdate {
	var update models.ProfileUpdate

	changed := func(i int, current string) *string {
		v := strings.TrimSpace(m.inputs[i].Value())
		if v == current {
			return nil
		}
		return models.StringPtr(v)
	}

	update.OwnerName = changed(profileOwnerName, m.profile.OwnerName)
	update.Email = changed(profileEmail, m.profile.Email)
	update.Phone = changed(profilePhone, m.profile.Phone)
	update.Location = changed(profileLocation, m.profile.Location)

	return update
}

func (m *ProfileModel) cmdSave(update models.ProfileUpdate) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	profiles := m.profiles

	return func() tea.Msg {
		profile, err := profiles.UpdateProfile(ctx, update)
		return profileSavedMsg{seq: seq, profile: profile, err: err}
	}
}

func (m *ProfileModel) setNotice(n models.Notice, isError bool) {
	m.notice = &n
	m.isError = isError
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(avatarStyle.Render(service.Initials(m.profile.OwnerName)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(m.profile.BusinessName))
	b.WriteString("\n\n")

	b.WriteString("Business name    │ ")
	b.WriteString(readOnlyStyle.Render(m.profile.BusinessName + " (read-only)"))
	b.WriteString("\n")
	b.WriteString("Registration no  │ ")
	b.WriteString(readOnlyStyle.Render(m.profile.RegistrationNo + " (read-only)"))
	b.WriteString("\n")

	for i, in := range m.inputs {
		b.WriteString(profileLabels[i])
		b.WriteString(" │ ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.task.running() {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save Changes]\n")
	}

	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "enter: save │ tab: next field │ esc: dashboard")
}
