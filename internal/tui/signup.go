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
	signupOwnerName = iota
	signupBusinessName
	signupEmail
	signupPhone
	signupRegistrationNo
	signupLocation
	signupPassword
	signupConfirmPassword
)

var signupLabels = []string{
	"Owner name      ",
	"Business name   ",
	"Email           ",
	"Phone           ",
	"Registration no ",
	"Location        ",
	"Password        ",
	"Confirm password",
}

// SignupModel is the two-step signup page: the business details form, then
// the one-time code sent to the entered phone number.
type SignupModel struct {
	ctx  context.Context
	auth service.AuthService
	task task

	inputs  []textinput.Model
	focus   int
	captcha bool
	otpStep bool
	otp     textinput.Model

	notice  *models.Notice
	isError bool
}

func NewSignupModel(ctx context.Context, auth service.AuthService) *SignupModel {
	m := &SignupModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			newInput("Full name", 64),
			newInput("Trade name", 64),
			newInput("name@example.com", 128),
			newInput("Mobile number", 15),
			newInput("GST / CIN number", 32),
			newInput("City, State", 64),
			newPasswordInput("at least 8 characters"),
			newPasswordInput("repeat password"),
		},
		otp: newInput("6-digit code", 6),
	}
	m.reset()
	return m
}

func (m *SignupModel) reset() {
	m.task.abandon()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = signupOwnerName
	m.inputs[m.focus].Focus()
	m.otp.SetValue("")
	m.otp.Blur()
	m.otpStep = false
	m.captcha = false
	m.notice = nil
	m.isError = false
}

func (m *SignupModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Leave cancels a pending signup.
func (m *SignupModel) Leave() {
	m.task.abandon()
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.setNotice(msg.notice, msg.isError)
		return m, nil

	case otpSentMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.setNotice(service.Describe(msg.err), true)
			return m, nil
		}
		m.setNotice(models.Notice{Title: app.TitleOTPSent, Message: msg.challenge.Message}, false)
		m.otpStep = true
		m.inputs[m.focus].Blur()
		m.otp.Focus()
		return m, nil

	case signupDoneMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			if !isCancelled(msg.err) {
				m.setNotice(service.Describe(msg.err), true)
			}
			return m, nil
		}
		created := noticeMsg{notice: models.Notice{Title: app.TitleAccountCreated, Message: app.MsgAccountCreated}}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: created} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *SignupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.otpStep {
			m.task.abandon()
			m.otpStep = false
			m.otp.SetValue("")
			m.otp.Blur()
			m.inputs[m.focus].Focus()
			m.notice = nil
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }

	case key.Matches(msg, keys.captcha):
		if !m.otpStep {
			m.captcha = !m.captcha
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.task.running() {
			return m, nil
		}
		if m.otpStep {
			return m, m.cmdSignup(m.form())
		}
		return m, m.cmdRequestOTP(m.form())

	case !m.otpStep && key.Matches(msg, keys.tab):
		focusInput(m.inputs, &m.focus, 1)
		return m, nil

	case !m.otpStep && key.Matches(msg, keys.backtab):
		focusInput(m.inputs, &m.focus, -1)
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *SignupModel) form() models.SignupForm {
	v := func(i int) string { return m.inputs[i].Value() }

	form := models.SignupForm{
		OwnerName:       v(signupOwnerName),
		BusinessName:    v(signupBusinessName),
		Email:           v(signupEmail),
		Phone:           v(signupPhone),
		RegistrationNo:  v(signupRegistrationNo),
		Location:        v(signupLocation),
		Password:        v(signupPassword),
		ConfirmPassword: v(signupConfirmPassword),
		OTP:             strings.TrimSpace(m.otp.Value()),
	}
	if m.captcha {
		form.CaptchaToken = captchaToken
	}
	return form
}

func (m *SignupModel) cmdRequestOTP(form models.SignupForm) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		challenge, err := auth.RequestSignupOTP(ctx, form)
		return otpSentMsg{seq: seq, challenge: challenge, err: err}
	}
}

func (m *SignupModel) cmdSignup(form models.SignupForm) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		return signupDoneMsg{seq: seq, err: auth.CompleteSignup(ctx, form)}
	}
}

func (m *SignupModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.otpStep {
		m.otp, cmd = m.otp.Update(msg)
		return cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *SignupModel) setNotice(n models.Notice, isError bool) {
	m.notice = &n
	m.isError = isError
}

func (m *SignupModel) View() string {
	var b strings.Builder

	for i, in := range m.inputs {
		b.WriteString(signupLabels[i])
		b.WriteString(" │ ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("                 │ ")
	b.WriteString(renderCaptcha(m.captcha))
	b.WriteString("\n")

	label := "Send OTP"
	if m.otpStep {
		b.WriteString("OTP              │ ")
		b.WriteString(m.otp.View())
		b.WriteString("\n")
		label = "Verify & Create Account"
	}

	if m.task.running() {
		b.WriteString("\n[Please wait...]\n")
	} else {
		b.WriteString("\n[" + label + "]\n")
	}

	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"),
		"enter: "+strings.ToLower(label)+" │ tab: next field │ ctrl+t: captcha │ esc: back")
}
