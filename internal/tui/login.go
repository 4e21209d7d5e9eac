// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/models"
)

type loginStep int

const (
	loginStepRegNo loginStep = iota
	loginStepCredentials
	loginStepOTP
)

// captchaToken stands in for the widget token of the web form.
const captchaToken = "terminal-captcha"

// LoginModel is the login page. The registration number is resolved to a
// business name first, then password and captcha are checked and a one-time
// code is requested. Completing the code step logs the business in after
// the simulated latency; leaving the page cancels a pending login.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService
	task task

	step         loginStep
	regNo        textinput.Model
	password     textinput.Model
	otp          textinput.Model
	businessName string
	captcha      bool

	notice  *models.Notice
	isError bool
}

// NewLoginModel creates a [LoginModel] on the registration number step.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	m := &LoginModel{
		ctx:      ctx,
		auth:     auth,
		regNo:    newInput("GST / CIN number", 32),
		password: newPasswordInput("password"),
		otp:      newInput("6-digit code", 6),
	}
	m.reset()
	return m
}

func (m *LoginModel) reset() {
	m.task.abandon()
	m.step = loginStepRegNo
	m.regNo.SetValue("")
	m.password.SetValue("")
	m.otp.SetValue("")
	m.businessName = ""
	m.captcha = false
	m.notice = nil
	m.isError = false
	m.focusStep()
}

// Init implements [tea.Model]. Every visit starts from an empty form.
func (m *LoginModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Leave cancels a pending login.
func (m *LoginModel) Leave() {
	m.task.abandon()
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.setNotice(msg.notice, msg.isError)
		return m, nil

	case businessResolvedMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.businessName = msg.businessName
		m.notice = nil
		m.step = loginStepCredentials
		m.focusStep()
		return m, nil

	case otpSentMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setNotice(models.Notice{Title: app.TitleOTPSent, Message: msg.challenge.Message}, false)
		m.step = loginStepOTP
		m.focusStep()
		return m, nil

	case loginDoneMsg:
		if !m.task.finish(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			if !isCancelled(msg.err) {
				m.setError(msg.err)
			}
			return m, nil
		}
		welcome := noticeMsg{notice: models.Notice{
			Title:   app.TitleLoginSuccessful,
			Message: fmt.Sprintf(app.MsgWelcomeBack, msg.profile.BusinessName),
		}}
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard, Payload: welcome} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *LoginModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.signup):
		return m, func() tea.Msg { return NavigateTo{Page: pageSignup} }

	case key.Matches(msg, keys.esc):
		m.back()
		return m, nil

	case key.Matches(msg, keys.captcha):
		if m.step == loginStepCredentials {
			m.captcha = !m.captcha
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.task.running() {
			return m, nil
		}
		return m, m.submit()
	}

	return m, m.updateFocused(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	switch m.step {
	case loginStepRegNo:
		return m.cmdResolve(m.regNo.Value())
	case loginStepCredentials:
		return m.cmdRequestOTP(m.form())
	default:
		return m.cmdLogin(m.form())
	}
}

// back steps the wizard backwards and drops any pending request.
func (m *LoginModel) back() {
	m.task.abandon()
	m.notice = nil
	switch m.step {
	case loginStepOTP:
		m.otp.SetValue("")
		m.step = loginStepCredentials
	case loginStepCredentials:
		m.password.SetValue("")
		m.captcha = false
		m.businessName = ""
		m.step = loginStepRegNo
	}
	m.focusStep()
}

func (m *LoginModel) form() models.LoginForm {
	form := models.LoginForm{
		RegistrationNo: strings.TrimSpace(m.regNo.Value()),
		BusinessName:   m.businessName,
		Password:       m.password.Value(),
		OTP:            strings.TrimSpace(m.otp.Value()),
	}
	if m.captcha {
		form.CaptchaToken = captchaToken
	}
	return form
}

func (m *LoginModel) cmdResolve(regNo string) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		name, err := auth.ResolveBusiness(ctx, regNo)
		return businessResolvedMsg{seq: seq, businessName: name, err: err}
	}
}

func (m *LoginModel) cmdRequestOTP(form models.LoginForm) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		challenge, err := auth.RequestLoginOTP(ctx, form)
		return otpSentMsg{seq: seq, challenge: challenge, err: err}
	}
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx, seq := m.task.start(m.ctx)
	auth := m.auth

	return func() tea.Msg {
		profile, err := auth.CompleteLogin(ctx, form)
		return loginDoneMsg{seq: seq, profile: profile, err: err}
	}
}

func (m *LoginModel) focusStep() {
	m.regNo.Blur()
	m.password.Blur()
	m.otp.Blur()
	switch m.step {
	case loginStepRegNo:
		m.regNo.Focus()
	case loginStepCredentials:
		m.password.Focus()
	case loginStepOTP:
		m.otp.Focus()
	}
}

func (m *LoginModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.step {
	case loginStepRegNo:
		m.regNo, cmd = m.regNo.Update(msg)
	case loginStepCredentials:
		m.password, cmd = m.password.Update(msg)
	case loginStepOTP:
		m.otp, cmd = m.otp.Update(msg)
	}
	return cmd
}

func (m *LoginModel) setNotice(n models.Notice, isError bool) {
	m.notice = &n
	m.isError = isError
}

func (m *LoginModel) setError(err error) {
	m.setNotice(service.Describe(err), true)
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString("Registration no │ ")
	b.WriteString(m.regNo.View())
	b.WriteString("\n")

	if m.step >= loginStepCredentials {
		b.WriteString("Business        │ ")
		b.WriteString(m.businessName)
		b.WriteString("\n")
		b.WriteString("Password        │ ")
		b.WriteString(m.password.View())
		b.WriteString("\n")
		b.WriteString("                │ ")
		b.WriteString(renderCaptcha(m.captcha))
		b.WriteString("\n")
	}
	if m.step == loginStepOTP {
		b.WriteString("OTP             │ ")
		b.WriteString(m.otp.View())
		b.WriteString("\n")
	}

	if m.task.running() {
		b.WriteString("\n[Please wait...]\n")
	} else {
		b.WriteString("\n[" + m.actionLabel() + "]\n")
	}

	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"),
		"enter: "+strings.ToLower(m.actionLabel())+" │ esc: back │ ctrl+t: captcha │ ctrl+n: sign up")
}

func (m *LoginModel) actionLabel() string {
	switch m.step {
	case loginStepRegNo:
		return "Continue"
	case loginStepCredentials:
		return "Send OTP"
	default:
		return "Verify & Login"
	}
}
