package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// BillingModel shows the current subscription plan.
type BillingModel struct {
	accounts service.AccountService
	ctx      context.Context

	plan    models.BillingPlan
	notice  *models.Notice
	isError bool
}

func NewBillingModel(ctx context.Context, accounts service.AccountService) *BillingModel {
	return &BillingModel{accounts: accounts, ctx: ctx}
}

func (m *BillingModel) Init() tea.Cmd {
	m.notice = nil
	m.isError = false

	plan, err := m.accounts.Billing(m.ctx)
	if err != nil {
		m.plan = models.BillingPlan{}
		return errorNotice(err)
	}
	m.plan = plan
	return nil
}

func (m *BillingModel) Leave() {}

func (m *BillingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = &msg.notice
		m.isError = msg.isError
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		}
	}
	return m, nil
}

func (m *BillingModel) View() string {
	var b strings.Builder

	if m.plan.Name != "" {
		b.WriteString(cardStyle.Width(44).Render(fmt.Sprintf("%s\n%s\n%s",
			titleStyle.Render("Current Plan"),
			m.plan.Name+" - "+m.plan.Price,
			noticeStyle.Render(m.plan.Status))))
		b.WriteString("\n")
		for _, f := range m.plan.Features {
			b.WriteString(noticeStyle.Render("✓ "))
			b.WriteString(f)
			b.WriteString("\n")
		}
	}
	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("BILLING", strings.TrimRight(b.String(), "\n"), "esc: dashboard")
}

// SettingsModel lists the settings sections.
type SettingsModel struct {
	accounts service.AccountService
	ctx      context.Context

	sections []models.SettingsSection
	notice   *models.Notice
	isError  bool
}

func NewSettingsModel(ctx context.Context, accounts service.AccountService) *SettingsModel {
	return &SettingsModel{accounts: accounts, ctx: ctx}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.notice = nil
	m.isError = false

	sections, err := m.accounts.Settings(m.ctx)
	if err != nil {
		m.sections = nil
		return errorNotice(err)
	}
	m.sections = sections
	return nil
}

func (m *SettingsModel) Leave() {}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = &msg.notice
		m.isError = msg.isError
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		}
	}
	return m, nil
}

func (m *SettingsModel) View() string {
	var b strings.Builder

	for _, s := range m.sections {
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(s.Description))
		b.WriteString("\n\n")
	}
	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "esc: dashboard")
}
