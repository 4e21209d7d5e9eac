package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// clipboardWrite is replaced in tests; headless machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

type invoiceColumn struct {
	title string
	width int
	sort  models.SortField
}

var invoiceColumns = []invoiceColumn{
	{"Invoice ID", 10, models.SortByID},
	{"Vendor", 22, models.SortByVendor},
	{"Type", 9, ""},
	{"Amount", 14, models.SortByAmount},
	{"Date", 12, models.SortByDate},
	{"Status", 13, ""},
	{"Risk", 10, models.SortByRiskScore},
	{"Anomaly", 20, ""},
}

// DashboardModel shows the summary cards and the searchable, filterable,
// sortable invoice table.
type DashboardModel struct {
	ctx      context.Context
	services *service.Services

	cfg       models.QueryConfig
	rows      []models.Invoice
	metrics   models.Metrics
	ownerName string

	table      table.Model
	search     textinput.Model
	searching  bool
	loggingOut bool

	notice  *models.Notice
	isError bool
}

func NewDashboardModel(ctx context.Context, services *service.Services) *DashboardModel {
	km := table.DefaultKeyMap()
	km.HalfPageUp.SetKeys("ctrl+u")
	km.HalfPageDown.SetKeys("ctrl+d")
	km.PageUp.SetKeys("pgup")
	km.PageDown.SetKeys("pgdown")

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(km),
	)

	search := newInput("search by id, vendor or status", 64)
	search.Prompt = "/ "

	return &DashboardModel{
		ctx:      ctx,
		services: services,
		cfg:      models.QueryConfig{}.Normalize(),
		table:    t,
		search:   search,
	}
}

// Init reloads the profile, the cards and the table.
func (m *DashboardModel) Init() tea.Cmd {
	m.notice = nil
	m.isError = false
	m.searching = false
	m.loggingOut = false
	m.search.Blur()

	m.ownerName = ""
	if profile, err := m.services.ProfileService.Profile(m.ctx); err == nil {
		m.ownerName = profile.OwnerName
	}
	m.metrics = m.services.DashboardService.Metrics(m.ctx)
	m.refresh()
	return nil
}

func (m *DashboardModel) Leave() {
	m.searching = false
	m.search.Blur()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.setNotice(msg.notice, msg.isError)
		return m, nil

	case logoutDoneMsg:
		m.loggingOut = false
		if msg.err != nil {
			m.setNotice(service.Describe(msg.err), true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.searching = false
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.cfg.SearchText {
		m.cfg.SearchText = m.search.Value()
		m.refresh()
	}
	return m, cmd
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.search):
		m.searching = true
		m.table.Blur()
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.esc):
		if m.cfg.SearchText != "" {
			m.cfg.SearchText = ""
			m.search.SetValue("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, keys.typeFilter):
		m.cfg.TypeFilter = invoice.NextTypeFilter(m.cfg.TypeFilter)
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.sortID):
		return m.sortBy(models.SortByID)
	case key.Matches(msg, keys.sortVendor):
		return m.sortBy(models.SortByVendor)
	case key.Matches(msg, keys.sortAmount):
		return m.sortBy(models.SortByAmount)
	case key.Matches(msg, keys.sortDate):
		return m.sortBy(models.SortByDate)
	case key.Matches(msg, keys.sortRisk):
		return m.sortBy(models.SortByRiskScore)

	case key.Matches(msg, keys.copy):
		m.copySelected()
		return m, nil

	case key.Matches(msg, keys.upSales):
		m.upload(models.Sales)
		return m, nil
	case key.Matches(msg, keys.upPurchase):
		m.upload(models.Purchase)
		return m, nil

	case key.Matches(msg, keys.view):
		m.act(models.ActionView)
		return m, nil
	case key.Matches(msg, keys.download):
		m.act(models.ActionDownload)
		return m, nil
	case key.Matches(msg, keys.report):
		m.act(models.ActionReport)
		return m, nil

	case key.Matches(msg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case key.Matches(msg, keys.billing):
		return m, func() tea.Msg { return NavigateTo{Page: pageBilling} }
	case key.Matches(msg, keys.settings):
		return m, func() tea.Msg { return NavigateTo{Page: pageSettings} }

	case key.Matches(msg, keys.logout):
		if m.loggingOut {
			return m, nil
		}
		m.loggingOut = true
		return m, m.cmdLogout()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *DashboardModel) sortBy(field models.SortField) (tea.Model, tea.Cmd) {
	m.cfg = invoice.ToggleSort(m.cfg, field)
	m.refresh()
	return m, nil
}

// refresh re-runs the query and rebuilds the table. The cursor returns to
// the first row.
func (m *DashboardModel) refresh() {
	m.rows = m.services.DashboardService.Invoices(m.ctx, m.cfg)

	columns := make([]table.Column, 0, len(invoiceColumns))
	for _, c := range invoiceColumns {
		title := c.title
		if c.sort != "" && c.sort == m.cfg.SortField {
			title += sortArrow(m.cfg.SortDirection)
		}
		columns = append(columns, table.Column{Title: title, Width: c.width})
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, inv := range m.rows {
		rows = append(rows, table.Row{
			inv.ID,
			inv.Vendor,
			string(inv.Type),
			invoice.FormatRupees(inv.Amount),
			inv.Date,
			string(inv.Status),
			strconv.Itoa(inv.RiskScore) + " " + string(invoice.RiskLevelFor(inv.RiskScore)),
			inv.AnomalyType,
		})
	}

	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// selected returns the invoice under the table cursor.
func (m *DashboardModel) selected() (models.Invoice, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return models.Invoice{}, false
	}
	return m.rows[i], true
}

func (m *DashboardModel) copySelected() {
	inv, ok := m.selected()
	if !ok {
		return
	}
	if err := clipboardWrite(inv.ID); err != nil {
		m.setNotice(models.Notice{Title: app.TitleInternalError, Message: err.Error()}, true)
		return
	}
	m.setNotice(models.Notice{Title: app.TitleCopied, Message: fmt.Sprintf(app.MsgCopiedFormat, inv.ID)}, false)
}

func (m *DashboardModel) upload(invoiceType models.InvoiceType) {
	receipt, err := m.services.DashboardService.AcknowledgeUpload(m.ctx, invoiceType)
	if err != nil {
		m.setNotice(service.Describe(err), true)
		return
	}
	m.setNotice(models.Notice{Title: receipt.Title, Message: receipt.Message}, false)
}

func (m *DashboardModel) act(action models.InvoiceAction) {
	inv, ok := m.selected()
	if !ok {
		return
	}
	notice, err := m.services.DashboardService.InvoiceAction(m.ctx, inv.ID, action)
	if err != nil {
		m.setNotice(service.Describe(err), true)
		return
	}
	m.setNotice(models.Notice{Title: notice.Title, Message: notice.Message}, false)
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m *DashboardModel) setNotice(n models.Notice, isError bool) {
	m.notice = &n
	m.isError = isError
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	state := models.LoggedOut()
	if m.ownerName != "" {
		state = models.LoggedIn(models.UserProfile{OwnerName: m.ownerName})
	}
	b.WriteString(avatarStyle.Render(service.Initials(m.ownerName)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(fmt.Sprintf(app.MsgWelcomeOwnerFormat, service.WelcomeName(state))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render("Total Sales\n₹"+invoice.FormatLakh(m.metrics.TotalSalesAmount)),
		cardStyle.Render("Total Purchases\n₹"+invoice.FormatLakh(m.metrics.TotalPurchaseAmount)),
		cardStyle.Render("Flagged\n"+strconv.Itoa(m.metrics.FlaggedCount)),
		cardStyle.Render("Pending Review\n"+strconv.Itoa(m.metrics.PendingCount)),
	))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Type: %s │ Sort: %s %s │ %d invoice(s)\n",
		m.cfg.TypeFilter, m.cfg.SortField, m.cfg.SortDirection, len(m.rows)))
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if inv, ok := m.selected(); ok {
		level := invoice.RiskLevelFor(inv.RiskScore)
		b.WriteString(fmt.Sprintf("%s │ %s │ risk %s │ %s\n",
			inv.ID, fitText(inv.Vendor, 30),
			riskBadge(level, fmt.Sprintf("%d (%s)", inv.RiskScore, level)),
			inv.AnomalyType))
	} else {
		b.WriteString("No invoices match the current filters.\n")
	}

	if m.loggingOut {
		b.WriteString("\n[Logging out...]\n")
	}
	b.WriteString(renderNotice(m.notice, m.isError))

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"/: search │ t: type │ 1-5: sort │ enter: view │ d: download │ r: report │ c: copy id │ u/U: upload │ p: profile │ b: billing │ s: settings │ l: logout")
}

func sortArrow(dir models.SortDirection) string {
	if dir == models.Asc {
		return " ↑"
	}
	return " ↓"
}
