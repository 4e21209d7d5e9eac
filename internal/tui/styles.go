package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-invoice-audit/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(20)
	avatarStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	readOnlyStyle = lipgloss.NewStyle().Faint(true)
)

var riskStyles = map[models.RiskLevel]lipgloss.Style{
	models.RiskLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	models.RiskMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	models.RiskHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// riskBadge renders a risk score in its level colour.
func riskBadge(level models.RiskLevel, text string) string {
	style, ok := riskStyles[level]
	if !ok {
		return text
	}
	return style.Render(text)
}
