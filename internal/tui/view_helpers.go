package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-invoice-audit/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  f1: version │ ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderNotice renders the page notice line, or nothing.
func renderNotice(n *models.Notice, isError bool) string {
	if n == nil || (n.Title == "" && n.Message == "") {
		return ""
	}
	text := n.Title + ": " + n.Message
	if isError {
		return "\n" + errorStyle.Render("✗ "+text) + "\n"
	}
	return "\n" + noticeStyle.Render("✓ "+text) + "\n"
}

func renderCaptcha(checked bool) string {
	if checked {
		return "[x] I'm not a robot"
	}
	return "[ ] I'm not a robot"
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// focusInput moves focus in inputs from *focus by delta, wrapping around.
func focusInput(inputs []textinput.Model, focus *int, delta int) {
	inputs[*focus].Blur()
	*focus = (*focus + delta + len(inputs)) % len(inputs)
	inputs[*focus].Focus()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
