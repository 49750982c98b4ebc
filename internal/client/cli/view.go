package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reomoon/memo/internal/client/ui"
)

var (
	accent = lipgloss.Color("#FFB3BA")
	mint   = lipgloss.Color("#A8E6CF")
	muted  = lipgloss.Color("#6B7280")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	categoryStyle = lipgloss.NewStyle().Foreground(mint)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	lockedStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	toastStyle    = lipgloss.NewStyle().Foreground(mint)
	alertStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// renderModel draws the whole memo view: category chips, the page of cards
// (or the empty message) and the pagination bar.
func renderModel(rm ui.RenderModel) string {
	var b strings.Builder

	b.WriteString(renderChips(rm.Chips))
	b.WriteString("\n")

	if rm.EmptyMessage != "" {
		b.WriteString(mutedStyle.Render(rm.EmptyMessage))
		b.WriteString("\n")
	}
	for _, c := range rm.Cards {
		b.WriteString(renderCard(c))
		b.WriteString("\n")
	}

	if p := renderPagination(rm.Pagination); p != "" {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

func renderChips(chips []ui.Chip) string {
	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		label := "[" + c.Label + "]"
		if c.Active {
			label = activeStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func renderCard(c ui.Card) string {
	title := c.Title
	if c.Protected {
		title += " 🔒"
	}

	lines := []string{
		fmt.Sprintf("#%d %s  %s", c.ID, titleStyle.Render(title), categoryStyle.Render(c.Category)),
	}
	if c.URL != "" {
		lines = append(lines, c.URL)
	}
	if c.Locked {
		lines = append(lines, lockedStyle.Render(c.Body))
	} else {
		lines = append(lines, c.Body)
	}

	footer := c.CreatedAt
	if c.CanCopy {
		footer += "  (copy " + fmt.Sprint(c.ID) + ")"
	}
	lines = append(lines, mutedStyle.Render(footer))

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderPagination(p ui.Pagination) string {
	if !p.Visible {
		return ""
	}
	parts := make([]string, 0, len(p.Pages)+2)
	if p.ShowPrev {
		parts = append(parts, "< prev")
	}
	for _, pb := range p.Pages {
		n := fmt.Sprint(pb.Number)
		if pb.Active {
			n = activeStyle.Render("[" + n + "]")
		}
		parts = append(parts, n)
	}
	if p.ShowNext {
		parts = append(parts, "next >")
	}
	return strings.Join(parts, " ")
}

// renderModal shows the editor state before submit.
func renderModal(m *ui.ModalView) string {
	if m == nil {
		return ""
	}
	lock := "🔓 no code"
	if m.PasswordEnabled {
		lock = "🔒 code required"
	}
	body := strings.Join([]string{
		titleStyle.Render(m.Heading),
		"Title: " + m.Form.Title,
		"URL:   " + m.Form.URL,
		"Body:",
		m.Form.Body,
		mutedStyle.Render(lock),
	}, "\n")
	return modalStyle.Render(body)
}
