package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames.
type ModalStyles struct {
	ModalStyle  lipgloss.Style
	TitleStyle  lipgloss.Style
	KeyStyle    lipgloss.Style
	BodyStyle   lipgloss.Style
	FooterStyle lipgloss.Style
}

// KeyHelp is one row of the help modal.
type KeyHelp struct {
	Keys string
	Desc string
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(title))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// RenderKeyHelp renders aligned key/description rows.
func RenderKeyHelp(rows []KeyHelp, styles ModalStyles) string {
	keyW := 0
	for _, r := range rows {
		keyW = max(keyW, lipgloss.Width(r.Keys))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		key := styles.KeyStyle.Width(keyW + 2).Render(r.Keys)
		lines = append(lines, key+styles.BodyStyle.Render(r.Desc))
	}
	return strings.Join(lines, "\n")
}
