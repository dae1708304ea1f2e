package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		group int
	}{
		{"Navigation", 0},
		{"Editing", 1},
		{"Application", 2},
	}

	groups := m.keys.FullHelp()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("stride"))
	b.WriteString(styles.MutedText.Render("  key bindings"))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, binding := range groups[section.group] {
			help := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.Text.Render(pad(help.Key, 10)),
				styles.MutedText.Render(help.Desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("press any key to close"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top,
			lipgloss.NewStyle().Padding(1, 2).Render(content))
	}
	return content
}
