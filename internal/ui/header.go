package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: logo, race countdown, and sync state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("stride")

	if cd := m.store.Countdown(); cd != nil {
		countdown := fmt.Sprintf("%s in %dw %dd", cd.RaceName, cd.WeeksLeft, cd.DaysRemainder)
		if cd.TargetTime != nil && *cd.TargetTime != "" {
			countdown += "  goal " + *cd.TargetTime
		}
		left += "  " + styles.AccentText.Render(countdown)
	}

	right := m.renderSyncState(styles)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderSyncState(styles Styles) string {
	switch {
	case m.syncing:
		return styles.WarningText.Render("syncing…")
	case m.syncMessage == "Failed":
		return styles.DangerText.Render("sync failed")
	case m.syncMessage != "":
		return styles.SuccessText.Render(m.syncMessage)
	case m.connected:
		return styles.SuccessText.Render("garmin ✓")
	default:
		return styles.MutedText.Render("garmin —")
	}
}

// renderCommandBar renders the single-line key hint bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if m.editor.Editing() {
		return styles.Footer.Render("enter commit · esc cancel · tab commit and leave")
	}

	hints := []string{
		"enter edit",
		"hjkl move",
	}
	if m.connected {
		hints = append(hints, "s sync")
	}
	hints = append(hints, "r reload", "T theme", "? help", "q quit")
	return styles.Footer.Render(truncate(strings.Join(hints, " · "), m.width))
}

// truncate shortens a line to fit the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
