package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Coin Exchange Admin"

// renderFrame renders header, navigation, the active page and the footer.
func (m Model) renderFrame() string {
	page := m.active()

	body := page.View()
	if page.Busy() {
		body = m.spinner.View() + " " + m.theme.Faint.Render("Working...") + "\n" + body
	}
	if m.lastError != "" {
		body = m.theme.StatusError.Render(m.lastError) + "\n" + body
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderNav(),
		"",
		body,
		m.renderFooter(),
	)
}

// renderHeader renders the title with the machine status on the right.
func (m Model) renderHeader() string {
	title := m.theme.Title.UnsetMarginBottom().Render("🪙 " + appTitle)
	status := m.indicator.View()

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 2 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + status
}

// renderNav renders one tab per page.
func (m Model) renderNav() string {
	tabs := make([]string, 0, len(viewmodel.Routes))
	for i, route := range viewmodel.Routes {
		label := fmt.Sprintf("%d %s", i+1, route.Title())
		if route == m.route {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
			continue
		}
		tabs = append(tabs, m.theme.Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFooter renders the active page's keys followed by the global ones.
func (m Model) renderFooter() string {
	bindings := m.active().KeyBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, m.theme.Bold.Render(b.Key)+" "+m.theme.Faint.Render(b.Description))
	}

	footer := "\n" + strings.Join(parts, m.theme.Faint.Render(" • "))
	return footer + "\n" + m.help.View(m.keymap)
}
