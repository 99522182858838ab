package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page is a screen of the shell.
type Page interface {
	Route() viewmodel.Route
	// Mount is called when the page becomes visible and starts its fetches.
	Mount(ctx context.Context) tea.Cmd
	// Unmount is called when the page is left.
	Unmount()
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetTheme(theme themes.Theme)
	SetSize(width, height int)
	// Capturing reports whether keys are being typed into a field.
	Capturing() bool
	// Busy reports whether a request is in flight.
	Busy() bool
	KeyBindings() []viewmodel.KeyBinding
}

type base struct {
	life   *Lifecycle
	theme  themes.Theme
	width  int
	height int
}

func newBase(route viewmodel.Route, theme themes.Theme) base {
	return base{life: NewLifecycle(route.Path()), theme: theme}
}

func (b *base) SetTheme(theme themes.Theme) {
	b.theme = theme
}

func (b *base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b *base) Unmount() {
	b.life.Unmount()
}

func (b *base) errorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return b.theme.StatusError.Render("✗ "+msg) + "\n"
}

func (b *base) successLine(msg string) string {
	if msg == "" {
		return ""
	}
	return b.theme.StatusSuccess.Render("✓ "+msg) + "\n"
}

// denominationTable renders a denomination map sorted by denomination.
func denominationTable(theme themes.Theme, header string, m map[int]int, label func(int) string) string {
	if len(m) == 0 {
		return theme.Faint.Render("No data.") + "\n"
	}

	keys := model.Denominations(m)
	labelWidth := lipgloss.Width(header)
	for _, k := range keys {
		labelWidth = max(labelWidth, lipgloss.Width(label(k)))
	}

	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(fmt.Sprintf("%-*s  %8s", labelWidth, header, "Quantity")) + "\n")
	for _, k := range keys {
		line := fmt.Sprintf("%-*s  %8d", labelWidth, label(k), m[k])
		if m[k] == 0 {
			b.WriteString(theme.StatusWarning.Render(line) + "\n")
			continue
		}
		b.WriteString(theme.Normal.Render(line) + "\n")
	}
	return b.String()
}

func statusStyle(theme themes.Theme, status model.MachineStatus) lipgloss.Style {
	switch status {
	case model.StatusOperational:
		return theme.StatusSuccess
	case model.StatusOutOfService:
		return theme.StatusError
	default:
		return theme.StatusPending
	}
}
