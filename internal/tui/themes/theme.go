package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	TableHeader   lipgloss.Style
	Input         lipgloss.Style
	FocusedInput  lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	name       string
	primary    string
	secondary  string
	success    string
	warning    string
	errorColor string
	info       string
	background string
	foreground string
	subtle     string
	border     string
	muted      string
	surface    string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	return Theme{
		Name:       p.name,
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.errorColor),
		Info:       lipgloss.Color(p.info),
		Background: lipgloss.Color(p.background),
		Foreground: fg,
		Border:     lipgloss.Color(p.border),
		Muted:      lipgloss.Color(p.muted),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.background)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(p.surface)).
			Foreground(fg),

		// Navigation
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		// Component styles
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.secondary)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(p.border)),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
	}
}

// Dark is the theme used when dark mode is on.
var Dark = newTheme(palette{
	name:       "dark",
	primary:    "#60a5fa",
	secondary:  "#93c5fd",
	success:    "#4ade80",
	warning:    "#facc15",
	errorColor: "#f87171",
	info:       "#38bdf8",
	background: "#111827",
	foreground: "#f9fafb",
	subtle:     "#d1d5db",
	border:     "#374151",
	muted:      "#9ca3af",
	surface:    "#1f2937",
})

// Light is the theme used when dark mode is off.
var Light = newTheme(palette{
	name:       "light",
	primary:    "#2563eb",
	secondary:  "#1d4ed8",
	success:    "#16a34a",
	warning:    "#ca8a04",
	errorColor: "#dc2626",
	info:       "#0284c7",
	background: "#ffffff",
	foreground: "#1f2937",
	subtle:     "#4b5563",
	border:     "#e5e7eb",
	muted:      "#6b7280",
	surface:    "#f3f4f6",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return Light
	default:
		return Dark
	}
}
