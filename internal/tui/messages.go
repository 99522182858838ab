package tui

import "github.com/Veraticus/coin-exchange-admin/internal/tui/themes"

// themeToggledMsg reports the outcome of a light/dark toggle.
type themeToggledMsg struct {
	err  error
	mode themes.Mode
}
