package pages

import (
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldKind distinguishes free text from a fixed set of choices.
type FieldKind int

const (
	// TextField is edited with a text input.
	TextField FieldKind = iota
	// ChoiceField cycles through fixed options.
	ChoiceField
)

// Field is a single form input.
type Field struct {
	Label        string
	defaultValue string
	choices      []string
	input        textinput.Model
	Kind         FieldKind
	choice       int
}

// Text creates a text field.
func Text(label, placeholder, defaultValue string) Field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 32
	in.Width = 20
	in.SetValue(defaultValue)
	return Field{Label: label, Kind: TextField, input: in, defaultValue: defaultValue}
}

// Choice creates a field cycling through choices, starting at the first.
func Choice(label string, choices ...string) Field {
	return Field{Label: label, Kind: ChoiceField, choices: choices}
}

// Form is a vertical list of fields with keyboard focus. Focus -1 means
// the form is inactive and page shortcuts apply.
type Form struct {
	fields []Field
	focus  int
}

// NewForm creates an unfocused form.
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields, focus: -1}
}

// Focused reports whether any field has focus.
func (f *Form) Focused() bool {
	return f.focus >= 0
}

// Capturing reports whether typed characters belong to a text field.
func (f *Form) Capturing() bool {
	return f.Focused() && f.fields[f.focus].Kind == TextField
}

// Value returns the text of field i, or the selected choice.
func (f *Form) Value(i int) string {
	field := f.fields[i]
	if field.Kind == ChoiceField {
		return field.choices[field.choice]
	}
	return field.input.Value()
}

// SetValue sets field i. For choice fields unknown values are ignored.
func (f *Form) SetValue(i int, v string) {
	field := &f.fields[i]
	if field.Kind == TextField {
		field.input.SetValue(v)
		return
	}
	for idx, c := range field.choices {
		if c == v {
			field.choice = idx
		}
	}
}

// Reset restores every field to its default and drops focus.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue(f.fields[i].defaultValue)
		f.fields[i].choice = 0
	}
	f.Blur()
}

// Blur removes focus.
func (f *Form) Blur() {
	if f.Focused() {
		f.fields[f.focus].input.Blur()
	}
	f.focus = -1
}

func (f *Form) focusOn(i int) tea.Cmd {
	if f.Focused() {
		f.fields[f.focus].input.Blur()
	}
	f.focus = i
	if f.fields[i].Kind == TextField {
		return f.fields[i].input.Focus()
	}
	return nil
}

// Next moves focus to the next field, entering the form if needed.
func (f *Form) Next() tea.Cmd {
	return f.focusOn((f.focus + 1) % len(f.fields))
}

// Prev moves focus to the previous field.
func (f *Form) Prev() tea.Cmd {
	if f.focus <= 0 {
		return f.focusOn(len(f.fields) - 1)
	}
	return f.focusOn(f.focus - 1)
}

// HandleKey processes navigation and editing keys. It reports whether the
// key was consumed; enter is never consumed so pages can submit.
func (f *Form) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return true, f.Next()
	case "shift+tab":
		return true, f.Prev()
	case "enter":
		return false, nil
	}
	if !f.Focused() {
		return false, nil
	}
	if msg.String() == "esc" {
		f.Blur()
		return true, nil
	}

	field := &f.fields[f.focus]
	if field.Kind == ChoiceField {
		switch msg.String() {
		case "left", "h":
			field.choice = (field.choice + len(field.choices) - 1) % len(field.choices)
			return true, nil
		case "right", "l", " ":
			field.choice = (field.choice + 1) % len(field.choices)
			return true, nil
		}
		return false, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return true, cmd
}

// View renders the form.
func (f *Form) View(theme themes.Theme) string {
	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.Label))
	}

	var b strings.Builder
	for i, field := range f.fields {
		label := theme.Faint.Width(labelWidth + 2).Render(field.Label + ":")
		var value string
		if field.Kind == ChoiceField {
			value = "‹ " + field.choices[field.choice] + " ›"
		} else {
			value = field.input.View()
		}

		style := theme.Normal
		marker := "  "
		if i == f.focus {
			style = theme.Highlighted
			marker = theme.StatusInfo.Render("▸ ")
		}
		b.WriteString(marker + label + style.Render(value) + "\n")
	}
	return b.String()
}
