// Package testing provides test utilities for Bubble Tea models.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Messages contains all messages sent to the model
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{Messages: make([]tea.Msg, 0)}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and captures the rendered result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	next, cmd := model.Update(msg)
	r.Output = next.View()
	return next, cmd
}

// Collect runs cmd and every command batched inside it, returning the
// resulting messages. It blocks for as long as the commands do.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// Deliver feeds msgs to update and returns the non-nil follow-up commands.
func Deliver(update func(tea.Msg) tea.Cmd, msgs []tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, m := range msgs {
		if c := update(m); c != nil {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
