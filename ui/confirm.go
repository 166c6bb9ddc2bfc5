package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal yes/no prompt over a pre-rendered plan preview.
type confirmModel struct {
	preview  string
	accepted bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.accepted = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return m.preview + "\n Apply these changes? [y/n] "
}

// Confirm shows the plan preview and blocks for a yes/no keypress. Declining
// in any way (n, q, esc, ctrl+c) leaves the system untouched.
func Confirm(preview string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{preview: preview}).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}
	return m.accepted, nil
}
