package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DocsStep collects the document paths loaded at startup
type DocsStep struct {
	input textinput.Model
}

func NewDocsStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Placeholder = "~/docs/report.txt,~/notes (comma-separated, Enter to skip)"

	return &DocsStep{input: ti}
}

func (s *DocsStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *DocsStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if v := s.input.Value(); v != "" {
				state.EnvVars["DOCS_PATHS"] = v
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *DocsStep) View(state *InstallState) string {
	return "Documents to load at startup (files or directories):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, empty to skip)\n"
}
