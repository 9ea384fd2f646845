package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ModelStep collects the model name for the selected provider
type ModelStep struct {
	input textinput.Model
}

func NewModelStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "gpt-3.5-turbo"

	return &ModelStep{input: ti}
}

func (s *ModelStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			model := s.input.Value()
			if model == "" {
				model = "gpt-3.5-turbo"
			}
			state.EnvVars["LLM_MODEL"] = model
			return nil, nil
		}
	}
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	return "Enter the model name (press Enter for gpt-3.5-turbo):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
