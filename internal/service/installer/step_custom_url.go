package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CustomURLStep collects the base URL for a self-hosted endpoint.
// Skipped for the hosted providers.
type CustomURLStep struct {
	input textinput.Model
}

func NewCustomURLStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "http://localhost:8080"

	return &CustomURLStep{input: ti}
}

func (s *CustomURLStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *CustomURLStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.EnvVars["LLM_PROVIDER"] != "custom" {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" && s.input.Value() != "" {
			state.EnvVars["CUSTOM_OPENAI_BASE_URL"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CustomURLStep) View(state *InstallState) string {
	return "Enter the base URL of your OpenAI-compatible endpoint:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
