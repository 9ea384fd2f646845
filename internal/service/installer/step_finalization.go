package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// Set derived values
	if state.EnvVars["TELEGRAM_TOKEN"] != "" {
		state.EnvVars["ENABLE_TELEGRAM"] = "true"
	} else {
		state.EnvVars["ENABLE_TELEGRAM"] = "false"
		delete(state.EnvVars, "TELEGRAM_TOKEN")
	}

	// Set defaults
	if state.EnvVars["DOCBOT_DEBUG"] == "" {
		state.EnvVars["DOCBOT_DEBUG"] = "0"
	}

	// Signal completion
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
