package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// quitModel asks for confirmation before leaving.
type quitModel struct{}

func (m quitModel) Update(msg tea.Msg) (quitModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch km.String() {
	case "y", "Y", "ctrl+c":
		return m, tea.Quit
	default:
		// any other key cancels
		return m, func() tea.Msg { return navigateMsg{view: viewChecker} }
	}
}

func (m quitModel) View() string {
	return "\n  " + zstyle.StatusWarn.Render("do you want to quit?") + " (y/n)\n"
}
