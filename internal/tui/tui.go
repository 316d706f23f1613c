// Package tui implements the root Bubble Tea model for zpass.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/config"
)

type viewID int

const (
	viewChecker viewID = iota
	viewQuit
)

// PasswordGenerator produces passwords of a given length.
type PasswordGenerator interface {
	Password(length int) (string, error)
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// Model is the root TUI model.
type Model struct {
	version string

	active  viewID
	checker checkerModel
	quit    quitModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, gen PasswordGenerator, cfg config.Config) Model {
	return Model{
		version: version,
		active:  viewChecker,
		checker: newCheckerModel(gen, cfg.Length, cfg.Reveal),
	}
}

func (m Model) Init() tea.Cmd {
	return m.checker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		m.active = msg.view
		return m, tea.ClearScreen

	case flashMsg:
		// flashes belong to the checker even while the quit prompt is up
		m.checker, _ = m.checker.Update(msg)
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewChecker:
		m.checker, cmd = m.checker.Update(msg)
	case viewQuit:
		m.quit, cmd = m.quit.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	var content string
	switch m.active {
	case viewChecker:
		content = m.checker.View()
	case viewQuit:
		content = m.quit.View()
	}

	header := "  " + zstyle.Title.Render("zpass") + " " + zstyle.MutedText.Render(m.version) +
		"  " + zstyle.Subtitle.Render(viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewChecker:
		return "Password Strength"
	case viewQuit:
		return "Quit"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewChecker:
		pairs := make([]zstyle.HelpPair, 0, 5)
		for _, b := range []key.Binding{keyGenerate, keyCopy, keyReveal, keyClear, keyExit} {
			h := b.Help()
			pairs = append(pairs, zstyle.HelpPair{Key: h.Key, Desc: h.Desc})
		}
		return pairs
	case viewQuit:
		return []zstyle.HelpPair{
			{Key: "y", Desc: "quit"},
			{Key: "n", Desc: "stay"},
		}
	}
	return nil
}
