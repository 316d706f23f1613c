package tui

import "github.com/charmbracelet/bubbles/key"

// checker actions use ctrl chords so every printable key reaches the input.
var (
	keyGenerate = key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate"))
	keyCopy     = key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy"))
	keyReveal   = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide"))
	keyClear    = key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear"))
	keyExit     = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))
)
