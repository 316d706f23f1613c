package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/clipboard"
	"github.com/zarlcorp/zpass/internal/strength"
)

// meter fill colors per strength level
var levelColors = map[strength.Level]string{
	strength.Neutral: "#808080",
	strength.Alert:   "#e5484d",
	strength.Caution: "#f5a524",
	strength.Success: "#30a46c",
}

// levelStyle picks the status style a score line is rendered in.
func levelStyle(l strength.Level) lipgloss.Style {
	switch l {
	case strength.Alert:
		return zstyle.StatusErr
	case strength.Caution:
		return zstyle.StatusWarn
	case strength.Success:
		return zstyle.StatusOK
	}
	return zstyle.MutedText
}

type flashKind int

const (
	flashOK flashKind = iota
	flashWarn
	flashErr
)

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// checkerModel scores the password as it is typed.
type checkerModel struct {
	input    textinput.Model
	meter    progress.Model
	gen      PasswordGenerator
	copy     copyFunc
	length   int
	revealed bool
	result   strength.Result

	flash     string
	flashKind flashKind
}

func newCheckerModel(gen PasswordGenerator, length int, reveal bool) checkerModel {
	ti := textinput.New()
	ti.Placeholder = "enter a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	// no limit: generated and pasted passwords are scored and copied whole
	ti.CharLimit = 0
	ti.Width = 40

	meter := progress.New(
		progress.WithSolidFill(levelColors[strength.Neutral]),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)

	m := checkerModel{
		input:  ti,
		meter:  meter,
		gen:    gen,
		copy:   copyToClipboard,
		length: length,
	}
	m.setRevealed(reveal)
	m.evaluate()
	return m
}

func (m checkerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m checkerModel) Update(msg tea.Msg) (checkerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m checkerModel) handleKey(msg tea.KeyMsg) (checkerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keyExit):
		return m, func() tea.Msg { return navigateMsg{view: viewQuit} }

	case key.Matches(msg, keyGenerate):
		pw, err := m.gen.Password(m.length)
		if err != nil {
			return m.setFlash(flashErr, "generate: "+err.Error()), clearFlashAfter()
		}
		m.input.SetValue(pw)
		m.evaluate()
		return m, nil

	case key.Matches(msg, keyCopy):
		return m.copyPassword()

	case key.Matches(msg, keyReveal):
		m.setRevealed(!m.revealed)
		return m, nil

	case key.Matches(msg, keyClear):
		m.input.Reset()
		m.evaluate()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.evaluate()
	}
	return m, cmd
}

func (m checkerModel) copyPassword() (checkerModel, tea.Cmd) {
	err := m.copy(m.input.Value())
	switch {
	case errors.Is(err, clipboard.ErrEmpty):
		return m.setFlash(flashWarn, "no password to copy"), clearFlashAfter()
	case err != nil:
		return m.setFlash(flashErr, "copy: "+err.Error()), clearFlashAfter()
	}
	return m.setFlash(flashOK, "password copied to clipboard"), clearFlashAfter()
}

func (m *checkerModel) setRevealed(on bool) {
	m.revealed = on
	if on {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

func (m *checkerModel) evaluate() {
	m.result = strength.Evaluate(m.input.Value())
	m.meter.FullColor = levelColors[m.result.Level()]
}

func (m checkerModel) setFlash(kind flashKind, msg string) checkerModel {
	m.flash = msg
	m.flashKind = kind
	return m
}

func (m checkerModel) View() string {
	var b strings.Builder

	label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", "password"))
	fmt.Fprintf(&b, "\n  %s %s\n\n", label, m.input.View())

	b.WriteString(m.reportView())

	pct := m.result.Percent()
	fmt.Fprintf(&b, "\n  %s %3d%%\n\n", m.meter.ViewAs(float64(pct)/100), pct)

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		b.WriteString("  " + m.flashStyle().Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	return b.String()
}

func (m checkerModel) reportView() string {
	r := m.result
	if r.TooShort() {
		return "  " + zstyle.MutedText.Render(r.Remark) + "\n"
	}

	var b strings.Builder
	for _, bucket := range []strength.Bucket{
		strength.Lower, strength.Upper, strength.Digit, strength.Whitespace, strength.Special,
	} {
		l := zstyle.MutedText.Render(fmt.Sprintf("%-10s", bucket))
		fmt.Fprintf(&b, "  %s %d\n", l, r.Counts.Get(bucket))
	}

	score := zstyle.MutedText.Render(fmt.Sprintf("%-10s", "score"))
	fmt.Fprintf(&b, "\n  %s %s\n", score, levelStyle(r.Level()).Render(fmt.Sprintf("%d/5", r.Score)))
	fmt.Fprintf(&b, "  %s\n", r.Remark)
	return b.String()
}

func (m checkerModel) flashStyle() lipgloss.Style {
	switch m.flashKind {
	case flashWarn:
		return zstyle.StatusWarn
	case flashErr:
		return zstyle.StatusErr
	}
	return zstyle.StatusOK
}
