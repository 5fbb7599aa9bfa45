// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is executed inline, so
// service calls made by a model complete before the next assertion. Models
// under test should use a static cursor: blink Cmds sleep on a timer.
package teatest

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may run.
const MaxDrainDepth = 64

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been returned.
	Quitting bool
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.drain(d.Model.Init(), 0)
	return d
}

// Send delivers msg and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Fatalf("teatest: more than %d chained commands", MaxDrainDepth)
	}

	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		return
	}
	if isCursorBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
