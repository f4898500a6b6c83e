package ui

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawler/internal/game"
)

// maxInput bounds the length of a typed line.
const maxInput = 64

// Terminal is the tcell front end of the game loop. It implements game.UI.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	input    []rune

	// Kept so a resize can redraw the whole frame.
	session *game.Session
	last    game.Outcome
}

// NewTerminal opens the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

func newTerminal(screen *Screen) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Render draws the session and the outcome of the last token.
func (t *Terminal) Render(s *game.Session, last game.Outcome) {
	t.session = s
	t.last = last
	t.renderer.Render(s, last, string(t.input))
}

// ReadLine collects keystrokes until Enter and returns the trimmed line.
// Escape, Ctrl-C and a closed screen end input with io.EOF; Interrupt
// makes it return game.ErrInterrupted.
func (t *Terminal) ReadLine() (string, error) {
	t.input = t.input[:0]
	for {
		ev := t.screen.NextEvent()
		if ev == nil {
			return "", io.EOF
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return "", game.ErrInterrupted
		case *tcell.EventResize:
			t.screen.Redraw()
			if t.session != nil {
				t.renderer.Render(t.session, t.last, string(t.input))
			}
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", io.EOF
			case tcell.KeyEnter:
				line := string(t.input)
				t.input = t.input[:0]
				return strings.TrimSpace(line), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			case tcell.KeyRune:
				if len(t.input) < maxInput {
					t.input = append(t.input, ev.Rune())
				}
			}
			t.renderer.RenderPrompt(string(t.input))
		}
	}
}

// Interrupt wakes a pending ReadLine. The loop calls it from another
// goroutine when its context is cancelled.
func (t *Terminal) Interrupt() {
	t.screen.Interrupt()
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

var (
	_ game.UI          = (*Terminal)(nil)
	_ game.Interrupter = (*Terminal)(nil)
)
