// Package ui provides terminal rendering and line input using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// baseStyle is the background every frame starts from.
var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the drawing surface of the game. All writes are clipped to
// the current terminal size.
type Screen struct {
	tty tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	tty, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return openScreen(tty)
}

// openScreen takes over an uninitialized tcell screen. Tests pass a
// simulation screen here.
func openScreen(tty tcell.Screen) (*Screen, error) {
	if err := tty.Init(); err != nil {
		return nil, err
	}
	tty.SetStyle(baseStyle)
	tty.Clear()
	return &Screen{tty: tty}, nil
}

// Close restores the terminal. Blocked calls to NextEvent return nil.
func (s *Screen) Close() {
	s.tty.Fini()
}

// NextEvent blocks for the next key, resize or interrupt event.
func (s *Screen) NextEvent() tcell.Event {
	return s.tty.PollEvent()
}

// Interrupt wakes a goroutine blocked in NextEvent with an
// *tcell.EventInterrupt. It is safe to call from any goroutine.
func (s *Screen) Interrupt() {
	// A full queue already has an event waiting to wake the reader.
	_ = s.tty.PostEvent(tcell.NewEventInterrupt(nil))
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.tty.Size()
}

// Reset blanks the back buffer before a new frame.
func (s *Screen) Reset() {
	s.tty.Clear()
}

// Flush shows the back buffer.
func (s *Screen) Flush() {
	s.tty.Show()
}

// Redraw repaints every cell after the terminal was resized.
func (s *Screen) Redraw() {
	s.tty.Sync()
}

// Put writes one cell. Positions off screen are ignored.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	width, height := s.tty.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	s.tty.SetContent(x, y, r, nil, style)
}

// Text writes a single line starting at (x, y) and returns the column
// after its last rune.
func (s *Screen) Text(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.Put(x, y, r, style)
		x++
	}
	return x
}

// ClearRow blanks an entire row.
func (s *Screen) ClearRow(y int, style tcell.Style) {
	width, _ := s.tty.Size()
	for x := 0; x < width; x++ {
		s.Put(x, y, ' ', style)
	}
}

// Cursor places the text cursor, clamped to the last column.
func (s *Screen) Cursor(x, y int) {
	width, _ := s.tty.Size()
	s.tty.ShowCursor(min(x, width-1), y)
}
