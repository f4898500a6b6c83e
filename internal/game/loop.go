package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// UI is the terminal side of the loop: it draws the session and collects
// one line of input per turn.
type UI interface {
	// Render draws the session and the outcome of the previous token.
	Render(s *Session, last Outcome)
	// ReadLine blocks until a full line is entered. io.EOF ends the loop.
	ReadLine() (string, error)
}

// Interrupter is implemented by UIs whose ReadLine can be woken from
// another goroutine. The woken ReadLine should return ErrInterrupted.
type Interrupter interface {
	Interrupt()
}

// ErrInterrupted is returned by a ReadLine woken through Interrupt.
var ErrInterrupted = errors.New("input interrupted")

// Loop drives a session: render, read a token, handle it, repeat.
type Loop struct {
	ui      UI
	session *Session
	logger  *zap.Logger
}

// NewLoop creates a loop over the given UI and session.
func NewLoop(ui UI, session *Session, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{ui: ui, session: session, logger: logger}
}

// Run processes turns until the session terminates, input ends or ctx is
// cancelled. A line already read is handled in full; a UI implementing
// Interrupter is woken when ctx is cancelled during ReadLine.
func (l *Loop) Run(ctx context.Context) error {
	if in, ok := l.ui.(Interrupter); ok {
		stop := context.AfterFunc(ctx, in.Interrupt)
		defer stop()
	}

	var last Outcome
	for l.session.Mode() != ModeTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.ui.Render(l.session, last)

		line, err := l.ui.ReadLine()
		if err != nil && ctx.Err() != nil {
			l.logger.Info("input cancelled", zap.Error(ctx.Err()))
			return ctx.Err()
		}
		if errors.Is(err, ErrInterrupted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			l.logger.Info("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		last = l.session.Handle(ctx, line)
	}
	return nil
}
