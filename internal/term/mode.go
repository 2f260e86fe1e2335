package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Mode is an acquired input mode. Restore puts the terminal back the way
// Enter found it and is safe to call more than once.
type Mode struct {
	fd   int
	old  *xterm.State
	once sync.Once
	err  error
}

// Enter switches fd to character-at-a-time input without echo.
func Enter(fd int) (*Mode, error) {
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	old, err := xterm.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("reading terminal state: %w", err)
	}
	if err := setCbreak(fd); err != nil {
		return nil, fmt.Errorf("setting terminal mode: %w", err)
	}
	return &Mode{fd: fd, old: old}, nil
}

// Restore returns the terminal to its previous state.
func (m *Mode) Restore() error {
	if m == nil {
		return nil
	}
	m.once.Do(func() {
		if err := xterm.Restore(m.fd, m.old); err != nil {
			m.err = fmt.Errorf("restoring terminal state: %w", err)
		}
	})
	return m.err
}

// RestoreOnSignal restores the terminal and calls exit(130) when the
// process is interrupted or terminated. The returned func stops watching.
func (m *Mode) RestoreOnSignal(exit func(code int)) (stop func()) {
	return watchSignals(m.Restore, exit)
}

// watchSignals runs restore and then exit(130) on the first SIGINT or
// SIGTERM. A nil exit means os.Exit.
func watchSignals(restore func() error, exit func(code int)) (stop func()) {
	if exit == nil {
		exit = os.Exit
	}
	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			_ = restore()
			exit(130)
		case <-done:
		}
	}()

	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			signal.Stop(sigc)
			close(done)
		})
	}
}
