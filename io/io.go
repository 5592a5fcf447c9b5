// Package argio centralizes terminal plumbing for go-argparse: output
// writers, terminal detection, and width discovery for help-text wrapping.
package argio

import (
	stdio "io"
	"os"
)

// platformIO is implemented per OS in io_unix.go and io_windows.go
type platformIO interface {
	isTerminal(*os.File) bool
	termSize(*os.File) (width, height int, ok bool)
}

// newPlatformIO is provided by platform files

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	p platformIO
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr, p: newPlatformIO()}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether stdout is connected to a terminal.
func (m *IOManager) IsTTY() bool { return m.p.isTerminal(os.Stdout) }

// IsPiped reports whether stdin is not a terminal.
func (m *IOManager) IsPiped() bool { return !m.p.isTerminal(os.Stdin) }

// IsRedirected reports whether stdout is not a terminal.
func (m *IOManager) IsRedirected() bool { return !m.p.isTerminal(os.Stdout) }

// Width returns the terminal width, consulting the terminal first, then the
// COLUMNS environment variable, then an 80-column fallback.
func (m *IOManager) Width() int {
	if w, _, ok := m.p.termSize(os.Stdout); ok && w > 0 {
		return w
	}
	if w2, _ := fallbackTermSizeFromEnv(); w2 > 0 {
		return w2
	}
	return 80
}

// Height returns the terminal height with the same fallback chain as Width.
func (m *IOManager) Height() int {
	if _, h, ok := m.p.termSize(os.Stdout); ok && h > 0 {
		return h
	}
	if _, h2 := fallbackTermSizeFromEnv(); h2 > 0 {
		return h2
	}
	return 24
}
