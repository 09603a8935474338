package tui

import (
	"sync"

	xterm "github.com/charmbracelet/x/term"
)

// Terminal is the program output shared by the renderer and by share
// capabilities that talk to the terminal emulator (OSC 52). Each Write is
// delivered whole, so an escape sequence written from a command goroutine
// never lands inside a rendered frame.
//
// Terminal keeps the Fd of the wrapped file, so Bubble Tea still detects a
// TTY and reads the window size when it is passed to tea.WithOutput.
type Terminal struct {
	mu sync.Mutex
	f  xterm.File
}

// NewTerminal wraps f, normally os.Stdout.
func NewTerminal(f xterm.File) *Terminal {
	return &Terminal{f: f}
}

// Write implements io.Writer.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.Write(p)
}

// Read implements io.Reader.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.f.Read(p)
}

// Close implements io.Closer.
func (t *Terminal) Close() error {
	return t.f.Close()
}

// Fd returns the descriptor of the wrapped file.
func (t *Terminal) Fd() uintptr {
	return t.f.Fd()
}
