package share

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard copies shared text to the system clipboard.
type Clipboard struct {
	supported bool
	write     func(string) error
}

// NewClipboard returns a clipboard capability backed by the host's clipboard
// utility (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewClipboard() *Clipboard {
	return &Clipboard{
		supported: !clipboard.Unsupported,
		write:     clipboard.WriteAll,
	}
}

// Name implements Capability.
func (c *Clipboard) Name() string { return MethodClipboard }

// Available reports whether a clipboard utility was found.
func (c *Clipboard) Available() bool { return c.supported }

// RequestTextShare implements Capability.
func (c *Clipboard) RequestTextShare(_ context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !c.supported {
		return ErrUnavailable
	}
	if err := c.write(req.Text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set its clipboard.
type OSC52 struct {
	out       io.Writer
	multiplex string
}

// NewOSC52 returns a capability writing OSC 52 sequences to out. Sequences
// are wrapped for tmux or screen when running inside one.
//
// Each sequence is a single Write. When out is also the output of a running
// Bubble Tea program, out must serialize writes (see tui.Terminal) because
// RequestTextShare runs on a command goroutine.
func NewOSC52(out io.Writer) *OSC52 {
	o := &OSC52{out: out}
	switch {
	case os.Getenv("TMUX") != "":
		o.multiplex = "tmux"
	case os.Getenv("STY") != "":
		o.multiplex = "screen"
	}
	return o
}

// Name implements Capability.
func (o *OSC52) Name() string { return MethodOSC52 }

// RequestTextShare implements Capability.
func (o *OSC52) RequestTextShare(_ context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if o.out == nil {
		return ErrUnavailable
	}

	seq := osc52.New(req.Text)
	switch o.multiplex {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// Writer prints shared text, followed by a newline, to an io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriter returns a capability printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Name implements Capability.
func (w *Writer) Name() string { return MethodStdout }

// RequestTextShare implements Capability.
func (w *Writer) RequestTextShare(_ context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if w.out == nil {
		return ErrUnavailable
	}
	_, err := fmt.Fprintln(w.out, req.Text)
	return err
}

// Nop is a host without any share handler.
type Nop struct{}

// Name implements Capability.
func (Nop) Name() string { return MethodNone }

// RequestTextShare implements Capability.
func (Nop) RequestTextShare(context.Context, Request) error { return ErrUnavailable }
