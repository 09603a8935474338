// Package share hands text to the host's share mechanism. On a terminal that
// is the system clipboard or, over SSH and inside multiplexers, an OSC 52
// escape sequence.
//
// Sharing is fire-and-forget: callers dispatch a request and never observe the
// outcome. When no handler is available the request is dropped.
package share

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// MimeTypeText is the only content type wastecalc shares.
const MimeTypeText = "text/plain"

// Share methods accepted by Resolve.
const (
	MethodAuto      = "auto"
	MethodClipboard = "clipboard"
	MethodOSC52     = "osc52"
	MethodStdout    = "stdout"
	MethodNone      = "none"
)

// Methods lists the accepted share methods.
func Methods() []string {
	return []string{MethodAuto, MethodClipboard, MethodOSC52, MethodStdout, MethodNone}
}

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	// ErrUnavailable means the capability has no handler on this host.
	ErrUnavailable = constError("share capability unavailable")

	// ErrUnsupportedMimeType means the request carries something other than text.
	ErrUnsupportedMimeType = constError("unsupported mime type")

	// ErrUnknownMethod means the configured method is not recognized.
	ErrUnknownMethod = constError("unknown share method")
)

// Request is a single share request.
type Request struct {
	MimeType string
	Text     string
}

// NewTextRequest returns a text/plain request.
func NewTextRequest(text string) Request {
	return Request{MimeType: MimeTypeText, Text: text}
}

// Validate checks that the request can be handed to a capability.
func (r Request) Validate() error {
	if r.MimeType != MimeTypeText {
		return fmt.Errorf("%w: %q", ErrUnsupportedMimeType, r.MimeType)
	}
	return nil
}

// Capability is a host mechanism able to receive shared text.
type Capability interface {
	// Name identifies the capability in logs.
	Name() string
	// RequestTextShare hands req to the host.
	RequestTextShare(ctx context.Context, req Request) error
}

// ValidateMethod reports whether method is accepted by Resolve.
func ValidateMethod(method string) error {
	m := strings.ToLower(strings.TrimSpace(method))
	if m == "" {
		return nil
	}
	for _, known := range Methods() {
		if m == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// Resolve returns the capability for method. out is the terminal the
// application draws on; it receives OSC 52 sequences and stdout shares.
// An empty method means MethodAuto.
func Resolve(method string, out io.Writer) (Capability, error) {
	if err := ValidateMethod(method); err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(method)) {
	case MethodClipboard:
		return NewClipboard(), nil
	case MethodOSC52:
		return NewOSC52(out), nil
	case MethodStdout:
		return NewWriter(out), nil
	case MethodNone:
		return Nop{}, nil
	default:
		return resolveAuto(out), nil
	}
}

func resolveAuto(out io.Writer) Capability {
	if cb := NewClipboard(); cb.Available() {
		return cb
	}
	if isTerminal(out) {
		return NewOSC52(out)
	}
	return Nop{}
}

// isTerminal accepts any writer exposing a descriptor, such as *os.File or a
// wrapper around it.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
