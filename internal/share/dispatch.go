package share

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/wastecalc/internal/logging"
)

// Send hands req to c and logs the outcome. Errors are never returned: an
// unavailable capability is logged at debug, other failures at warn.
func Send(ctx context.Context, c Capability, req Request) {
	log := logging.FromContext(ctx)

	if c == nil {
		c = Nop{}
	}

	err := c.RequestTextShare(ctx, req)
	switch {
	case err == nil:
		log.Info().
			Ctx(ctx).
			Str("component", "share").
			Str("operation", "request_text_share").
			Str("capability", c.Name()).
			Int("length", len(req.Text)).
			Msg("shared result")
	case errors.Is(err, ErrUnavailable):
		log.Debug().
			Ctx(ctx).
			Str("component", "share").
			Str("capability", c.Name()).
			Msg("share request dropped, no handler")
	default:
		log.Warn().
			Ctx(ctx).
			Str("component", "share").
			Str("capability", c.Name()).
			Err(err).
			Msg("share request failed")
	}
}

// Dispatch returns a one-shot command that performs Send. The command yields
// no message, so the model never observes the outcome.
func Dispatch(ctx context.Context, c Capability, req Request) tea.Cmd {
	return func() tea.Msg {
		Send(ctx, c, req)
		return nil
	}
}
