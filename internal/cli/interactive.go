package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/wastecalc/internal/config"
	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/share"
	"github.com/rshade/wastecalc/internal/tui"
)

// ErrNotInteractive is returned when the calculator is started without a
// terminal.
const ErrNotInteractive = constError("wastecalc needs an interactive terminal; use 'wastecalc calc' for scripted use")

type constError string

func (e constError) Error() string { return string(e) }

// runInteractive starts the calculator on the alternate screen.
func runInteractive(cmd *cobra.Command, _ []string) error {
	if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
		return ErrNotInteractive
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	strs, err := resolveStrings(ctx, cfg)
	if err != nil {
		return err
	}

	// The renderer and OSC 52 share one serialized writer.
	out := tui.NewTerminal(os.Stdout)
	sharer, err := share.Resolve(cfg.Share.Method, out)
	if err != nil {
		return fmt.Errorf("resolving share method: %w", err)
	}
	if sharer.Name() == share.MethodStdout {
		// Printing would land on the alternate screen and vanish with it.
		sharer = share.Nop{}
	}

	logger.Debug().
		Ctx(ctx).
		Str("operation", "interactive").
		Str("language", strs.Tag().String()).
		Str("share", sharer.Name()).
		Bool("strict_weight", cfg.Form.StrictWeight).
		Msg("starting calculator")

	model := tui.NewAppModel(ctx, strs, form.Options{ParseMode: cfg.ParseMode()}, sharer)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
