package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/wastecalc/internal/config"
	"github.com/rshade/wastecalc/internal/tui"
)

// NewAboutCmd creates the about command, which prints the about screen.
func NewAboutCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show information about wastecalc",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strs, err := resolveStrings(cmd.Context(), config.GetGlobalConfig())
			if err != nil {
				return err
			}
			mode := tui.DetectOutputMode(plain, false, false)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderAbout(strs, mode, tui.TerminalWidth()))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled output")

	return cmd
}
