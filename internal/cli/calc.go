package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/wastecalc/internal/config"
	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/pricing"
	"github.com/rshade/wastecalc/internal/share"
	"github.com/rshade/wastecalc/internal/tui"
)

// ErrInvalidInput is returned by calc when the form rejects the submit.
const ErrInvalidInput = constError("invalid input")

// Output formats of the calc command.
const (
	outputText = "text"
	outputJSON = "json"
)

// calcParams holds the parameters for the calc command execution.
type calcParams struct {
	category string
	weight   string
	output   string
	share    bool
	strict   bool
	plain    bool
}

// calcOutput is the JSON document printed with --output json.
type calcOutput struct {
	form.State

	Summary string `json:"summary,omitempty"`
	Display string `json:"display_total,omitempty"`
}

// NewCalcCmd creates the calc command, which runs one select, edit and submit
// sequence through the calculation form and prints the outcome.
//
// Registered flags:
//   - --category: organic or inorganic (also organik, anorganik)
//   - --weight: weight in kilograms, as typed into the form
//   - --output: text or json
//   - --share: hand the result to the configured share method
//   - --strict: report unparseable weights instead of ignoring them
//   - --plain: disable styling
func NewCalcCmd() *cobra.Command {
	var params calcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the price of a batch of waste",
		Long: fmt.Sprintf(`Calculates the price of sorted waste at %d per kilogram.

An unparseable weight is ignored and prints nothing unless --strict (or
form.strict_weight in the config file) is set.`, pricing.UnitPricePerKg),
		Example: calcExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.category, "category", "", "Waste category: organic or inorganic")
	cmd.Flags().StringVar(&params.weight, "weight", "", "Weight in kilograms")
	cmd.Flags().StringVar(&params.output, "output", outputText, "Output format: text or json")
	cmd.Flags().BoolVar(&params.share, "share", false, "Share the result using share.method")
	cmd.Flags().BoolVar(&params.strict, "strict", false, "Treat an unparseable weight as invalid input")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "Disable styled output")

	return cmd
}

const calcExample = `  # Price 2.5 kg of organic waste
  wastecalc calc --category organic --weight 2.5

  # Machine-readable result
  wastecalc calc --category inorganic --weight 3 --output json

  # Copy the result to the clipboard
  wastecalc calc --category inorganic --weight 3 --share`

// executeCalc runs the calc command.
func executeCalc(cmd *cobra.Command, params calcParams) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	output := strings.ToLower(params.output)
	if output != outputText && output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", params.output)
	}

	category, err := pricing.ParseCategory(params.category)
	if err != nil {
		return fmt.Errorf("invalid --category: %w", err)
	}

	opts := form.Options{ParseMode: cfg.ParseMode()}
	if cmd.Flags().Changed("strict") {
		opts.ParseMode = form.ParseSilent
		if params.strict {
			opts.ParseMode = form.ParseStrict
		}
	}

	state := form.Apply(form.New(), opts,
		form.SelectCategory{Category: category},
		form.EditWeight{Text: params.weight},
		form.Submit{},
	)

	logger.Debug().
		Ctx(ctx).
		Str("operation", "calc").
		Str("category", category.ID()).
		Bool("valid", state.Valid).
		Str("failure", string(state.Failure)).
		Bool("has_result", state.HasResult()).
		Msg("form submitted")

	strs, err := resolveStrings(ctx, cfg)
	if err != nil {
		return err
	}

	if output == outputJSON {
		err = renderCalcJSON(cmd.OutOrStdout(), strs, state)
	} else {
		mode := tui.DetectOutputMode(params.plain, false, false)
		if text := tui.RenderCalcOutput(strs, state, mode, tui.TerminalWidth()); text != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	}
	if err != nil {
		return err
	}

	if !state.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("%w: %s", ErrInvalidInput, state.Failure)
	}

	if params.share {
		return shareResult(cmd, cfg, strs, state)
	}
	return nil
}

// renderCalcJSON writes the form state and, when present, the summary.
// JSON has no NaN or infinities, so a non-finite total is only reported
// through display_total.
func renderCalcJSON(w io.Writer, strs *i18n.Strings, state form.State) error {
	out := calcOutput{State: state}
	if summary, ok := form.Summary(state, strs.SummaryLabels()); ok {
		out.Summary = summary
		out.Display = pricing.FormatTotal(state.Total())
	}
	if out.Result != nil && (math.IsNaN(*out.Result) || math.IsInf(*out.Result, 0)) {
		out.Result = nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// shareResult hands the summary to the configured share capability. Share
// failures are logged, never returned.
func shareResult(cmd *cobra.Command, cfg *config.Config, strs *i18n.Strings, state form.State) error {
	text, ok := form.Summary(state, strs.SummaryLabels())
	if !ok {
		return nil
	}

	sharer, err := share.Resolve(cfg.Share.Method, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("resolving share method: %w", err)
	}
	share.Send(cmd.Context(), sharer, share.NewTextRequest(text))
	return nil
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidInput):
		return exitInvalidInput
	default:
		return 1
	}
}

// exitInvalidInput is the exit code of a rejected calculation.
const exitInvalidInput = 2
