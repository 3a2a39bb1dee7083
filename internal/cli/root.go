// Package cli provides the command-line interface for mex.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biomodelkit/mex/internal/config"
	"github.com/biomodelkit/mex/internal/copasi"
	"github.com/biomodelkit/mex/internal/replicate"
)

// Version is set at build time.
var Version = "0.1.0"

var quiet bool

// rootCmd is the whole command surface: mex does one thing.
var rootCmd = &cobra.Command{
	Use:   "mex <filename> <rows> [columns]",
	Short: "Replicate a biochemical model into a grid of connected copies",
	Long: `Mex takes a model file and replicates it as a set of structurally
identical sub-models, each copy's element names disambiguated by a
positional suffix: "_i" for a linear set, "_r,c" for a rectangular grid.

Examples:
  mex model.cps 5        five copies, names suffixed _1 .. _5
  mex model.cps 2 3      a 2x3 grid, names suffixed _1,1 .. _2,3
  mex -q model.cps 4     as above, without the summary output`,
	Version: Version,
	Args:    cobra.RangeArgs(2, 3),
	RunE:    runReplicate,
}

func runReplicate(cmd *cobra.Command, args []string) error {
	filename := args[0]

	rows, err := parsePositive(args[1], "rows")
	if err != nil {
		return err
	}
	cols := 1
	if len(args) == 3 {
		if cols, err = parsePositive(args[2], "columns"); err != nil {
			return err
		}
	}

	grid := replicate.Grid{Rows: rows, Cols: cols}
	if grid.Cells() == 1 {
		fmt.Fprintln(cmd.OutOrStdout(),
			"Nothing to do, one copy only is the same as the original model!\nAt least one of rows or columns must be larger than 1.")
		return nil
	}

	cfg := config.Load()
	logger, cleanup := config.SetupLogger(cfg, quiet)
	defer cleanup()

	seed, err := copasi.Load(filename)
	if err != nil {
		return err
	}

	styles := newStyles(cfg.NoColor)
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Processing %s\n", filename)
		printSummary(cmd.OutOrStdout(), styles, seed)
	}

	out, err := replicate.Replicate(seed, grid, replicate.Options{
		SourceName: filename,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("replicate %s: %w", filename, err)
	}

	outName := replicate.OutputFilename(filename, grid)
	if err := copasi.Save(outName, out); err != nil {
		return fmt.Errorf("save %s: %w", outName, err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s with %s of %s\n",
			styles.success.Render("created new model"), outName, grid.Description(), filename)
	}
	return nil
}

// parsePositive rejects malformed row/column counts at the argument
// boundary, before any model work begins.
func parsePositive(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", what, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: %d is an invalid non-positive value", what, n)
	}
	return n, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress information messages")
}
