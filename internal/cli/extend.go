package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/palette"
)

var (
	// Extend command flags
	extendOpts   generationOpts
	extendCount  int
	extendFormat string
	extendFixed  []string
)

// extendCmd represents the extend command
var extendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Extend an existing palette with new distinguishable colours",
	Long: `Extend a palette: given colours that are already in use (--fixed), select n
additional candidates that are maximally distinguishable both from each other
and from the fixed colours.

The fixed colours are never altered or re-selected, and only the new colours
are printed; append them to the fixed set for the full palette.

Examples:
  # Two more colours that work alongside an existing pair
  distinct extend -n 2 --fixed '#e41a1c' --fixed '#377eb8' \
    --palette ColorBrewer:Set1

  # Extend from a sampled colourspace region, avoiding the background
  distinct extend -n 3 --fixed '#1e1e2e' \
    --chroma-range 0.5,0.9 --lightness-range 0.4,0.8 \
    --background '#1e1e2e'`,
	RunE: runExtend,
}

func init() {
	registerGenerationFlags(extendCmd.Flags(), &extendOpts)
	extendCmd.Flags().IntVarP(&extendCount, "count", "n", 0, "Number of colours to add (required unless set in --config)")
	extendCmd.Flags().StringVarP(&extendFormat, "format", "f", "hex", "Output format (hex, json)")
	extendCmd.Flags().StringArrayVar(&extendFixed, "fixed", nil, "Colour already in the palette, as #rrggbb (repeatable)")
}

// runExtend executes the extend command.
func runExtend(cmd *cobra.Command, args []string) error {
	cfg, job, err := extendOpts.resolve()
	if err != nil {
		return err
	}

	fixedHex := extendFixed
	if len(fixedHex) == 0 {
		fixedHex = job.Fixed
	}
	if len(fixedHex) == 0 {
		return fmt.Errorf("%w: extend needs at least one --fixed colour", palette.ErrInvalidParameter)
	}
	fixed, err := parseFixed(fixedHex)
	if err != nil {
		return err
	}

	n := extendCount
	if n == 0 && job.N != nil {
		n = *job.N
	}

	gen := palette.NewGenerator(cfg)
	gen.SetLogger(newLogger())

	colours, err := gen.Extend(fixed, n)
	if err != nil {
		return err
	}

	return writeColours(cmd, colours, extendFormat)
}
