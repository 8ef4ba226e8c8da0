package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/distinct/internal/palette"
)

var (
	// Generate command flags
	generateOpts   generationOpts
	generateCount  int
	generateFormat string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a maximally distinguishable colour palette",
	Long: `Generate a palette of n colours chosen so that the smallest perceptual
difference between any two of them is as large as possible.

Exactly one candidate source must be given:
  --colour          explicit #rrggbb colours (repeatable)
  range flags       a region of the colour cylinder (--hue-range,
                    --chroma-range, --lightness-range; unset ranges
                    cover their whole axis)
  --palette         a built-in named palette (see 'distinct palettes')
  --image           an image file to sample candidates from

Examples:
  # Pick the 5 most distinguishable colours of ColorBrewer Set3
  distinct generate -n 5 --palette ColorBrewer:Set3

  # Sample mid-lightness, mid-chroma colours and pick 8
  distinct generate -n 8 --chroma-range 0.4,0.8 --lightness-range 0.3,0.7

  # Palettes that stay legible for deuteranopia, against a white page
  distinct generate -n 6 --palette ColorBrewer:Paired \
    --cvd deutan=1 --background '#ffffff'

  # Use the cheaper CIE76 metric and cap the distance matrix at 1 MiB
  distinct generate -n 4 --image wallpaper.jpg --metric cie76 \
    --max-memory 1048576

  # Keep the whole request in a file
  distinct generate --config palette-job.yaml`,
	RunE: runGenerate,
}

func init() {
	registerGenerationFlags(generateCmd.Flags(), &generateOpts)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 0, "Number of colours to select (required unless set in --config)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "hex", "Output format (hex, json)")
}

// registerGenerationFlags wires the flags shared by generate and
// extend onto a flag set.
func registerGenerationFlags(flags *pflag.FlagSet, opts *generationOpts) {
	flags.StringVar(&opts.configPath, "config", "", "YAML job file with generation parameters")

	flags.StringArrayVar(&opts.colours, "colour", nil, "Candidate colour as #rrggbb (repeatable)")
	flags.Float64SliceVar(&opts.hueRange, "hue-range", nil, "Hue range in degrees, min,max")
	flags.Float64SliceVar(&opts.chromaRange, "chroma-range", nil, "Chroma range in [0,1], min,max")
	flags.Float64SliceVar(&opts.lightRange, "lightness-range", nil, "Lightness range in [0,1], min,max")
	flags.StringVar(&opts.paletteName, "palette", "", "Built-in palette name, e.g. ColorBrewer:Set2")
	flags.StringVar(&opts.imagePath, "image", "", "Image file to sample candidates from")

	flags.StringToStringVar(&opts.cvd, "cvd", nil, "Colour vision deficiency to simulate, name=severity (protan, deutan, tritan)")
	flags.StringVar(&opts.background, "background", "", "Background colour to keep distance from, as #rrggbb")
	flags.StringVar(&opts.metric, "metric", "", "Distance metric (cie76, din99d, ciede2000; default ciede2000)")
	flags.Uint64Var(&opts.maxMemory, "max-memory", 0, "Distance matrix memory ceiling in bytes (0 = default cap)")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, job, err := generateOpts.resolve()
	if err != nil {
		return err
	}

	n := generateCount
	if n == 0 && job.N != nil {
		n = *job.N
	}

	gen := palette.NewGenerator(cfg)
	gen.SetLogger(newLogger())

	colours, err := gen.Generate(n)
	if err != nil {
		return err
	}

	return writeColours(cmd, colours, generateFormat)
}
