package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/config"
	"github.com/jmylchreest/distinct/internal/image"
	"github.com/jmylchreest/distinct/internal/palette"
)

// generationOpts collects everything the generate and extend commands
// share: the input mode flags, the perception options, and the job
// file. Flag values override job file values.
type generationOpts struct {
	configPath string

	colours     []string
	hueRange    []float64
	chromaRange []float64
	lightRange  []float64
	paletteName string
	imagePath   string

	cvd        map[string]string
	background string
	metric     string
	maxMemory  uint64
}

// resolve merges the job file (if any) under the flags and builds the
// validated generation Config. The loaded job is returned so commands
// can pick up values with no flag equivalent default, like the count.
func (o *generationOpts) resolve() (palette.Config, *config.Job, error) {
	job := &config.Job{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return palette.Config{}, nil, err
		}
		job = loaded
	}

	// The input mode merges as a unit, not per field: any mode flag
	// replaces whatever mode the job file chose, so a file palette and
	// a flag colour list never collide.
	flagMode := len(o.colours) > 0 ||
		len(o.hueRange) > 0 || len(o.chromaRange) > 0 || len(o.lightRange) > 0 ||
		o.paletteName != "" || o.imagePath != ""
	if !flagMode {
		o.colours = job.Colours
		o.hueRange = job.HueRange
		o.chromaRange = job.ChromaRange
		o.lightRange = job.LightRange
		o.paletteName = job.Palette
		o.imagePath = job.Image
	}
	if o.background == "" {
		o.background = job.Background
	}
	if o.metric == "" {
		o.metric = job.Metric
	}
	if o.maxMemory == 0 {
		o.maxMemory = job.MaxMemory
	}

	in, err := o.buildInput()
	if err != nil {
		return palette.Config{}, nil, err
	}

	builder := palette.NewConfigBuilder().
		WithInput(in).
		WithMetric(o.metric).
		WithMaxMemory(o.maxMemory)

	cvd, err := o.buildCVD(job.CVD)
	if err != nil {
		return palette.Config{}, nil, err
	}
	builder.WithCVD(cvd)

	if o.background != "" {
		bg, err := colour.ParseHex(o.background)
		if err != nil {
			return palette.Config{}, nil, fmt.Errorf("background: %w", err)
		}
		builder.WithBackground(bg)
	}

	cfg, err := builder.Build()
	if err != nil {
		return palette.Config{}, nil, err
	}
	return cfg, job, nil
}

// buildInput turns the mode flags into the single Input. Setting more
// than one mode is rejected here; setting none leaves the builder to
// report the missing input.
func (o *generationOpts) buildInput() (palette.Input, error) {
	rangesSet := len(o.hueRange) > 0 || len(o.chromaRange) > 0 || len(o.lightRange) > 0

	modes := 0
	if len(o.colours) > 0 {
		modes++
	}
	if rangesSet {
		modes++
	}
	if o.paletteName != "" {
		modes++
	}
	if o.imagePath != "" {
		modes++
	}
	if modes > 1 {
		return nil, fmt.Errorf("%w: use only one of --colour, the range flags, --palette, and --image", palette.ErrConflictingInput)
	}

	switch {
	case len(o.colours) > 0:
		return palette.HexListInput{Hex: o.colours}, nil
	case rangesSet:
		in := palette.ColourspaceInput{
			HueMin: 0, HueMax: 360,
			ChromaMin: 0, ChromaMax: 1,
			LightMin: 0, LightMax: 1,
		}
		if r, err := pair("hue-range", o.hueRange); err != nil {
			return nil, err
		} else if r != nil {
			in.HueMin, in.HueMax = r[0], r[1]
		}
		if r, err := pair("chroma-range", o.chromaRange); err != nil {
			return nil, err
		} else if r != nil {
			in.ChromaMin, in.ChromaMax = r[0], r[1]
		}
		if r, err := pair("lightness-range", o.lightRange); err != nil {
			return nil, err
		} else if r != nil {
			in.LightMin, in.LightMax = r[0], r[1]
		}
		return in, nil
	case o.paletteName != "":
		return palette.PaletteInput{Name: o.paletteName}, nil
	case o.imagePath != "":
		return image.Input{Path: o.imagePath}, nil
	default:
		return nil, nil
	}
}

// pair validates a two-element range, returning nil when unset.
func pair(name string, r []float64) ([]float64, error) {
	switch len(r) {
	case 0:
		return nil, nil
	case 2:
		return r, nil
	default:
		return nil, fmt.Errorf("%w: --%s needs exactly two values, got %d", palette.ErrInvalidParameter, name, len(r))
	}
}

// buildCVD merges the --cvd flag values over the job file's map and
// parses the severities.
func (o *generationOpts) buildCVD(fromJob map[string]float64) (map[string]float64, error) {
	merged := make(map[string]float64, len(fromJob)+len(o.cvd))
	for name, severity := range fromJob {
		merged[name] = severity
	}
	for name, raw := range o.cvd {
		severity, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --cvd %s=%s is not a number", palette.ErrInvalidParameter, name, raw)
		}
		merged[name] = severity
	}
	if len(merged) == 0 {
		return nil, nil
	}
	return merged, nil
}

// parseFixed parses the fixed colours for the extend command.
func parseFixed(hexes []string) ([]colour.RGB, error) {
	fixed := make([]colour.RGB, 0, len(hexes))
	for _, s := range hexes {
		c, err := colour.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("fixed colour: %w", err)
		}
		fixed = append(fixed, c)
	}
	return fixed, nil
}
