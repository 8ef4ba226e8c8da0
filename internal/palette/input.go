package palette

import (
	"fmt"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Origin records where a candidate set came from.
type Origin string

const (
	// OriginRange marks candidates sampled from a colourspace region.
	OriginRange Origin = "range"

	// OriginUser marks candidates supplied directly by the caller.
	OriginUser Origin = "user"

	// OriginPalette marks candidates resolved from a named palette.
	OriginPalette Origin = "palette"

	// OriginImage marks candidates sampled from an image.
	OriginImage Origin = "image"
)

// CandidateSet is an ordered sequence of candidate colours. The order
// only matters for deterministic tie breaking during selection.
type CandidateSet struct {
	Colours []colour.RGB
	Origin  Origin
}

// Input is one of the supported candidate sources. Exactly one Input
// is attached to a Configuration; modelling the source as a closed sum
// makes "no mode" and "two modes" unrepresentable past the binding
// layer.
type Input interface {
	// Resolve produces the ordered candidate set.
	Resolve() (CandidateSet, error)
}

// rangePoints is the number of colours sampled from a colourspace
// region. It is a fixed, documented constant: the same region always
// resolves to the same candidates.
const rangePoints = 512

// ColourspaceInput samples candidates from a region of the colour
// cylinder given by three half-open ranges: hue in degrees (may wrap or
// exceed 360), chroma and lightness in [0, 1]. Chroma here is the
// cylinder's radial coordinate, realised as HSL saturation.
type ColourspaceInput struct {
	HueMin, HueMax       float64
	ChromaMin, ChromaMax float64
	LightMin, LightMax   float64
}

// Resolve samples the region with a Halton sequence in bases 2, 3 and
// 5, which covers the region far more evenly than a random draw at the
// same count and is fully deterministic.
func (in ColourspaceInput) Resolve() (CandidateSet, error) {
	if in.HueMax < in.HueMin {
		return CandidateSet{}, fmt.Errorf("%w: hue range [%g, %g) is inverted", ErrInvalidParameter, in.HueMin, in.HueMax)
	}
	if err := checkUnitRange("chroma", in.ChromaMin, in.ChromaMax); err != nil {
		return CandidateSet{}, err
	}
	if err := checkUnitRange("lightness", in.LightMin, in.LightMax); err != nil {
		return CandidateSet{}, err
	}

	colours := make([]colour.RGB, 0, rangePoints)
	for i := 0; i < rangePoints; i++ {
		h := in.HueMin + halton(i+1, 2)*(in.HueMax-in.HueMin)
		c := in.ChromaMin + halton(i+1, 3)*(in.ChromaMax-in.ChromaMin)
		l := in.LightMin + halton(i+1, 5)*(in.LightMax-in.LightMin)

		colours = append(colours, colour.HSLToRGB(colour.HSL{H: h, S: c, L: l}))
	}

	return CandidateSet{Colours: colours, Origin: OriginRange}, nil
}

func checkUnitRange(name string, lo, hi float64) error {
	if lo < 0 || hi > 1 || hi < lo {
		return fmt.Errorf("%w: %s range [%g, %g] (want 0 <= min <= max <= 1)", ErrInvalidParameter, name, lo, hi)
	}
	return nil
}

// halton returns element i of the Halton low-discrepancy sequence in
// the given prime base, in (0, 1).
func halton(i, base int) float64 {
	f := 1.0
	r := 0.0
	for i > 0 {
		f /= float64(base)
		r += f * float64(i%base)
		i /= base
	}
	return r
}

// ColourListInput uses caller-supplied colours as-is, order preserved.
type ColourListInput struct {
	Colours []colour.RGB
}

// Resolve returns a copy of the supplied colours.
func (in ColourListInput) Resolve() (CandidateSet, error) {
	if len(in.Colours) == 0 {
		return CandidateSet{}, fmt.Errorf("%w: colour list is empty", ErrInvalidParameter)
	}

	colours := make([]colour.RGB, len(in.Colours))
	copy(colours, in.Colours)
	return CandidateSet{Colours: colours, Origin: OriginUser}, nil
}

// HexListInput parses caller-supplied #rrggbb strings, order preserved.
type HexListInput struct {
	Hex []string
}

// Resolve parses each entry, reporting the offending entry on failure.
func (in HexListInput) Resolve() (CandidateSet, error) {
	if len(in.Hex) == 0 {
		return CandidateSet{}, fmt.Errorf("%w: hex list is empty", ErrInvalidParameter)
	}

	colours := make([]colour.RGB, 0, len(in.Hex))
	for i, s := range in.Hex {
		c, err := colour.ParseHex(s)
		if err != nil {
			return CandidateSet{}, fmt.Errorf("hex list entry %d: %w", i, err)
		}
		colours = append(colours, c)
	}

	return CandidateSet{Colours: colours, Origin: OriginUser}, nil
}

// PaletteInput resolves a named palette, e.g. "ColorBrewer:Set2".
type PaletteInput struct {
	Name string
}

// Resolve looks the palette up in the built-in table.
func (in PaletteInput) Resolve() (CandidateSet, error) {
	colours, err := LookupPalette(in.Name)
	if err != nil {
		return CandidateSet{}, err
	}
	return CandidateSet{Colours: colours, Origin: OriginPalette}, nil
}
