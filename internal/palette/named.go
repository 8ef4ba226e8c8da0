package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Built-in qualitative palettes, keyed "Source:Name". The ColorBrewer
// sets are the qualitative schemes of Brewer et al.; Tableau:10 is the
// default categorical palette of Tableau 10.
var namedPalettes = map[string][]string{
	"ColorBrewer:Accent": {
		"#7fc97f", "#beaed4", "#fdc086", "#ffff99",
		"#386cb0", "#f0027f", "#bf5b17", "#666666",
	},
	"ColorBrewer:Dark2": {
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
		"#66a61e", "#e6ab02", "#a6761d", "#666666",
	},
	"ColorBrewer:Paired": {
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c",
		"#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00",
		"#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
	},
	"ColorBrewer:Pastel1": {
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4",
		"#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
	},
	"ColorBrewer:Pastel2": {
		"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4",
		"#e6f5c9", "#fff2ae", "#f1e2cc", "#cccccc",
	},
	"ColorBrewer:Set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
		"#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"ColorBrewer:Set2": {
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
		"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
	},
	"ColorBrewer:Set3": {
		"#8dd3c7", "#ffffb3", "#bebada", "#fb8072",
		"#80b1d3", "#fdb462", "#b3de69", "#fccde5",
		"#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
	},
	"Tableau:10": {
		"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
		"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
		"#9c755f", "#bab0ac",
	},
}

// LookupPalette resolves a palette name of the form "Source:Name",
// case-insensitively, into its colours.
func LookupPalette(name string) ([]colour.RGB, error) {
	for key, hexes := range namedPalettes {
		if !strings.EqualFold(key, name) {
			continue
		}

		colours := make([]colour.RGB, len(hexes))
		for i, s := range hexes {
			c, err := colour.ParseHex(s)
			if err != nil {
				return nil, fmt.Errorf("palette %s entry %d: %w", key, i, err)
			}
			colours[i] = c
		}
		return colours, nil
	}
	return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidConfiguration, name)
}

// PaletteNames returns the canonical names of the built-in palettes,
// sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
