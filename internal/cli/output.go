package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/distinct/internal/colour"
)

// writeColours prints the selected colours in the requested format.
// On an interactive terminal each hex line carries a truecolor swatch.
func writeColours(cmd *cobra.Command, colours []colour.RGB, format string) error {
	switch format {
	case "hex":
		interactive := isTerminal(cmd)
		for _, c := range colours {
			if interactive {
				cmd.Printf("%s %s\n", swatch(c), c.Hex())
			} else {
				cmd.Println(c.Hex())
			}
		}
		return nil

	case "json":
		hexes := make([]string, len(colours))
		for i, c := range colours {
			hexes[i] = c.Hex()
		}
		data, err := json.MarshalIndent(hexes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode colours: %w", err)
		}
		cmd.Println(string(data))
		return nil

	default:
		return fmt.Errorf("unsupported format: %s (want hex or json)", format)
	}
}

// isTerminal reports whether the command's stdout is an interactive
// terminal. Swatches are suppressed when output is piped.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders a colour block using a 24-bit ANSI background.
func swatch(c colour.RGB) string {
	r := int(c.R*255 + 0.5)
	g := int(c.G*255 + 0.5)
	b := int(c.B*255 + 0.5)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", r, g, b)
}

// swatchStrip renders a row of small swatches for a palette listing.
func swatchStrip(colours []colour.RGB, interactive bool) string {
	if !interactive {
		hexes := make([]string, len(colours))
		for i, c := range colours {
			hexes[i] = c.Hex()
		}
		return strings.Join(hexes, " ")
	}

	var sb strings.Builder
	for _, c := range colours {
		r := int(c.R*255 + 0.5)
		g := int(c.G*255 + 0.5)
		b := int(c.B*255 + 0.5)
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
	}
	return sb.String()
}
