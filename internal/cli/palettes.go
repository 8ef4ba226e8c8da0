package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/palette"
)

// palettesCmd represents the palettes command
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in named palettes",
	Long: `List the named palettes that can be used as a candidate source with
--palette, with their sizes and colours.`,
	RunE: runPalettes,
}

// runPalettes executes the palettes command.
func runPalettes(cmd *cobra.Command, args []string) error {
	interactive := isTerminal(cmd)

	table := NewTable([]string{"NAME", "COLOURS", "PREVIEW"})
	for _, name := range palette.PaletteNames() {
		colours, err := palette.LookupPalette(name)
		if err != nil {
			return err
		}
		table.AddRow([]string{
			name,
			fmt.Sprintf("%d", len(colours)),
			swatchStrip(colours, interactive),
		})
	}

	cmd.Print(table.Render())
	return nil
}
