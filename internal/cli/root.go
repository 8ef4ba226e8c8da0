// Package cli provides the command-line interface for distinct.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/version"
)

var (
	// Global verbose flag
	globalVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "distinct",
		Short: "A qualitative colour palette generator",
		Long: `Distinct generates qualitative colour palettes: sets of colours chosen to be
maximally distinguishable from each other under a perceptual colour difference
metric.

Candidates can come from a region of the colour cylinder, an explicit colour
list, a built-in named palette, or an image. Generation can account for colour
vision deficiencies, keep its distance from a background colour, and extend an
existing palette without touching the colours already in it.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the configured root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(extendCmd)
	rootCmd.AddCommand(palettesCmd)
}

// newLogger builds the logger handed to the generation pipeline:
// debug-level output on --verbose, silence otherwise.
func newLogger() hclog.Logger {
	if !globalVerbose {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "distinct",
		Level:  hclog.Debug,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
