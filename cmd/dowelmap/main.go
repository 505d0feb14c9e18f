// DowelMap infers the connections between the parts of a furniture
// assembly from their top, frontal and lateral projections and maps the
// dowel and glue holes of every connection onto the part faces.
//
// Build:
//
//	go build -o dowelmap ./cmd/dowelmap
//
// Usage:
//
//	dowelmap process mesa.json -o mesa.holes.json --pdf mesa.pdf
//	dowelmap inspect mesa.json
//	dowelmap compare mesa.json
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	settingsPath string
	stageOrder   string
)

var rootCmd = &cobra.Command{
	Use:   "dowelmap",
	Short: "Connection inference and hole mapping for furniture assemblies",
	Long: `dowelmap reads the three orthogonal projections of every part of an
assembly, rebuilds the parts as boards, detects which faces touch and maps
the dowel and glue holes of each connection onto both parts.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline stage")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "engine settings JSON file (defaults to the user config)")
	rootCmd.PersistentFlags().StringVar(&stageOrder, "order", "", `stage order: "areas-first", "holes-first" or a comma separated stage list`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
