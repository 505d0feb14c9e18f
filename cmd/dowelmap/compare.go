package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/DowelMap/internal/engine"
	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [views file]",
	Short: "Run the pipeline under alternative stage orders and tolerances",
	Long: `Run the current settings, the other stage order and a looser and a
stricter proximity tolerance on the same document and print a summary of
each run side by side.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(settingsPath, stageOrder)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		results := engine.CompareScenarios(engine.BuildDefaultScenarios(settings), doc)
		printComparison(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func printComparison(out io.Writer, results []engine.ComparisonResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Scenario\tConnections\tHoles\tConnected\tAreas\tTemplate")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Scenario.Name, r.Connections, r.Holes, r.ConnectedHoles, r.Areas, model.FormatTemplate(r.Template))
	}
	w.Flush()
}
