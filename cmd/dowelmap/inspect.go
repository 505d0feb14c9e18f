package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [views file]",
	Short: "List the rebuilt parts and the detected connections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(settingsPath, stageOrder)
		if err != nil {
			return err
		}
		result, err := runPipeline(args[0], settings)
		if err != nil {
			return err
		}
		printInspection(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func printInspection(out io.Writer, result model.Result) {
	fmt.Fprintf(out, "Run %s, template %s mm\n\n", result.RunID, model.FormatTemplate(result.Template))

	fmt.Fprintln(out, "Parts:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tName\tRole\tL x H x T\tPosition\tConns\tHoles\tFaces")
	for i, p := range result.Parts {
		var faces []string
		for _, f := range p.Faces {
			if !f.Empty() {
				faces = append(faces, fmt.Sprintf("%s(%d)", f.Side, len(f.Holes)))
			}
		}
		conns := 0
		for _, c := range result.Connections {
			if c.Involves(i) {
				conns++
			}
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%g x %g x %g\t(%g, %g, %g)\t%d\t%d\t%s\n",
			i+1, p.Name, p.Role, p.Length, p.Height, p.Thickness,
			p.Position.X, p.Position.Y, p.Position.Z, conns, p.HoleCount(), strings.Join(faces, " "))
	}
	w.Flush()

	if len(result.Dropped) > 0 {
		fmt.Fprintf(out, "\nDropped: %s\n", strings.Join(result.Dropped, ", "))
	}

	fmt.Fprintln(out, "\nConnections:")
	if len(result.Connections) == 0 {
		fmt.Fprintln(out, "  none")
		return
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tPart A\tFace A\tPart B\tFace B\tAxis\tOverlap mm2\tState")
	for _, c := range result.Connections {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
			c.ID, nameOf(result, c.A.Part), c.A.Side, nameOf(result, c.B.Part), c.B.Side,
			c.Axis, c.Overlap.Area(), c.State)
	}
	w.Flush()
}

func nameOf(result model.Result, i int) string {
	if i < 0 || i >= len(result.Parts) {
		return "?"
	}
	return result.Parts[i].Name
}
