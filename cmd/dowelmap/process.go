package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/piwi3910/DowelMap/internal/export"
	"github.com/piwi3910/DowelMap/internal/gcode"
	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/piwi3910/DowelMap/internal/project"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// processOptions are the outputs requested from one process run. Empty
// paths are skipped; an empty JSON path writes to stdout.
type processOptions struct {
	JSONPath   string
	PDFPath    string
	LabelsPath string
	XLSXPath   string
	DXFDir     string
	GCodeDir   string
}

var processOpts processOptions

var processCmd = &cobra.Command{
	Use:   "process [views file]",
	Short: "Map the holes of an assembly and write the output document",
	Long: `Import the projections of every part, run the pipeline and write the
per-part hole document. Drilling sheets, labels, a hole schedule, DXF face
drawings and G-code programs are written on request.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(settingsPath, stageOrder)
		if err != nil {
			return err
		}
		result, err := runPipeline(args[0], settings)
		if err != nil {
			return err
		}
		if err := writeOutputs(result, settings, processOpts, cmd.OutOrStdout()); err != nil {
			return err
		}
		rememberInput(args[0])
		return nil
	},
}

func init() {
	f := processCmd.Flags()
	f.StringVarP(&processOpts.JSONPath, "output", "o", "", "output document path (default stdout)")
	f.StringVar(&processOpts.PDFPath, "pdf", "", "write drilling sheets to this PDF")
	f.StringVar(&processOpts.LabelsPath, "labels", "", "write QR part labels to this PDF")
	f.StringVar(&processOpts.XLSXPath, "xlsx", "", "write the hole schedule to this workbook")
	f.StringVar(&processOpts.DXFDir, "dxf-dir", "", "write one DXF drawing per part into this directory")
	f.StringVar(&processOpts.GCodeDir, "gcode-dir", "", "write one drilling program per face into this directory")
	rootCmd.AddCommand(processCmd)
}

// writeOutputs writes every requested output of a pipeline result.
func writeOutputs(result model.Result, settings model.Settings, opts processOptions, stdout io.Writer) error {
	if len(result.Dropped) > 0 {
		log.Warn().Strs("parts", result.Dropped).Msg("parts dropped")
	}

	if opts.JSONPath == "" {
		if err := export.EncodeJSON(stdout, result); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
	} else {
		if err := export.WriteJSON(opts.JSONPath, result); err != nil {
			return err
		}
		log.Info().Str("path", opts.JSONPath).Msg("document written")
	}

	for _, out := range []struct {
		path  string
		what  string
		write func(string, model.Result) error
	}{
		{opts.PDFPath, "drilling sheets", export.ExportPDF},
		{opts.LabelsPath, "labels", export.ExportLabels},
		{opts.XLSXPath, "hole schedule", export.ExportXLSX},
	} {
		if out.path == "" {
			continue
		}
		if err := out.write(out.path, result); err != nil {
			return fmt.Errorf("failed to write %s: %w", out.what, err)
		}
		log.Info().Str("path", out.path).Msgf("%s written", out.what)
	}

	if opts.DXFDir != "" {
		paths, err := export.ExportDXF(opts.DXFDir, result)
		if err != nil {
			return fmt.Errorf("failed to write DXF drawings: %w", err)
		}
		log.Info().Str("dir", opts.DXFDir).Int("files", len(paths)).Msg("DXF drawings written")
	}

	for _, part := range result.Parts {
		for _, w := range gcode.FormatClearanceWarnings(gcode.CheckHoleClearance(part, settings)) {
			log.Warn().Msg(w)
		}
	}

	if opts.GCodeDir != "" {
		n, err := writeGCode(opts.GCodeDir, result, settings)
		if err != nil {
			return err
		}
		log.Info().Str("dir", opts.GCodeDir).Int("files", n).Msg("drilling programs written")
	}
	return nil
}

// writeGCode writes one program per drilled face and returns the number
// of files written.
func writeGCode(dir string, result model.Result, settings model.Settings) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	gen := gcode.New(settings)
	n := 0
	for i, programs := range gen.GenerateAll(result) {
		for _, fp := range programs {
			path := filepath.Join(dir, fp.FileName(i+1))
			if err := os.WriteFile(path, []byte(fp.Code), 0644); err != nil {
				return n, fmt.Errorf("failed to write %s: %w", path, err)
			}
			n++
		}
	}
	return n, nil
}

// rememberInput records the file in the user's recent list.
func rememberInput(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	cfgPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		return
	}
	cfg.AddRecentFile(abs, 10)
	if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
		log.Debug().Err(err).Msg("cannot update recent files")
	}
}
