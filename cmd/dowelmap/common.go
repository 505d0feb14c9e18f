package main

import (
	"fmt"
	"strings"

	"github.com/piwi3910/DowelMap/internal/engine"
	"github.com/piwi3910/DowelMap/internal/importer"
	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/piwi3910/DowelMap/internal/project"
	"github.com/rs/zerolog/log"
)

// loadSettings resolves the engine settings: an explicit settings file
// wins, otherwise the user's app config is applied over the defaults.
// Custom G-code profiles are installed either way.
func loadSettings(path, order string) (model.Settings, error) {
	var settings model.Settings
	if path != "" {
		s, err := project.LoadSettings(path)
		if err != nil {
			return model.Settings{}, err
		}
		settings = s
	} else {
		settings = model.DefaultSettings()
		cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			log.Warn().Err(err).Msg("ignoring user config")
		} else {
			cfg.ApplyToSettings(&settings)
		}
	}

	if profiles, err := project.DefaultProfilesPath(); err == nil {
		if n, err := project.InstallCustomProfiles(profiles); err != nil {
			log.Warn().Err(err).Str("path", profiles).Msg("cannot load custom profiles")
		} else if n > 0 {
			log.Debug().Int("profiles", n).Msg("custom profiles installed")
		}
	}

	if order != "" {
		stages, err := parseStageOrder(order)
		if err != nil {
			return model.Settings{}, err
		}
		settings.StageOrder = stages
	}
	return settings, nil
}

// parseStageOrder accepts the two named orders or an explicit list.
func parseStageOrder(order string) ([]string, error) {
	var stages []string
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "areas-first", "default":
		stages = append(stages, model.DefaultStageOrder...)
	case "holes-first":
		stages = append(stages, engine.HolesFirstStageOrder...)
	default:
		for _, s := range strings.Split(order, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stages = append(stages, s)
			}
		}
	}
	if err := engine.ValidateStageOrder(stages); err != nil {
		return nil, fmt.Errorf("invalid --order: %w", err)
	}
	return stages, nil
}

// loadDocument imports a view document and logs its problems. Rows with
// errors are skipped; an import without any part is an error.
func loadDocument(path string) (model.ViewDocument, error) {
	res := importer.ImportViews(path)
	for _, w := range res.Warnings {
		log.Warn().Str("file", path).Msg(w)
	}
	for _, e := range res.Errors {
		log.Error().Str("file", path).Msg(e)
	}
	if res.Document.Len() == 0 {
		if len(res.Errors) > 0 {
			return model.ViewDocument{}, fmt.Errorf("%s: %s", path, res.Errors[0])
		}
		return model.ViewDocument{}, fmt.Errorf("%s: no parts found", path)
	}
	log.Debug().Str("file", path).Int("parts", res.Document.Len()).Msg("views imported")
	return res.Document, nil
}

// runPipeline loads the document and runs the engine on it.
func runPipeline(path string, settings model.Settings) (model.Result, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return model.Result{}, err
	}
	p := engine.New(settings)
	p.Log = log.Logger
	return p.Run(doc)
}
