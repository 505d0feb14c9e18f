package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultProximityTolerance != defaults.ProximityTolerance {
		t.Errorf("ProximityTolerance mismatch: config=%f settings=%f", cfg.DefaultProximityTolerance, defaults.ProximityTolerance)
	}
	if cfg.DefaultTemplate != defaults.DefaultTemplate {
		t.Errorf("DefaultTemplate mismatch: config=%f settings=%f", cfg.DefaultTemplate, defaults.DefaultTemplate)
	}
	if cfg.DefaultGCodeProfile != defaults.GCodeProfile {
		t.Errorf("GCodeProfile mismatch: config=%s settings=%s", cfg.DefaultGCodeProfile, defaults.GCodeProfile)
	}
	if len(cfg.DefaultStageOrder) != len(DefaultStageOrder) {
		t.Errorf("expected %d stages, got %d", len(DefaultStageOrder), len(cfg.DefaultStageOrder))
	}
	if cfg.RecentFiles == nil {
		t.Error("RecentFiles should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultProximityTolerance = 2
	cfg.DefaultPlungeRate = 900
	cfg.DefaultGCodeProfile = "Grbl"
	cfg.DefaultPeckDepth = 0

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.ProximityTolerance != 2 {
		t.Errorf("expected ProximityTolerance=2, got %f", s.ProximityTolerance)
	}
	if s.PlungeRate != 900 {
		t.Errorf("expected PlungeRate=900, got %f", s.PlungeRate)
	}
	if s.GCodeProfile != "Grbl" {
		t.Errorf("expected GCodeProfile=Grbl, got %s", s.GCodeProfile)
	}
	if s.PeckDepth != 0 {
		t.Errorf("expected pecking disabled, got %f", s.PeckDepth)
	}
}

func TestApplyToSettingsKeepsZeroFieldsUntouched(t *testing.T) {
	s := DefaultSettings()
	AppConfig{DefaultPeckDepth: s.PeckDepth}.ApplyToSettings(&s)
	if s.MinOverlapArea != DefaultSettings().MinOverlapArea {
		t.Error("zero config value must not override settings")
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentFile("a.json", 2)
	cfg.AddRecentFile("b.json", 2)
	cfg.AddRecentFile("a.json", 2)
	cfg.AddRecentFile("c.json", 2)
	if len(cfg.RecentFiles) != 2 || cfg.RecentFiles[0] != "c.json" || cfg.RecentFiles[1] != "a.json" {
		t.Errorf("unexpected recent files %v", cfg.RecentFiles)
	}
}
