package model

// AppConfig holds user preferences and the defaults applied to every run.
type AppConfig struct {
	DefaultProximityTolerance float64  `json:"default_proximity_tolerance"`
	DefaultMinOverlapArea     float64  `json:"default_min_overlap_area"`
	DefaultTemplate           float64  `json:"default_template"`
	DefaultStageOrder         []string `json:"default_stage_order"`
	DefaultGCodeProfile       string   `json:"default_gcode_profile"`
	DefaultSpindleSpeed       int      `json:"default_spindle_speed"`
	DefaultPlungeRate         float64  `json:"default_plunge_rate"`
	DefaultSafeZ              float64  `json:"default_safe_z"`
	DefaultPeckDepth          float64  `json:"default_peck_depth"`

	OutputDir   string   `json:"output_dir"` // empty = next to the input file
	RecentFiles []string `json:"recent_files"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultProximityTolerance: defaults.ProximityTolerance,
		DefaultMinOverlapArea:     defaults.MinOverlapArea,
		DefaultTemplate:           defaults.DefaultTemplate,
		DefaultStageOrder:         append([]string(nil), defaults.StageOrder...),
		DefaultGCodeProfile:       defaults.GCodeProfile,
		DefaultSpindleSpeed:       defaults.SpindleSpeed,
		DefaultPlungeRate:         defaults.PlungeRate,
		DefaultSafeZ:              defaults.SafeZ,
		DefaultPeckDepth:          defaults.PeckDepth,
		RecentFiles:               []string{},
	}
}

// ApplyToSettings copies the user's defaults into s. Zero values leave the
// corresponding setting untouched so that older config files keep working.
func (c AppConfig) ApplyToSettings(s *Settings) {
	if c.DefaultProximityTolerance > 0 {
		s.ProximityTolerance = c.DefaultProximityTolerance
	}
	if c.DefaultMinOverlapArea > 0 {
		s.MinOverlapArea = c.DefaultMinOverlapArea
	}
	if c.DefaultTemplate > 0 {
		s.DefaultTemplate = c.DefaultTemplate
	}
	if len(c.DefaultStageOrder) > 0 {
		s.StageOrder = append([]string(nil), c.DefaultStageOrder...)
	}
	if c.DefaultGCodeProfile != "" {
		s.GCodeProfile = c.DefaultGCodeProfile
	}
	if c.DefaultSpindleSpeed > 0 {
		s.SpindleSpeed = c.DefaultSpindleSpeed
	}
	if c.DefaultPlungeRate > 0 {
		s.PlungeRate = c.DefaultPlungeRate
	}
	if c.DefaultSafeZ > 0 {
		s.SafeZ = c.DefaultSafeZ
	}
	s.PeckDepth = c.DefaultPeckDepth
}

// AddRecentFile moves path to the front of the recent list, keeping at most
// max entries.
func (c *AppConfig) AddRecentFile(path string, max int) {
	out := []string{path}
	for _, p := range c.RecentFiles {
		if p != path && len(out) < max {
			out = append(out, p)
		}
	}
	c.RecentFiles = out
}
