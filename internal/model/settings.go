package model

// Settings holds the engine tolerances, hole policies and drilling
// parameters. All lengths are mm.
type Settings struct {
	// Input
	UnitScale float64 `json:"unit_scale"` // design units to mm
	ReOrigin  bool    `json:"re_origin"`  // shift the assembly so its min corner is at 0

	// Detection
	ProximityTolerance float64 `json:"proximity_tolerance"` // max plane distance for touching faces
	MinOverlapArea     float64 `json:"min_overlap_area"`    // mm²

	// Holes
	HoleSpacingTolerance float64 `json:"hole_spacing_tolerance"` // duplicate suppression on one face
	MaxHoleSpacing       float64 `json:"max_hole_spacing"`       // corner distance above which a central hole is added
	MappingTolerance     float64 `json:"mapping_tolerance"`      // duplicate suppression on mapped holes
	SingerTolerance      float64 `json:"singer_tolerance"`       // collision check for reinforcement holes
	ClassifyTolerance    float64 `json:"classify_tolerance"`     // distance to an inset line
	LegMinSpacing        float64 `json:"leg_min_spacing"`
	LegMinInset          float64 `json:"leg_min_inset"`
	LegMinLength         float64 `json:"leg_min_length"`

	// Areas
	AreaMargin             float64 `json:"area_margin"`
	AreaDuplicateTolerance float64 `json:"area_duplicate_tolerance"`
	StripeWidth            float64 `json:"stripe_width"`
	FallbackStripeHeight   float64 `json:"fallback_stripe_height"`
	FallbackRectWidth      float64 `json:"fallback_rect_width"`
	FallbackRectHeight     float64 `json:"fallback_rect_height"`

	// Reinforcement
	SingerFlapTolerance float64 `json:"singer_flap_tolerance"`
	SingerCentralMargin float64 `json:"singer_central_margin"`
	EnsureFacesMinParts int     `json:"ensure_faces_min_parts"`

	// Hardware per hole family
	FlapHardware      []string `json:"flap_hardware"`
	FlapDepth         float64  `json:"flap_depth"`
	FlapDiameter      float64  `json:"flap_diameter"`
	TopHardware       []string `json:"top_hardware"`
	TopDepth          float64  `json:"top_depth"`
	SingerHardware    []string `json:"singer_hardware"`
	SingerDepth       float64  `json:"singer_depth"`
	SingerDiameter    float64  `json:"singer_diameter"`
	ReinforceHardware []string `json:"reinforce_hardware"`
	ReinforceDepth    float64  `json:"reinforce_depth"`

	// Roles
	LegPatterns        []string `json:"leg_patterns"`
	PanelPatterns      []string `json:"panel_patterns"`
	LegMaxDimension    float64  `json:"leg_max_dimension"`
	LegSquareTolerance float64  `json:"leg_square_tolerance"`

	// Templates
	TemplateThicknesses []float64 `json:"template_thicknesses"`
	DefaultTemplate     float64   `json:"default_template"`

	// Pipeline
	StageOrder []string `json:"stage_order"`

	// CNC / GCode settings
	GCodeProfile  string  `json:"gcode_profile"`
	SpindleSpeed  int     `json:"spindle_speed"`  // RPM
	PlungeRate    float64 `json:"plunge_rate"`    // mm/min
	SafeZ         float64 `json:"safe_z"`         // retract height mm
	PeckDepth     float64 `json:"peck_depth"`     // 0 disables pecking
	DrillDiameter float64 `json:"drill_diameter"` // used for holes without a diameter
	DwellTime     float64 `json:"dwell_time"`     // seconds at hole bottom; 0 disables
}

// DefaultStageOrder runs areas before mapping so mapped holes follow the
// connection areas.
var DefaultStageOrder = []string{
	"allocate", "detect", "areas", "fallback_areas", "map",
	"cleanup", "mirror", "ensure_faces", "template",
}

func DefaultSettings() Settings {
	return Settings{
		UnitScale:              10,
		ProximityTolerance:     5,
		MinOverlapArea:         5,
		HoleSpacingTolerance:   8,
		MaxHoleSpacing:         200,
		MappingTolerance:       5,
		SingerTolerance:        8,
		ClassifyTolerance:      2,
		LegMinSpacing:          8,
		LegMinInset:            3,
		LegMinLength:           15,
		AreaMargin:             1,
		AreaDuplicateTolerance: 1,
		StripeWidth:            20,
		FallbackStripeHeight:   200,
		FallbackRectWidth:      50,
		FallbackRectHeight:     20,
		SingerFlapTolerance:    5,
		SingerCentralMargin:    50,
		EnsureFacesMinParts:    3,
		FlapHardware:           []string{HardwareDowelM},
		FlapDepth:              10,
		FlapDiameter:           8,
		TopHardware:            []string{HardwareGlue},
		TopDepth:               20,
		SingerHardware:         []string{HardwareSingerDowel},
		SingerDepth:            30,
		SingerDiameter:         8,
		ReinforceHardware:      []string{HardwareDowelG},
		ReinforceDepth:         40,
		LegPatterns:            []string{"perna", "leg", "pata", "pierna", "support", "suporte"},
		PanelPatterns:          []string{"tampo", "top", "surface", "panel", "tabletop", "mesa", "table"},
		LegMaxDimension:        250,
		LegSquareTolerance:     50,
		TemplateThicknesses:    []float64{17, 20, 25, 30},
		DefaultTemplate:        20,
		StageOrder:             append([]string(nil), DefaultStageOrder...),
		GCodeProfile:           "Generic",
		SpindleSpeed:           18000,
		PlungeRate:             600,
		SafeZ:                  5,
		PeckDepth:              10,
		DrillDiameter:          8,
		DwellTime:              0.2,
	}
}
