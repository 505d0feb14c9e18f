package model

import "fmt"

// GCodeProfile configures the drilling program dialect of a CNC controller.
type GCodeProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"` // "mm" or "inches"
	IsBuiltIn   bool   `json:"is_built_in"`

	StartCode    []string `json:"start_code"`
	SpindleStart string   `json:"spindle_start"` // e.g. "M3 S%d"
	SpindleStop  string   `json:"spindle_stop"`
	HomeAll      string   `json:"home_all"`

	AbsoluteMode string `json:"absolute_mode"`
	RapidMove    string `json:"rapid_move"`
	FeedMove     string `json:"feed_move"`
	Dwell        string `json:"dwell"` // pause at hole bottom, e.g. "G4 P%.1f"; empty disables

	EndCode []string `json:"end_code"` // [SafeZ] is replaced by the retract height

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`

	DecimalPlaces int `json:"decimal_places"`
}

// GCodeProfiles are the built-in controller dialects. Generic must stay last.
var GCodeProfiles = []GCodeProfile{
	{
		Name:          "Grbl",
		Description:   "Grbl boring heads and hobby routers",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		HomeAll:       "$H",
		AbsoluteMode:  "G90",
		RapidMove:     "G0",
		FeedMove:      "G1",
		Dwell:         "G4 P%.1f",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "Mach3",
		Description:   "Mach3 CNC control software",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		HomeAll:       "G28 X0 Y0 Z0",
		AbsoluteMode:  "G90",
		RapidMove:     "G0",
		FeedMove:      "G1",
		Dwell:         "G4 P%.1f",
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X0 Y0", "M5", "M30"},
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC (formerly EMC2)",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		HomeAll:       "G28 X0 Y0 Z0",
		AbsoluteMode:  "G90",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		HomeAll:       "G28 X0 Y0 Z0",
		AbsoluteMode:  "G90",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// CustomProfiles holds user-defined profiles loaded from disk.
var CustomProfiles []GCodeProfile

// AllProfiles returns the built-in profiles followed by the custom ones.
func AllProfiles() []GCodeProfile {
	all := make([]GCodeProfile, 0, len(GCodeProfiles)+len(CustomProfiles))
	all = append(all, GCodeProfiles...)
	return append(all, CustomProfiles...)
}

// GetProfile returns a profile by name, or the Generic profile if not found.
func GetProfile(name string) GCodeProfile {
	for _, p := range AllProfiles() {
		if p.Name == name {
			return p
		}
	}
	return GCodeProfiles[len(GCodeProfiles)-1]
}

// GetProfileNames returns the names of all available profiles.
func GetProfileNames() []string {
	var names []string
	for _, p := range AllProfiles() {
		names = append(names, p.Name)
	}
	return names
}

func isBuiltInName(name string) bool {
	for _, p := range GCodeProfiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// NewCustomProfile returns a copy of the Generic profile under a new name.
func NewCustomProfile(name string) GCodeProfile {
	p := GCodeProfiles[len(GCodeProfiles)-1]
	p.Name = name
	p.Description = "Custom profile"
	p.IsBuiltIn = false
	p.StartCode = append([]string(nil), p.StartCode...)
	p.EndCode = append([]string(nil), p.EndCode...)
	return p
}

// AddCustomProfile adds or replaces a custom profile.
func AddCustomProfile(p GCodeProfile) error {
	if isBuiltInName(p.Name) {
		return fmt.Errorf("profile %q is built in", p.Name)
	}
	p.IsBuiltIn = false
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == p.Name {
			CustomProfiles[i] = p
			return nil
		}
	}
	CustomProfiles = append(CustomProfiles, p)
	return nil
}

// RemoveCustomProfile deletes a custom profile by name.
func RemoveCustomProfile(name string) error {
	if isBuiltInName(name) {
		return fmt.Errorf("profile %q is built in", name)
	}
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == name {
			CustomProfiles = append(CustomProfiles[:i], CustomProfiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("profile %q not found", name)
}
