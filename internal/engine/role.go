package engine

import (
	"math"
	"strings"

	"github.com/piwi3910/DowelMap/internal/model"
)

// Classifier resolves the structural role of a part once, after it is built.
type Classifier interface {
	Classify(p *model.Part) model.Role
}

// PatternClassifier matches part names against leg and panel patterns and
// falls back to a dimensional heuristic: small, roughly square parts are
// legs.
type PatternClassifier struct {
	LegPatterns        []string
	PanelPatterns      []string
	LegMaxDimension    float64
	LegSquareTolerance float64
}

// NewPatternClassifier builds a classifier from the role settings.
func NewPatternClassifier(s model.Settings) PatternClassifier {
	return PatternClassifier{
		LegPatterns:        s.LegPatterns,
		PanelPatterns:      s.PanelPatterns,
		LegMaxDimension:    s.LegMaxDimension,
		LegSquareTolerance: s.LegSquareTolerance,
	}
}

// Classify returns RoleLeg, RolePanel, or RoleGeneric for parts that match
// no name pattern and fail the leg heuristic.
func (c PatternClassifier) Classify(p *model.Part) model.Role {
	name := strings.ToLower(p.Name)
	for _, pat := range c.LegPatterns {
		if strings.Contains(name, pat) {
			return model.RoleLeg
		}
	}
	for _, pat := range c.PanelPatterns {
		if strings.Contains(name, pat) {
			return model.RolePanel
		}
	}
	if math.Abs(p.Length-p.Height) < c.LegSquareTolerance && math.Max(p.Length, p.Height) < c.LegMaxDimension {
		return model.RoleLeg
	}
	return model.RoleGeneric
}
