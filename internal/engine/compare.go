package engine

import (
	"slices"

	"github.com/piwi3910/DowelMap/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the pipeline result and summary statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Result         model.Result
	Err            error
	Connections    int
	Holes          int
	ConnectedHoles int
	Areas          int
	Template       float64
}

// CompareScenarios runs the pipeline once per scenario on the same document
// and returns the results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, doc model.ViewDocument) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		res, err := New(scenario.Settings).Run(doc)
		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Result:         res,
			Err:            err,
			Connections:    len(res.Connections),
			Holes:          res.TotalHoles(),
			ConnectedHoles: res.ConnectedHoles(),
			Areas:          res.TotalAreas(),
			Template:       res.Template,
		})
	}
	return results
}

// BuildDefaultScenarios derives what-if alternatives from the current
// settings: the other stage order and a looser and a stricter proximity
// tolerance.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{{Name: "Current Settings", Settings: base}}

	alt := base
	if slices.Equal(base.StageOrder, HolesFirstStageOrder) {
		alt.StageOrder = append([]string(nil), model.DefaultStageOrder...)
		scenarios = append(scenarios, ComparisonScenario{Name: "Areas First", Settings: alt})
	} else {
		alt.StageOrder = append([]string(nil), HolesFirstStageOrder...)
		scenarios = append(scenarios, ComparisonScenario{Name: "Holes First", Settings: alt})
	}

	loose := base
	loose.ProximityTolerance = base.ProximityTolerance * 2
	scenarios = append(scenarios, ComparisonScenario{Name: "Loose Proximity", Settings: loose})

	if base.ProximityTolerance > 1 {
		strict := base
		strict.ProximityTolerance = 1
		scenarios = append(scenarios, ComparisonScenario{Name: "Strict Proximity", Settings: strict})
	}
	return scenarios
}
