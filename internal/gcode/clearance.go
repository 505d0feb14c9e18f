package gcode

import (
	"fmt"
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
)

// ClearanceIssue describes a hole whose drill circle leaves its face or
// cuts into a neighbouring hole.
type ClearanceIssue struct {
	Part  string
	Side  model.FaceSide
	Hole  int // index into the face's holes
	Other int // index of the conflicting hole, -1 for the face edge
	X, Y  float64
	// Clearance is the remaining wall in mm; negative means the drill
	// breaks through.
	Clearance float64
}

// CheckHoleClearance analyzes every drilled face of the part. A hole is
// reported when its drill circle is closer than MinWall to a face edge,
// or to another hole's drill circle. Each pair of holes is reported once.
func CheckHoleClearance(part *model.Part, settings model.Settings) []ClearanceIssue {
	var issues []ClearanceIssue

	for _, face := range part.Faces {
		for i, h := range face.Holes {
			r := drillRadius(h, settings)

			edge := edgeDistance(h.X, h.Y, face.Width, face.Height) - r
			if edge < MinWall {
				issues = append(issues, ClearanceIssue{
					Part:      part.Name,
					Side:      face.Side,
					Hole:      i,
					Other:     -1,
					X:         h.X,
					Y:         h.Y,
					Clearance: edge,
				})
			}

			for j := i + 1; j < len(face.Holes); j++ {
				o := face.Holes[j]
				gap := h.DistanceTo(o.X, o.Y) - r - drillRadius(o, settings)
				if gap < MinWall {
					issues = append(issues, ClearanceIssue{
						Part:      part.Name,
						Side:      face.Side,
						Hole:      i,
						Other:     j,
						X:         h.X,
						Y:         h.Y,
						Clearance: gap,
					})
				}
			}
		}
	}

	return issues
}

// MinWall is the thinnest wall left between a hole and its neighbours.
const MinWall = 1.0

func drillRadius(h model.Hole, settings model.Settings) float64 {
	if h.Diameter > 0 {
		return h.Diameter / 2
	}
	return settings.DrillDiameter / 2
}

// edgeDistance computes the distance from a point inside a w x h face to
// its nearest edge. Points outside return a negative distance.
func edgeDistance(x, y, w, h float64) float64 {
	return math.Min(math.Min(x, w-x), math.Min(y, h-y))
}

// FormatClearanceWarnings produces human-readable warning messages from
// clearance issues.
func FormatClearanceWarnings(issues []ClearanceIssue) []string {
	var warnings []string
	for _, c := range issues {
		target := "the face edge"
		if c.Other >= 0 {
			target = fmt.Sprintf("hole %d", c.Other+1)
		}
		verb := "leaves %.1f mm to"
		if c.Clearance < 0 {
			verb = "overlaps by %.1f mm with"
		}
		msg := fmt.Sprintf("Part %q face %s: hole %d at (%.0f, %.0f) "+verb+" %s",
			c.Part, c.Side, c.Hole+1, c.X, c.Y, math.Abs(c.Clearance), target)
		warnings = append(warnings, msg)
	}
	return warnings
}
