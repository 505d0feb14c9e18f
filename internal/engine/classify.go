package engine

import (
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
)

// Position is the structural class of a point on a face.
type Position int

const (
	PositionFaceCentral Position = iota
	PositionCorner
	PositionEdgeCentral
)

func (p Position) String() string {
	switch p {
	case PositionCorner:
		return "corner"
	case PositionEdgeCentral:
		return "edge_central"
	default:
		return "face_central"
	}
}

// ClassifyPosition compares (x, y) with the four lines inset by ft from the
// face edges. Near an inset line in both directions is a corner, near one is
// an edge centre, near none is the face centre.
func ClassifyPosition(x, y, w, h, ft, tol float64) Position {
	nearX := math.Abs(x-ft) <= tol || math.Abs(x-(w-ft)) <= tol
	nearY := math.Abs(y-ft) <= tol || math.Abs(y-(h-ft)) <= tol
	switch {
	case nearX && nearY:
		return PositionCorner
	case nearX || nearY:
		return PositionEdgeCentral
	}
	return PositionFaceCentral
}

// HoleTypeAt returns the hole type for a position on a face, prefixed by the
// face group.
func HoleTypeAt(part *model.Part, side model.FaceSide, x, y, tol float64) model.HoleType {
	face := part.Face(side)
	pos := ClassifyPosition(x, y, face.Width, face.Height, part.HalfThickness, tol)
	flap := side.IsMain()
	switch {
	case pos == PositionCorner && flap:
		return model.HoleFlapCorner
	case pos == PositionCorner:
		return model.HoleTopCorner
	case pos == PositionEdgeCentral && flap:
		return model.HoleFlapCentral
	case pos == PositionEdgeCentral:
		return model.HoleTopCentral
	}
	return model.HoleFaceCentral
}

// SingerTypeAt returns the reinforcement hole type for a position. On main
// faces a hole near an X inset line is a flap; one far enough from the top
// and bottom edges is central. Thickness faces always get channels.
func SingerTypeAt(part *model.Part, side model.FaceSide, x, y float64, s model.Settings) model.HoleType {
	if !side.IsMain() {
		return model.HoleSingerChannel
	}
	face := part.Face(side)
	ft := part.HalfThickness
	if math.Abs(x-ft) <= s.SingerFlapTolerance || math.Abs(x-(face.Width-ft)) <= s.SingerFlapTolerance {
		return model.HoleSingerFlap
	}
	if y > s.SingerCentralMargin && y < face.Height-s.SingerCentralMargin {
		return model.HoleSingerCentral
	}
	return model.HoleSingerFlap
}
