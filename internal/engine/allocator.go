package engine

import (
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
)

// AllocateSystematic places the standard holes of a part. Legs get one or
// two glue holes on their top face. Every other part gets four corner holes
// per face, inset by half the thickness, plus a central hole on each edge
// whose corners are more than MaxHoleSpacing apart. target is the
// provisional template thickness written to every hole.
func (p *Pipeline) AllocateSystematic(part *model.Part, target float64) {
	tt := model.FormatTemplate(target)
	if part.IsLeg() {
		p.allocateLeg(part, tt)
		return
	}
	for _, face := range part.Faces {
		p.allocateFace(part, face, tt)
	}
}

func (p *Pipeline) allocateLeg(part *model.Part, tt string) {
	s := p.Settings
	face := part.Face(model.FaceTop)
	l, ft := face.Width, part.HalfThickness

	var xs []float64
	switch {
	case l >= 2*ft+s.LegMinSpacing:
		xs = []float64{ft, l - ft}
	case l >= s.LegMinLength:
		x1 := math.Max(ft, s.LegMinInset)
		x2 := math.Min(l-ft, l-s.LegMinInset)
		if x2-x1 >= s.LegMinSpacing {
			xs = []float64{x1, x2}
		} else {
			xs = []float64{l / 2}
		}
	default:
		xs = []float64{l / 2}
	}
	for _, x := range xs {
		face.AddHole(p.topHole(x, ft, model.HoleTopCorner, tt), s.HoleSpacingTolerance)
	}
}

func (p *Pipeline) allocateFace(part *model.Part, face *model.Face, tt string) {
	ft := part.HalfThickness
	w, h := face.Width, face.Height

	type pt struct{ x, y float64 }
	bl, tl := pt{ft, ft}, pt{ft, h - ft}
	br, tr := pt{w - ft, ft}, pt{w - ft, h - ft}

	corner, central := model.HoleTopCorner, model.HoleTopCentral
	if face.Side.IsMain() {
		corner, central = model.HoleFlapCorner, model.HoleFlapCentral
	}
	for _, c := range []pt{bl, tl, br, tr} {
		face.AddHole(p.systematicHole(face.Side, c.x, c.y, corner, tt), p.Settings.HoleSpacingTolerance)
	}
	for _, edge := range [][2]pt{{bl, br}, {tl, tr}, {bl, tl}, {br, tr}} {
		a, b := edge[0], edge[1]
		if math.Hypot(b.x-a.x, b.y-a.y) <= p.Settings.MaxHoleSpacing {
			continue
		}
		face.AddHole(p.systematicHole(face.Side, (a.x+b.x)/2, (a.y+b.y)/2, central, tt), p.Settings.HoleSpacingTolerance)
	}
}

func (p *Pipeline) systematicHole(side model.FaceSide, x, y float64, t model.HoleType, tt string) model.Hole {
	if side.IsMain() {
		return p.flapHole(x, y, t, tt)
	}
	return p.topHole(x, y, t, tt)
}

func (p *Pipeline) flapHole(x, y float64, t model.HoleType, tt string) model.Hole {
	return model.Hole{
		X: x, Y: y, Type: t, TargetType: tt,
		Hardware: append([]string(nil), p.Settings.FlapHardware...),
		Depth:    p.Settings.FlapDepth,
		Diameter: p.Settings.FlapDiameter,
	}
}

func (p *Pipeline) topHole(x, y float64, t model.HoleType, tt string) model.Hole {
	return model.Hole{
		X: x, Y: y, Type: t, TargetType: tt,
		Hardware: append([]string(nil), p.Settings.TopHardware...),
		Depth:    p.Settings.TopDepth,
	}
}
