package engine

import (
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
)

// EnsureConnectionAreas gives every part that takes part in no connection a
// structural area: the whole top face for a leg, two stripes on the main
// face otherwise. Structural areas carry connection id 0.
func (p *Pipeline) EnsureConnectionAreas(parts []*model.Part, conns []*model.Connection) {
	connected := map[int]bool{}
	for _, c := range conns {
		connected[c.A.Part] = true
		connected[c.B.Part] = true
	}
	for i, part := range parts {
		if connected[i] {
			continue
		}
		var rects []model.Rect
		var face *model.Face
		if part.IsLeg() {
			face = part.Face(model.FaceTop)
			rects = []model.Rect{face.Bounds()}
		} else {
			face = part.Face(model.FaceMain)
			rects = StructuralStripes(face.Width, face.Height, p.Settings.StripeWidth, p.Settings.FallbackStripeHeight)
		}
		if len(face.Areas) > 0 {
			continue
		}
		for _, r := range rects {
			face.AddArea(model.ConnectionArea{
				Rect:    r.Inset(p.Settings.AreaMargin),
				Fill:    fillStructural,
				Opacity: 0.05,
			}, p.Settings.AreaDuplicateTolerance)
		}
		p.Log.Warn().Str("part", part.Name).Msg("no connections, structural areas added")
	}
}

// StructuralStripes returns two stripes starting at 10% and 90% of the face
// width, clipped to the face.
func StructuralStripes(w, h, stripe, maxHeight float64) []model.Rect {
	height := math.Min(maxHeight, h)
	var out []model.Rect
	for _, x := range []float64{math.Floor(w * 0.1), math.Floor(w * 0.9)} {
		r := model.Rect{XMin: x, XMax: x + stripe, YMax: height}.Clamp(w, h)
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

// EnsureFaces drills reinforcement holes on both main faces of parts that
// take part in no connection. Their untagged main-face holes have nothing to
// mate with and are replaced. It only applies to assemblies of more than
// EnsureFacesMinParts parts.
func (p *Pipeline) EnsureFaces(parts []*model.Part, target float64) {
	s := p.Settings
	if len(parts) <= s.EnsureFacesMinParts {
		return
	}
	tt := model.FormatTemplate(target)
	for _, part := range parts {
		if part.IsConnected() {
			continue
		}
		ft, l, h := part.HalfThickness, part.Length, part.Height
		positions := []struct {
			x, y float64
			t    model.HoleType
		}{
			{ft + 5, ft + 5, model.HoleSingerFlap},
			{l - ft - 5, ft + 5, model.HoleSingerFlap},
			{l / 2, ft + 5, model.HoleSingerCentral},
			{ft + 5, h - ft - 5, model.HoleSingerChannel},
			{l - ft - 5, h - ft - 5, model.HoleSingerChannel},
		}
		added := 0
		for _, side := range []model.FaceSide{model.FaceMain, model.FaceOtherMain} {
			face := part.Face(side)
			kept := face.Holes[:0]
			for _, hole := range face.Holes {
				if hole.Type.IsSinger() {
					kept = append(kept, hole)
				}
			}
			face.Holes = kept
			for _, pos := range positions {
				_, ok := face.AddHole(model.Hole{
					X:          pos.x,
					Y:          pos.y,
					Type:       pos.t,
					TargetType: tt,
					Hardware:   append([]string(nil), s.ReinforceHardware...),
					Depth:      s.ReinforceDepth,
				}, s.HoleSpacingTolerance)
				if ok {
					added++
				}
			}
		}
		if added > 0 {
			p.Log.Warn().Str("part", part.Name).Int("holes", added).Msg("unconnected part, reinforcement holes added")
		}
	}
}
