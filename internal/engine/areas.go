package engine

import (
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
)

const (
	fillConnection = "black"
	fillSinger     = "gray"
	fillStructural = "blue"
)

// areaEligible reports whether a face may receive connection areas: the top
// face of a leg, or a main face of any other part.
func areaEligible(part *model.Part, side model.FaceSide) bool {
	if part.IsLeg() {
		return side == model.FaceTop
	}
	return side.IsMain()
}

// HoleAlignedArea returns a stripe covering the holes tagged with id, padded
// by half the stripe width along X and spanning the full face height. It
// returns false when the face has no such holes.
func HoleAlignedArea(face *model.Face, id int, stripe float64) (model.Rect, bool) {
	idx := face.HolesFor(id)
	if len(idx) == 0 {
		return model.Rect{}, false
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, i := range idx {
		minX = math.Min(minX, face.Holes[i].X)
		maxX = math.Max(maxX, face.Holes[i].X)
	}
	r := model.Rect{XMin: minX - stripe/2, XMax: maxX + stripe/2, YMax: face.Height}
	return r.Clamp(face.Width, face.Height), true
}

// limitToOverlap narrows a full-height stripe to the rows of the overlap,
// widened so every hole of id keeps half a stripe to the border. Stripes of
// parts sharing a column of the face then stay apart.
func limitToOverlap(r, overlap model.Rect, face *model.Face, id int, stripe float64) model.Rect {
	r.YMin, r.YMax = overlap.YMin, overlap.YMax
	for _, i := range face.HolesFor(id) {
		r.YMin = math.Min(r.YMin, face.Holes[i].Y-stripe/2)
		r.YMax = math.Max(r.YMax, face.Holes[i].Y+stripe/2)
	}
	return r.Clamp(face.Width, face.Height)
}

// BuildAreas creates the connection area on each eligible side of c. A side
// whose area cannot be created is logged and skipped; the connection still
// advances.
func (p *Pipeline) BuildAreas(parts []*model.Part, c *model.Connection) {
	for _, pf := range []model.PartFace{c.A, c.B} {
		part := parts[pf.Part]
		if !areaEligible(part, pf.Side) {
			continue
		}
		rect := p.areaRect(parts, part, pf, c)
		area := model.ConnectionArea{
			Rect:         rect.Inset(p.Settings.AreaMargin),
			Fill:         fillConnection,
			Opacity:      0.05,
			ConnectionID: c.ID,
		}
		if !part.Face(pf.Side).AddArea(area, p.Settings.AreaDuplicateTolerance) {
			p.Log.Debug().Int("id", c.ID).Str("part", part.Name).Str("face", string(pf.Side)).Msg("connection area not added")
		}
	}
	c.Advance(model.StateAreaCreated)
}

func (p *Pipeline) areaRect(parts []*model.Part, part *model.Part, pf model.PartFace, c *model.Connection) model.Rect {
	face := part.Face(pf.Side)
	frame := part.Frame(pf.Side)
	local, onFace := RectToLocal(frame, c.Overlap)
	if r, ok := HoleAlignedArea(face, c.ID, p.Settings.StripeWidth); ok {
		if onFace {
			r = limitToOverlap(r, local, face, c.ID, p.Settings.StripeWidth)
		}
		return r
	}
	if onFace {
		return local
	}
	if _, other, isLeg := legSides(parts, c); isLeg && other == pf && c.LegCount > 0 {
		return SlotRect(frame, c.LegSlot, c.LegCount, p.Settings.FallbackRectWidth, p.Settings.FallbackRectHeight)
	}
	p.Log.Warn().Int("id", c.ID).Str("part", part.Name).Str("face", string(pf.Side)).Msg("overlap off face, using fallback area")
	return FallbackRect(frame, p.Settings.FallbackRectWidth, p.Settings.FallbackRectHeight)
}
