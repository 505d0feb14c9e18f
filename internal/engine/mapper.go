package engine

import (
	"github.com/piwi3910/DowelMap/internal/model"
	"gonum.org/v1/gonum/spatial/r2"
)

// MappingMethod records how a source hole position was carried over.
type MappingMethod int

const (
	MappedNone MappingMethod = iota
	MappedRelative
	MappedDirect
	MappedScaled
)

func (m MappingMethod) String() string {
	switch m {
	case MappedRelative:
		return "relative"
	case MappedDirect:
		return "direct"
	case MappedScaled:
		return "scaled"
	default:
		return "none"
	}
}

// sourceSide picks the side whose holes drive the connection: the leg when
// exactly one side is a leg, otherwise a thickness face, otherwise A.
func sourceSide(parts []*model.Part, c *model.Connection) (src, dst model.PartFace) {
	if leg, other, ok := legSides(parts, c); ok {
		return leg, other
	}
	if !c.A.Side.IsMain() {
		return c.A, c.B
	}
	if !c.B.Side.IsMain() {
		return c.B, c.A
	}
	return c.A, c.B
}

// MapConnectionHoles copies the source side's holes of c onto the
// destination face, so both faces end up with the same number of holes
// tagged with c's id. A source hole whose position is already taken by a
// hole of another connection loses its tag instead.
func (p *Pipeline) MapConnectionHoles(parts []*model.Part, c *model.Connection) int {
	src, dst := sourceSide(parts, c)
	srcPart, dstPart := parts[src.Part], parts[dst.Part]
	srcFace, dstFace := srcPart.Face(src.Side), dstPart.Face(dst.Side)

	p.tagSourceHoles(srcPart, src.Side, c)

	claimed := map[int]bool{}
	mapped := 0
	for i := range srcFace.Holes {
		h := &srcFace.Holes[i]
		if h.ConnectionID != c.ID {
			continue
		}
		pos, method := p.mapPosition(srcPart, src.Side, dstPart, dst.Side, c.ID, r2.Vec{X: h.X, Y: h.Y})
		if method == MappedNone {
			h.ConnectionID = 0
			continue
		}
		x, y := model.Round(pos.X), model.Round(pos.Y)
		out := model.Hole{
			X:            x,
			Y:            y,
			Type:         HoleTypeAt(dstPart, dst.Side, x, y, p.Settings.ClassifyTolerance),
			TargetType:   h.TargetType,
			Hardware:     append([]string(nil), h.Hardware...),
			ConnectionID: c.ID,
			Depth:        h.Depth,
			Diameter:     h.Diameter,
		}

		j := dstFace.HoleNear(x, y, p.Settings.MappingTolerance)
		if j < 0 {
			j = sameTypeNear(dstFace, out, p.Settings.HoleSpacingTolerance)
		}
		switch {
		case j < 0:
			j = len(dstFace.Holes)
			dstFace.Holes = append(dstFace.Holes, out)
		case claimed[j] || (dstFace.Holes[j].ConnectionID != 0 && dstFace.Holes[j].ConnectionID != c.ID):
			p.Log.Debug().Int("id", c.ID).Str("part", dstPart.Name).Float64("x", x).Float64("y", y).Msg("mapped position taken, untagging source hole")
			h.ConnectionID = 0
			continue
		default:
			existing := &dstFace.Holes[j]
			existing.ConnectionID = c.ID
			existing.Hardware = out.Hardware
			existing.Depth = out.Depth
			existing.Diameter = out.Diameter
		}
		claimed[j] = true
		mapped++
		p.Log.Debug().
			Int("id", c.ID).
			Str("from", srcPart.Name+"/"+string(src.Side)).
			Str("to", dstPart.Name+"/"+string(dst.Side)).
			Str("method", method.String()).
			Float64("x", x).Float64("y", y).
			Msg("hole mapped")
	}
	c.Advance(model.StateHolesMapped)
	return mapped
}

// tagSourceHoles gives c's id to untagged source holes inside the overlap.
// A leg's top face always drives its connection: when the overlap covers
// none of its holes, every untagged hole is tagged.
func (p *Pipeline) tagSourceHoles(part *model.Part, side model.FaceSide, c *model.Connection) {
	face := part.Face(side)
	if local, ok := RectToLocal(part.Frame(side), c.Overlap); ok {
		for i := range face.Holes {
			h := &face.Holes[i]
			if h.ConnectionID == 0 && local.Contains(h.X, h.Y) {
				h.ConnectionID = c.ID
			}
		}
	}
	if !part.IsLeg() || side != model.FaceTop || len(face.HolesFor(c.ID)) > 0 {
		return
	}
	for i := range face.Holes {
		if face.Holes[i].ConnectionID == 0 {
			face.Holes[i].ConnectionID = c.ID
		}
	}
}

// sameTypeNear returns the index of a hole of h's type within tol of h, or
// -1. Two holes of one type never sit closer than the face spacing.
func sameTypeNear(face *model.Face, h model.Hole, tol float64) int {
	for i, other := range face.Holes {
		if other.Type == h.Type && other.DistanceTo(h.X, h.Y) <= tol {
			return i
		}
	}
	return -1
}

// mapPosition carries a source point to the destination face. It tries the
// relative position inside both connection areas, then the direct geometric
// transform, then scales by the ratio of the face sizes.
func (p *Pipeline) mapPosition(srcPart *model.Part, srcSide model.FaceSide, dstPart *model.Part, dstSide model.FaceSide, id int, pt r2.Vec) (r2.Vec, MappingMethod) {
	srcFrame, dstFrame := srcPart.Frame(srcSide), dstPart.Frame(dstSide)
	dstFace := dstPart.Face(dstSide)
	onFace := func(v r2.Vec) bool { return dstFace.Bounds().Contains(v.X, v.Y) }

	if sa, ok := areaFor(srcPart.Face(srcSide), id, pt); ok {
		if da, ok := areaFor(dstFace, id, r2.Vec{X: -1, Y: -1}); ok {
			sg, dg := RectToGlobal(srcFrame, sa.Rect), RectToGlobal(dstFrame, da.Rect)
			g := ToGlobal(srcFrame, pt)
			g = sg.U.With(g, relative(sg.U.Of(g), sg.UMin, sg.UMax, dg.UMin, dg.UMax))
			g = sg.V.With(g, relative(sg.V.Of(g), sg.VMin, sg.VMax, dg.VMin, dg.VMax))
			if v := ToLocal(dstFrame, g); onFace(v) {
				return v, MappedRelative
			}
		}
	}

	if v := ToLocal(dstFrame, ToGlobal(srcFrame, pt)); onFace(v) {
		return v, MappedDirect
	}

	srcFace := srcPart.Face(srcSide)
	if srcFace.Width <= 0 || srcFace.Height <= 0 {
		return r2.Vec{}, MappedNone
	}
	v := r2.Vec{X: pt.X * dstFace.Width / srcFace.Width, Y: pt.Y * dstFace.Height / srcFace.Height}
	if !onFace(v) {
		return r2.Vec{}, MappedNone
	}
	return v, MappedScaled
}

// areaFor returns the area of face tagged with id, preferring one that
// contains pt.
func areaFor(face *model.Face, id int, pt r2.Vec) (model.ConnectionArea, bool) {
	areas := face.AreasFor(id)
	if len(areas) == 0 {
		return model.ConnectionArea{}, false
	}
	for _, a := range areas {
		if a.Contains(pt.X, pt.Y) {
			return a, true
		}
	}
	return areas[0], true
}

// relative maps v from [a0,a1] onto [b0,b1] keeping its relative position.
// A degenerate source interval maps to the centre of the destination.
func relative(v, a0, a1, b0, b1 float64) float64 {
	if a1-a0 <= 0 {
		return (b0 + b1) / 2
	}
	return b0 + (v-a0)/(a1-a0)*(b1-b0)
}
