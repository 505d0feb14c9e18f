package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/DowelMap/internal/model"
)

// FaceDistance returns the distance between the planes of two faces and
// whether they are parallel.
func FaceDistance(a, b model.Frame) (float64, bool) {
	if a.Normal != b.Normal {
		return 0, false
	}
	return math.Abs(a.Plane - b.Plane), true
}

// FaceOverlap returns the intersection of the two faces projected onto the
// plane of a. The faces must be parallel.
func FaceOverlap(a, b model.Frame) model.PlaneRect {
	return a.GlobalRect().Intersect(b.GlobalRect())
}

// DetectConnections finds every touching face pair. Part pairs are visited
// in input order and each pair's 36 face combinations in canonical face
// order, so connection ids are reproducible. seen carries the pairs that
// already have a connection and is updated in place.
func (p *Pipeline) DetectConnections(parts []*model.Part, seen model.ConnectionSet) []*model.Connection {
	var conns []*model.Connection
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			for _, sa := range model.FaceSides {
				fa := parts[i].Frame(sa)
				for _, sb := range model.FaceSides {
					a := model.PartFace{Part: i, Side: sa}
					b := model.PartFace{Part: j, Side: sb}
					if seen.Has(a, b) {
						continue
					}
					fb := parts[j].Frame(sb)
					dist, parallel := FaceDistance(fa, fb)
					if !parallel || dist > p.Settings.ProximityTolerance {
						continue
					}
					overlap := FaceOverlap(fa, fb)
					if overlap.Area() <= p.Settings.MinOverlapArea {
						continue
					}
					seen.Add(a, b)
					p.nextID++
					c := &model.Connection{
						ID:       p.nextID,
						A:        a,
						B:        b,
						Axis:     fa.Normal,
						Distance: model.Round(dist),
						Overlap:  overlap,
					}
					p.Log.Debug().
						Int("id", c.ID).
						Str("a", parts[i].Name+"/"+string(sa)).
						Str("b", parts[j].Name+"/"+string(sb)).
						Float64("area", model.Round(overlap.Area())).
						Msg("connection detected")
					conns = append(conns, c)
				}
			}
		}
	}
	assignLegSlots(parts, conns)
	return conns
}

// assignLegSlots orders the legs attached to each non-leg face by their
// centre along that face's local X. Ids keep detection order; slots are only
// used to place fallback areas.
func assignLegSlots(parts []*model.Part, conns []*model.Connection) {
	type target struct {
		part int
		side model.FaceSide
	}
	groups := map[target][]*model.Connection{}
	var order []target
	for _, c := range conns {
		_, other, ok := legSides(parts, c)
		if !ok {
			continue
		}
		k := target{other.Part, other.Side}
		if _, exists := groups[k]; !exists {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}
	for _, k := range order {
		group := groups[k]
		frame := parts[k.part].Frame(k.side)
		centre := func(c *model.Connection) float64 {
			leg, _, _ := legSides(parts, c)
			return frame.XAxis.Of(parts[leg.Part].Center())
		}
		sort.SliceStable(group, func(i, j int) bool { return centre(group[i]) < centre(group[j]) })
		for slot, c := range group {
			c.LegSlot = slot
			c.LegCount = len(group)
		}
	}
}

// legSides splits a leg-to-non-leg connection into its leg side and the
// other side.
func legSides(parts []*model.Part, c *model.Connection) (leg, other model.PartFace, ok bool) {
	aLeg, bLeg := parts[c.A.Part].IsLeg(), parts[c.B.Part].IsLeg()
	switch {
	case aLeg && !bLeg:
		return c.A, c.B, true
	case bLeg && !aLeg:
		return c.B, c.A, true
	}
	return model.PartFace{}, model.PartFace{}, false
}
