package engine

import "github.com/piwi3910/DowelMap/internal/model"

// MirrorPoint reflects a local point across the horizontal centre line of a
// face of the given height.
func MirrorPoint(height, x, y float64) (float64, float64) {
	return x, height - y
}

// MirrorReinforcement reflects the connection areas of each main face, and
// the holes inside them, onto the opposite main face as reinforcement
// (singer) holes. Mirrored areas and holes carry no connection id. It
// returns the number of holes added.
func (p *Pipeline) MirrorReinforcement(part *model.Part) int {
	added := 0
	for _, side := range []model.FaceSide{model.FaceMain, model.FaceOtherMain} {
		added += p.mirrorFace(part, side, side.Opposite())
	}
	return added
}

func (p *Pipeline) mirrorFace(part *model.Part, from, to model.FaceSide) int {
	s := p.Settings
	src, dst := part.Face(from), part.Face(to)

	var areas []model.ConnectionArea
	for _, a := range src.Areas {
		if a.ConnectionID != 0 {
			areas = append(areas, a)
		}
	}

	added := 0
	for _, a := range areas {
		_, y0 := MirrorPoint(dst.Height, a.XMin, a.YMax)
		_, y1 := MirrorPoint(dst.Height, a.XMin, a.YMin)
		dst.AddArea(model.ConnectionArea{
			Rect:    model.Rect{XMin: a.XMin, YMin: y0, XMax: a.XMax, YMax: y1},
			Fill:    fillSinger,
			Opacity: 0.1,
		}, s.AreaDuplicateTolerance)

		for _, h := range src.Holes {
			if !a.Contains(h.X, h.Y) {
				continue
			}
			x, y := MirrorPoint(dst.Height, h.X, h.Y)
			if dst.HoleNear(x, y, s.SingerTolerance) >= 0 {
				continue
			}
			dst.Holes = append(dst.Holes, model.Hole{
				X:          model.Round(x),
				Y:          model.Round(y),
				Type:       SingerTypeAt(part, to, x, y, s),
				TargetType: h.TargetType,
				Hardware:   append([]string(nil), s.SingerHardware...),
				Depth:      s.SingerDepth,
				Diameter:   s.SingerDiameter,
			})
			added++
		}
	}
	if added > 0 {
		p.Log.Debug().Str("part", part.Name).Str("face", string(to)).Int("holes", added).Msg("reinforcement mirrored")
	}
	return added
}
