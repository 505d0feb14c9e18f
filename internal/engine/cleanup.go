package engine

import "github.com/piwi3910/DowelMap/internal/model"

// CleanupHoles removes holes that have no connection id, are not of a
// protected systematic type and lie outside every area of their face. It
// returns the number of holes removed.
func (p *Pipeline) CleanupHoles(parts []*model.Part) int {
	removed := 0
	for _, part := range parts {
		for _, face := range part.Faces {
			kept := face.Holes[:0]
			for _, h := range face.Holes {
				if h.ConnectionID == 0 && !h.Type.IsProtected() && !face.InAnyArea(h.X, h.Y) {
					removed++
					continue
				}
				kept = append(kept, h)
			}
			face.Holes = kept
		}
	}
	if removed > 0 {
		p.Log.Debug().Int("holes", removed).Msg("orphan holes removed")
	}
	return removed
}
