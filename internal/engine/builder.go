package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/DowelMap/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// BuildPart reconstructs an oriented box from the top, frontal and lateral
// projections of a part. Projection values are multiplied by scale and
// rounded. Extents: X from the top width, Y from the top height (lateral
// width when the top view is flat), Z from the frontal height.
func BuildPart(name string, views map[string]model.Projection, scale float64) (*model.Part, error) {
	top, ok := views[model.ViewTop]
	if !ok {
		return nil, fmt.Errorf("part %q: %w %s", name, model.ErrMissingView, model.ViewTop)
	}
	frontal, ok := views[model.ViewFrontal]
	if !ok {
		return nil, fmt.Errorf("part %q: %w %s", name, model.ErrMissingView, model.ViewFrontal)
	}
	lateral, ok := views[model.ViewLateral]
	if !ok {
		return nil, fmt.Errorf("part %q: %w %s", name, model.ErrMissingView, model.ViewLateral)
	}

	mm := func(v float64) float64 { return model.Round(v * scale) }

	depth := top.Height
	if depth <= 0 {
		depth = lateral.Width
	}
	extent := r3.Vec{X: mm(top.Width), Y: mm(depth), Z: mm(frontal.Height)}
	if extent.X <= 0 || extent.Y <= 0 || extent.Z <= 0 {
		return nil, fmt.Errorf("part %q: %w: %v", name, model.ErrDegenerateBox, extent)
	}
	pos := r3.Vec{X: mm(top.X), Y: mm(top.Y), Z: mm(frontal.Y)}

	// Ties keep this order, so the vertical axis wins.
	axes := []model.Axis{model.AxisZ, model.AxisX, model.AxisY}
	sort.SliceStable(axes, func(i, j int) bool {
		return axes[i].Of(extent) > axes[j].Of(extent)
	})
	heightAxis, lengthAxis, thicknessAxis := axes[0], axes[1], axes[2]

	return model.NewPart(name, pos,
		lengthAxis.Of(extent), heightAxis.Of(extent), thicknessAxis.Of(extent),
		lengthAxis, heightAxis, thicknessAxis), nil
}

// BuildParts builds every part of the document in order. Parts that cannot
// be built are skipped and reported by name.
func (p *Pipeline) BuildParts(doc model.ViewDocument) ([]*model.Part, []string) {
	var parts []*model.Part
	var dropped []string
	for _, pv := range doc.Parts {
		part, err := BuildPart(pv.Name, pv.Views, p.Settings.UnitScale)
		if err != nil {
			p.Log.Warn().Err(err).Str("part", pv.Name).Msg("skipping part")
			dropped = append(dropped, pv.Name)
			continue
		}
		part.Role = p.Classifier.Classify(part)
		p.Log.Debug().
			Str("part", part.Name).
			Str("role", part.Role.String()).
			Float64("length", part.Length).
			Float64("height", part.Height).
			Float64("thickness", part.Thickness).
			Msg("built part")
		parts = append(parts, part)
	}
	return parts, dropped
}

// reOrigin shifts all parts so that the assembly's min corner sits at the
// origin.
func reOrigin(parts []*model.Part) {
	if len(parts) == 0 {
		return
	}
	origin := parts[0].Position
	for _, part := range parts[1:] {
		origin.X = min(origin.X, part.Position.X)
		origin.Y = min(origin.Y, part.Position.Y)
		origin.Z = min(origin.Z, part.Position.Z)
	}
	for _, part := range parts {
		part.Shift(r3.Scale(-1, origin))
	}
}
