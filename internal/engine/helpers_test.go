package engine

import (
	"github.com/piwi3910/DowelMap/internal/model"
)

// boxViews returns the three projections, in design units, of a box given
// by its global mm bounds.
func boxViews(x0, y0, z0, x1, y1, z1 float64) map[string]model.Projection {
	return map[string]model.Projection{
		model.ViewTop:     {X: x0 / 10, Y: y0 / 10, Width: (x1 - x0) / 10, Height: (y1 - y0) / 10},
		model.ViewFrontal: {X: x0 / 10, Y: z0 / 10, Width: (x1 - x0) / 10, Height: (z1 - z0) / 10},
		model.ViewLateral: {X: y0 / 10, Y: z0 / 10, Width: (y1 - y0) / 10, Height: (z1 - z0) / 10},
	}
}

func addBox(doc *model.ViewDocument, name string, x0, y0, z0, x1, y1, z1 float64) {
	for view, p := range boxViews(x0, y0, z0, x1, y1, z1) {
		doc.Add(name, view, p)
	}
}

// legOnPanelDoc is a 200x20x200 leg standing under a 400x300x20 panel. The
// leg's top face touches the panel's main face.
func legOnPanelDoc() model.ViewDocument {
	var doc model.ViewDocument
	addBox(&doc, "perna 1", 100, 140, 0, 300, 160, 200)
	addBox(&doc, "tampo", 0, 0, 200, 400, 300, 220)
	return doc
}

// uprightOnBaseDoc is an upright board standing on the other_main face of a
// flat base board. Neither part is a leg.
func uprightOnBaseDoc() model.ViewDocument {
	var doc model.ViewDocument
	addBox(&doc, "base", 0, 0, 0, 400, 300, 20)
	addBox(&doc, "divider", 0, 0, 20, 400, 20, 320)
	return doc
}

func mustBuild(name string, views map[string]model.Projection) *model.Part {
	p, err := BuildPart(name, views, 10)
	if err != nil {
		panic(err)
	}
	return p
}

func buildAll(pl *Pipeline, doc model.ViewDocument) []*model.Part {
	parts, _ := pl.BuildParts(doc)
	return parts
}

func holesWithID(part *model.Part, id int) int {
	n := 0
	for _, f := range part.Faces {
		n += len(f.HolesFor(id))
	}
	return n
}
