package export

import (
	"testing"

	"github.com/piwi3910/DowelMap/internal/engine"
	"github.com/piwi3910/DowelMap/internal/model"
)

func addBox(doc *model.ViewDocument, name string, x0, y0, z0, x1, y1, z1 float64) {
	doc.Add(name, model.ViewTop, model.Projection{X: x0 / 10, Y: y0 / 10, Width: (x1 - x0) / 10, Height: (y1 - y0) / 10})
	doc.Add(name, model.ViewFrontal, model.Projection{X: x0 / 10, Y: z0 / 10, Width: (x1 - x0) / 10, Height: (z1 - z0) / 10})
	doc.Add(name, model.ViewLateral, model.Projection{X: y0 / 10, Y: z0 / 10, Width: (y1 - y0) / 10, Height: (z1 - z0) / 10})
}

// buildTestResult runs the pipeline on a leg standing under a table top.
func buildTestResult(t *testing.T) model.Result {
	t.Helper()
	var doc model.ViewDocument
	addBox(&doc, "perna 1", 100, 140, 0, 300, 160, 200)
	addBox(&doc, "tampo", 0, 0, 200, 400, 300, 220)

	res, err := engine.New(model.DefaultSettings()).Run(doc)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(res.Parts) != 2 || len(res.Connections) != 1 {
		t.Fatalf("unexpected fixture: %d parts, %d connections", len(res.Parts), len(res.Connections))
	}
	return res
}
