package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
	"github.com/yofu/dxf/table"
	"gonum.org/v1/gonum/spatial/r2"
)

// segment represents a line segment between two points, used for chaining
// disconnected LINE entities into closed outlines.
type segment struct {
	start r2.Vec
	end   r2.Vec
}

// outline is the bounding box of one closed shape on a layer.
type outline struct {
	layer    string
	min, max r2.Vec
}

func (o outline) contains(p r2.Vec) bool {
	return p.X >= o.min.X && p.X <= o.max.X && p.Y >= o.min.Y && p.Y <= o.max.Y
}

type label struct {
	layer string
	text  string
	at    r2.Vec
}

func layerName(l *table.Layer) string {
	if l == nil {
		return ""
	}
	return l.Name()
}

// ImportDXF imports projections from a DXF drawing. Each layer is a view.
// Every closed shape on a layer (LWPOLYLINE, or a chain of LINEs) is the
// projection of one part, named by the TEXT entity placed inside it.
// Coordinates are read in design units, like the JSON export.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var labels []label
	segments := map[string][]segment{}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			pts := make([]r2.Vec, len(e.Vertices))
			for i, v := range e.Vertices {
				pts[i] = r2.Vec{X: v[0], Y: v[1]}
			}
			outlines = append(outlines, boundsOf(layerName(e.Layer()), pts))

		case *entity.Line:
			layer := layerName(e.Layer())
			segments[layer] = append(segments[layer], segment{
				start: r2.Vec{X: e.Start[0], Y: e.Start[1]},
				end:   r2.Vec{X: e.End[0], Y: e.End[1]},
			})

		case *entity.Text:
			labels = append(labels, label{
				layer: layerName(e.Layer()),
				text:  e.Value,
				at:    r2.Vec{X: e.Coord1[0], Y: e.Coord1[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	layers := make([]string, 0, len(segments))
	for layer := range segments {
		layers = append(layers, layer)
	}
	sort.Strings(layers)
	for _, layer := range layers {
		for _, chain := range chainSegments(segments[layer], 0.01) {
			outlines = append(outlines, boundsOf(layer, chain))
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	unknown := map[string]bool{}
	for _, o := range outlines {
		view := model.NormalizeViewName(o.layer)
		if view == "" {
			if !unknown[o.layer] {
				unknown[o.layer] = true
				result.Warnings = append(result.Warnings, fmt.Sprintf("Layer '%s': Unknown view, skipping", o.layer))
			}
			continue
		}
		w, h := o.max.X-o.min.X, o.max.Y-o.min.Y
		if w < 0.001 || h < 0.001 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Layer '%s': Skipped degenerate shape (%.2f x %.2f)", o.layer, w, h))
			continue
		}
		name := ""
		for _, l := range labels {
			if l.layer == o.layer && o.contains(l.at) {
				name = l.text
				break
			}
		}
		if name == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Layer '%s': Shape at (%.1f, %.1f) has no name", o.layer, o.min.X, o.min.Y))
			continue
		}
		result.Document.Add(name, view, model.Projection{X: o.min.X, Y: o.min.Y, Width: w, Height: h})
	}

	return result
}

func boundsOf(layer string, pts []r2.Vec) outline {
	o := outline{layer: layer, min: pts[0], max: pts[0]}
	for _, p := range pts[1:] {
		o.min.X = math.Min(o.min.X, p.X)
		o.min.Y = math.Min(o.min.Y, p.Y)
		o.max.X = math.Max(o.max.X, p.X)
		o.max.Y = math.Max(o.max.Y, p.Y)
	}
	return o
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them
// connected. Open chains are dropped.
func chainSegments(segs []segment, tolerance float64) [][]r2.Vec {
	used := make([]bool, len(segs))
	var outlines [][]r2.Vec

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []r2.Vec{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b r2.Vec, tolerance float64) bool {
	return r2.Norm(r2.Sub(a, b)) <= tolerance
}
