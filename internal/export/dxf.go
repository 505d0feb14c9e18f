package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// faceGap is the horizontal spacing between faces in a part drawing.
const faceGap = 20.0

var faceLayerColors = map[model.FaceSide]color.ColorNumber{
	model.FaceMain:      color.Red,
	model.FaceOtherMain: color.Yellow,
	model.FaceTop:       color.Green,
	model.FaceBottom:    color.Cyan,
	model.FaceLeft:      color.Blue,
	model.FaceRight:     color.Magenta,
}

// ExportDXF writes one DXF drawing per part with holes or areas into dir.
// Every face with content is drawn on its own layer, named after the face
// side, laid out left to right in face order: the outline, the connection
// areas and a circle per hole. It returns the written paths.
func ExportDXF(dir string, result model.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var paths []string
	for i, part := range result.Parts {
		if !part.HasContent() {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%02d_%s.dxf", i+1, fileSafe(part.Name)))
		if err := writePartDXF(path, part); err != nil {
			return paths, fmt.Errorf("part %q: %w", part.Name, err)
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no drilled parts to export")
	}
	return paths, nil
}

func writePartDXF(path string, part *model.Part) error {
	d := dxf.NewDrawing()
	offset := 0.0
	for _, f := range part.Faces {
		if f.Empty() {
			continue
		}
		if _, err := d.AddLayer(strings.ToUpper(string(f.Side)), faceLayerColors[f.Side], dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", f.Side, err)
		}
		if err := drawFace(d, f, offset); err != nil {
			return err
		}
		offset += f.Width + faceGap
	}
	return d.SaveAs(path)
}

func drawFace(d *drawing.Drawing, f *model.Face, ox float64) error {
	if _, err := d.LwPolyline(true, rectVertices(ox, model.Rect{XMax: f.Width, YMax: f.Height})...); err != nil {
		return fmt.Errorf("failed to draw %s outline: %w", f.Side, err)
	}
	if _, err := d.Text(string(f.Side), ox, f.Height+5, 0, 4); err != nil {
		return fmt.Errorf("failed to label %s: %w", f.Side, err)
	}
	for _, a := range f.Areas {
		if _, err := d.LwPolyline(true, rectVertices(ox, a.Rect)...); err != nil {
			return fmt.Errorf("failed to draw %s area: %w", f.Side, err)
		}
	}
	for _, h := range f.Holes {
		diameter := h.Diameter
		if diameter <= 0 {
			diameter = defaultDrillDiameter
		}
		if _, err := d.Circle(ox+h.X, h.Y, 0, diameter/2); err != nil {
			return fmt.Errorf("failed to draw %s hole: %w", f.Side, err)
		}
	}
	return nil
}

func rectVertices(ox float64, r model.Rect) [][]float64 {
	return [][]float64{
		{ox + r.XMin, r.YMin},
		{ox + r.XMax, r.YMin},
		{ox + r.XMax, r.YMax},
		{ox + r.XMin, r.YMax},
	}
}

// fileSafe replaces everything but letters and digits with underscores.
func fileSafe(name string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
	if out == "" {
		return "part"
	}
	return out
}
