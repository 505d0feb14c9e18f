package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/DowelMap/internal/model"
)

// rgb represents an RGB color.
type rgb struct {
	R, G, B int
}

// holeColors gives each hole family a distinct color on the drilling sheet.
var holeColors = map[model.HoleType]rgb{
	model.HoleFlapCorner:    {R: 33, G: 150, B: 243}, // blue
	model.HoleFlapCentral:   {R: 0, G: 188, B: 212},  // cyan
	model.HoleTopCorner:     {R: 76, G: 175, B: 80},  // green
	model.HoleTopCentral:    {R: 139, G: 195, B: 74}, // light green
	model.HoleFaceCentral:   {R: 255, G: 152, B: 0},  // orange
	model.HoleSingerFlap:    {R: 156, G: 39, B: 176}, // purple
	model.HoleSingerCentral: {R: 233, G: 30, B: 99},  // pink
	model.HoleSingerChannel: {R: 121, G: 85, B: 72},  // brown
}

var areaColors = map[string]rgb{
	"black": {R: 60, G: 60, B: 60},
	"gray":  {R: 150, G: 150, B: 150},
	"blue":  {R: 33, G: 150, B: 243},
}

func holeColor(t model.HoleType) rgb {
	if c, ok := holeColors[t]; ok {
		return c
	}
	return rgb{R: 244, G: 67, B: 54}
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	faceCols     = 3
	faceRows     = 2
	captionH     = 5.0
	cellGap      = 6.0

	defaultDrillDiameter = 8.0
)

// ExportPDF generates a drilling sheet document. Each part with holes or
// areas gets its own page showing its six faces, followed by a summary page
// with the connection table.
func ExportPDF(path string, result model.Result) error {
	var parts []*model.Part
	for _, p := range result.Parts {
		if p.HasContent() {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fmt.Errorf("no drilled parts to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, part := range parts {
		pdf.AddPage()
		renderPartPage(pdf, part, result.Template, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderPartPage draws the six faces of a part on the current page.
func renderPartPage(pdf *fpdf.Fpdf, part *model.Part, template float64, partNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Part %d: %s (%s x %s x %s mm)", partNum, part.Name,
		formatMM(part.Length), formatMM(part.Height), formatMM(part.Thickness))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	areas, connected := 0, 0
	for _, f := range part.Faces {
		areas += len(f.Areas)
		for _, h := range f.Holes {
			if h.ConnectionID != 0 {
				connected++
			}
		}
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Role: %s | Holes: %d | Connected: %d | Areas: %d | Template: %s mm",
		part.Role, part.HoleCount(), connected, areas, model.FormatTemplate(template))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	cellW := (drawWidth - cellGap*(faceCols-1)) / faceCols
	cellH := (drawHeight-cellGap*(faceRows-1))/faceRows - captionH

	// One scale for the whole page keeps the faces comparable.
	scale := math.Inf(1)
	for _, f := range part.Faces {
		scale = math.Min(scale, math.Min(cellW/f.Width, cellH/f.Height))
	}

	for i, f := range part.Faces {
		col, row := i%faceCols, i/faceCols
		cellX := marginLeft + float64(col)*(cellW+cellGap)
		cellY := drawAreaTop + float64(row)*(cellH+captionH+cellGap)
		renderFace(pdf, f, scale, cellX, cellY, cellW)
	}

	drawHoleLegend(pdf, pageHeight-marginBottom-legendHeight+4)
}

// renderFace draws one face: the caption, the outline, the areas and the
// holes. Face-local y grows upwards.
func renderFace(pdf *fpdf.Fpdf, f *model.Face, scale, cellX, cellY, cellW float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(cellX, cellY)
	caption := fmt.Sprintf("%s  %s x %s  (%d holes)", f.Side, formatMM(f.Width), formatMM(f.Height), len(f.Holes))
	pdf.CellFormat(cellW, captionH, caption, "", 0, "L", false, 0, "")

	fw, fh := f.Width*scale, f.Height*scale
	ox := cellX + (cellW-fw)/2
	oy := cellY + captionH
	toPage := func(x, y float64) (float64, float64) {
		return ox + x*scale, oy + (f.Height-y)*scale
	}

	// Face background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(ox, oy, fw, fh, "FD")

	for _, a := range f.Areas {
		c, ok := areaColors[a.Fill]
		if !ok {
			c = areaColors["black"]
		}
		x, y := toPage(a.XMin, a.YMax)
		pdf.SetAlpha(0.35, "Normal")
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Rect(x, y, a.Width()*scale, a.Height()*scale, "F")
		pdf.SetAlpha(1, "Normal")
		pdf.SetDrawColor(c.R, c.G, c.B)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, a.Width()*scale, a.Height()*scale, "D")
	}

	pdf.SetFont("Helvetica", "", 5)
	for _, h := range f.Holes {
		c := holeColor(h.Type)
		d := h.Diameter
		if d <= 0 {
			d = defaultDrillDiameter
		}
		r := math.Max(d/2*scale, 0.6)
		x, y := toPage(h.X, h.Y)
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.1)
		pdf.Circle(x, y, r, "FD")
		if h.ConnectionID != 0 {
			pdf.SetXY(x+r, y-r-2)
			pdf.CellFormat(6, 2, fmt.Sprintf("%d", h.ConnectionID), "", 0, "L", false, 0, "")
		}
	}
}

// drawHoleLegend renders the hole type colors at the bottom of a part page.
func drawHoleLegend(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	x := marginLeft
	for _, t := range []model.HoleType{
		model.HoleFlapCorner, model.HoleFlapCentral, model.HoleTopCorner, model.HoleTopCentral,
		model.HoleFaceCentral, model.HoleSingerFlap, model.HoleSingerCentral, model.HoleSingerChannel,
	} {
		c := holeColor(t)
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Circle(x+1.5, y+2, 1.5, "F")
		label := string(t)
		w := pdf.GetStringWidth(label) + 2
		pdf.SetXY(x+4, y)
		pdf.CellFormat(w, 4, label, "", 0, "L", false, 0, "")
		x += w + 8
	}
}

// renderSummaryPage draws the final page with overall statistics and the
// connection table.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Drilling Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Parts", fmt.Sprintf("%d", len(result.Parts))},
		{"Connections", fmt.Sprintf("%d", len(result.Connections))},
		{"Holes", fmt.Sprintf("%d", result.TotalHoles())},
		{"Connected Holes", fmt.Sprintf("%d", result.ConnectedHoles())},
		{"Connection Areas", fmt.Sprintf("%d", result.TotalAreas())},
		{"Template", model.FormatTemplate(result.Template) + " mm"},
		{"Run", result.RunID},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(100, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(result.Dropped) > 0 {
		y += 3
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Parts without all three views", "", 0, "L", false, 0, "")
		y += 8
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, name := range result.Dropped {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+name, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Connections", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 55, 30, 55, 30, 15, 35, 32}
	headers := []string{"ID", "Part A", "Face A", "Part B", "Face B", "Axis", "Overlap (mm2)", "State"}
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	for i, c := range result.Connections {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
			drawHeader()
		}
		rowData := []string{
			fmt.Sprintf("%d", c.ID),
			partName(result, c.A.Part),
			string(c.A.Side),
			partName(result, c.B.Part),
			string(c.B.Side),
			c.Axis.String(),
			fmt.Sprintf("%.0f", c.Overlap.Area()),
			c.State.String(),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by DowelMap - Furniture Drilling Planner", "", 0, "C", false, 0, "")
}

func partName(result model.Result, i int) string {
	if i < 0 || i >= len(result.Parts) {
		return "?"
	}
	return result.Parts[i].Name
}

// formatMM prints a dimension without a trailing ".0".
func formatMM(v float64) string {
	return model.FormatTemplate(v)
}
