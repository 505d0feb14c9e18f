package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/DowelMap/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each part label's QR code.
type LabelInfo struct {
	PartID    string   `json:"id"`
	PartName  string   `json:"name"`
	Role      string   `json:"role"`
	Length    float64  `json:"length_mm"`
	Height    float64  `json:"height_mm"`
	Thickness float64  `json:"thickness_mm"`
	Holes     int      `json:"holes"`
	Faces     []string `json:"faces"`
	Template  string   `json:"template"`
	RunID     string   `json:"run"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per part with
// holes or areas. Each label shows the part name, its dimensions and the
// faces to drill, next to a QR code encoding the same data as JSON. Labels
// are laid out on a standard label sheet format (Avery 5160 / 3 columns x
// 10 rows on US Letter).
func ExportLabels(path string, result model.Result) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no drilled parts to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PartName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := "qr_" + info.PartID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Part label (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate label if too long
	partLabel := info.PartName
	if pdf.GetStringWidth(partLabel) > textW {
		for len(partLabel) > 0 && pdf.GetStringWidth(partLabel+"...") > textW {
			partLabel = partLabel[:len(partLabel)-1]
		}
		partLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, partLabel, "", 1, "L", false, 0, "")

	// Dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%g x %g x %g mm", info.Length, info.Height, info.Thickness)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Hole count and template
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	holeInfo := fmt.Sprintf("%d holes, template %s mm", info.Holes, info.Template)
	pdf.CellFormat(textW, 3, holeInfo, "", 1, "L", false, 0, "")

	// Faces to drill
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.SetTextColor(150, 100, 0)
	pdf.CellFormat(textW, 3, strings.Join(info.Faces, ", "), "", 0, "L", false, 0, "")

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information for every part with holes
// or areas.
func CollectLabelInfos(result model.Result) []LabelInfo {
	var labels []LabelInfo
	for _, p := range result.Parts {
		if !p.HasContent() {
			continue
		}
		var faces []string
		for _, f := range p.Faces {
			if !f.Empty() {
				faces = append(faces, string(f.Side))
			}
		}
		labels = append(labels, LabelInfo{
			PartID:    p.ID,
			PartName:  p.Name,
			Role:      p.Role.String(),
			Length:    p.Length,
			Height:    p.Height,
			Thickness: p.Thickness,
			Holes:     p.HoleCount(),
			Faces:     faces,
			Template:  model.FormatTemplate(result.Template),
			RunID:     result.RunID,
		})
	}
	return labels
}
