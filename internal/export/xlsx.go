package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the hole schedule workbook.
const (
	SheetHoles       = "Holes"
	SheetConnections = "Connections"
	SheetParts       = "Parts"
)

// ExportXLSX writes a hole schedule workbook: one row per hole, plus a
// connection table and a part list.
func ExportXLSX(path string, result model.Result) error {
	if len(result.Parts) == 0 {
		return fmt.Errorf("no parts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetHoles); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SheetConnections, SheetParts} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	holes := [][]interface{}{{"Part", "Face", "X", "Y", "Type", "Target", "Hardware", "Connection", "Depth", "Diameter"}}
	for _, part := range result.Parts {
		for _, face := range part.Faces {
			for _, h := range face.Holes {
				holes = append(holes, []interface{}{
					part.Name, string(face.Side), h.X, h.Y, string(h.Type), h.TargetType,
					strings.Join(h.Hardware, ", "), h.ConnectionID, h.Depth, h.Diameter,
				})
			}
		}
	}

	conns := [][]interface{}{{"ID", "Part A", "Face A", "Part B", "Face B", "Axis", "Distance", "Overlap", "State"}}
	for _, c := range result.Connections {
		conns = append(conns, []interface{}{
			c.ID, partName(result, c.A.Part), string(c.A.Side), partName(result, c.B.Part), string(c.B.Side),
			c.Axis.String(), c.Distance, c.Overlap.Area(), c.State.String(),
		})
	}

	parts := [][]interface{}{{"Name", "Role", "Length", "Height", "Thickness", "Holes", "Areas"}}
	for _, p := range result.Parts {
		areas := 0
		for _, face := range p.Faces {
			areas += len(face.Areas)
		}
		parts = append(parts, []interface{}{p.Name, p.Role.String(), p.Length, p.Height, p.Thickness, p.HoleCount(), areas})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{SheetHoles, holes},
		{SheetConnections, conns},
		{SheetParts, parts},
	} {
		if err := writeRows(f, sheet.name, sheet.rows, header); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}
