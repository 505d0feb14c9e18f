// Package importer reads view documents: the top, frontal and lateral
// projections of every part of an assembly. JSON exports from the drawing
// tool, CSV and Excel tables and DXF drawings are supported. CSV import
// detects the delimiter and maps columns by case-insensitive header names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Document model.ViewDocument
	Errors   []string
	Warnings []string
}

// ImportViews imports a view document, choosing the reader by file
// extension.
func ImportViews(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".csv", ".txt":
		return ImportCSV(path)
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".dxf":
		return ImportDXF(path)
	}
	return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type %q", filepath.Ext(path))}}
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	View   int
	Name   int
	X      int
	Y      int
	Width  int
	Height int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"view":   {"view", "vista", "layer", "camada", "projection"},
	"name":   {"name", "nome", "part", "part name", "piece", "peca", "peça", "label"},
	"x":      {"x", "pos x", "pos_x", "posicao x", "position x"},
	"y":      {"y", "pos y", "pos_y", "posicao y", "position y"},
	"width":  {"width", "w", "largura"},
	"height": {"height", "h", "altura"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping view, name, x, y, width, height and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{View: -1, Name: -1, X: -1, Y: -1, Width: -1, Height: -1}
	slots := map[string]*int{
		"view":   &mapping.View,
		"name":   &mapping.Name,
		"x":      &mapping.X,
		"y":      &mapping.Y,
		"width":  &mapping.Width,
		"height": &mapping.Height,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if *slots[role] == -1 {
					*slots[role] = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{View: 0, Name: 1, X: 2, Y: 3, Width: 4, Height: 5}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseNumber(row []string, idx int, what, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, what)
	}
	// Decimal commas are common in exports from Portuguese locales.
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, what, s)
	}
	return v, ""
}

// parseRow extracts one projection from a row using the given column
// mapping. It returns the normalised view, the part name, the projection,
// an error message and a warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (string, string, model.Projection, string, string) {
	rawView := getCell(row, mapping.View)
	view := model.NormalizeViewName(rawView)
	if view == "" {
		return "", "", model.Projection{}, "", fmt.Sprintf("%s: Unknown view '%s', skipping", rowLabel, rawView)
	}

	name := getCell(row, mapping.Name)
	if name == "" {
		return "", "", model.Projection{}, fmt.Sprintf("%s: Missing part name", rowLabel), ""
	}

	var p model.Projection
	fields := []struct {
		idx  int
		what string
		dst  *float64
	}{
		{mapping.X, "x", &p.X},
		{mapping.Y, "y", &p.Y},
		{mapping.Width, "width", &p.Width},
		{mapping.Height, "height", &p.Height},
	}
	for _, f := range fields {
		v, errMsg := parseNumber(row, f.idx, f.what, rowLabel)
		if errMsg != "" {
			return "", "", model.Projection{}, errMsg, ""
		}
		*f.dst = v
	}
	if p.Width < 0 || p.Height < 0 {
		return "", "", model.Projection{}, fmt.Sprintf("%s: Width and height must not be negative", rowLabel), ""
	}
	return view, name, p, "", ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports projections from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports projections from a CSV reader with a specific
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports projections from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, col := range []struct {
			name string
			idx  int
		}{
			{"View", mapping.View}, {"Name", mapping.Name}, {"X", mapping.X},
			{"Y", mapping.Y}, {"Width", mapping.Width}, {"Height", mapping.Height},
		} {
			if col.idx == -1 {
				missing = append(missing, col.name)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		view, name, p, errMsg, warning := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		result.Document.Add(name, view, p)
	}

	return result
}
