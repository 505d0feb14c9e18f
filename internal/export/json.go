// Package export writes pipeline results to files: the JSON part document
// consumed downstream, PDF drilling sheets and QR-coded part labels, an
// Excel hole schedule and per-part DXF drawings.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/DowelMap/internal/model"
)

// Document is the output document: one piece per part.
type Document struct {
	Pieces []Piece `json:"pieces"`
}

// Piece is a part with the faces that carry holes or areas.
type Piece struct {
	Name      string  `json:"name"`
	Length    float64 `json:"length"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Quantity  int     `json:"quantity"`
	Faces     []Face  `json:"faces"`
}

// Face is one side of a piece.
type Face struct {
	FaceSide        model.FaceSide         `json:"faceSide"`
	Holes           []model.Hole           `json:"holes"`
	ConnectionAreas []model.ConnectionArea `json:"connectionAreas"`
}

// BuildDocument converts a result to the output document. Faces without
// holes and areas are left out.
func BuildDocument(result model.Result) Document {
	doc := Document{Pieces: make([]Piece, 0, len(result.Parts))}
	for _, part := range result.Parts {
		piece := Piece{
			Name:      part.Name,
			Length:    part.Length,
			Height:    part.Height,
			Thickness: part.Thickness,
			Quantity:  1,
			Faces:     []Face{},
		}
		for _, f := range part.Faces {
			if f.Empty() {
				continue
			}
			out := Face{
				FaceSide:        f.Side,
				Holes:           append([]model.Hole{}, f.Holes...),
				ConnectionAreas: append([]model.ConnectionArea{}, f.Areas...),
			}
			piece.Faces = append(piece.Faces, out)
		}
		doc.Pieces = append(doc.Pieces, piece)
	}
	return doc
}

// EncodeJSON writes the output document of result to w, indented.
func EncodeJSON(w io.Writer, result model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildDocument(result)); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// WriteJSON writes the output document of result to path.
func WriteJSON(path string, result model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodeJSON(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
