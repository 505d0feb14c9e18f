package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/piwi3910/DowelMap/internal/model"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// jsonDocument is the layer export of the drawing tool. Keys are accepted
// in Portuguese and English.
type jsonDocument struct {
	Layers []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name  string     `json:"name"`
	Items []jsonItem `json:"items"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSize struct {
	Largura *float64 `json:"largura"`
	Altura  *float64 `json:"altura"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
}

type jsonItem struct {
	Nome       string     `json:"nome"`
	Name       string     `json:"name"`
	Posicao    *jsonPoint `json:"posicao"`
	Position   *jsonPoint `json:"position"`
	Dimensoes  *jsonSize  `json:"dimensoes"`
	Dimensions *jsonSize  `json:"dimensions"`
}

func firstOf(vals ...*float64) (float64, bool) {
	for _, v := range vals {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// projection resolves the item's position and size. ok is false when
// either is missing.
func (it jsonItem) projection() (model.Projection, bool) {
	pos := it.Posicao
	if pos == nil {
		pos = it.Position
	}
	size := it.Dimensoes
	if size == nil {
		size = it.Dimensions
	}
	if pos == nil || size == nil {
		return model.Projection{}, false
	}
	w, okW := firstOf(size.Largura, size.Width)
	h, okH := firstOf(size.Altura, size.Height)
	if !okW || !okH {
		return model.Projection{}, false
	}
	return model.Projection{X: pos.X, Y: pos.Y, Width: w, Height: h}, true
}

// fallbackEncodings are tried in order when a document is not valid UTF-8
// JSON. Latin-1 accepts any byte sequence, so Windows-1252 is only reached
// when the Latin-1 text still fails to parse.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"ISO-8859-1", charmap.ISO8859_1},
	{"Windows-1252", charmap.Windows1252},
}

// decodeDocument parses data as UTF-8 JSON, falling back to the legacy
// single-byte encodings. It returns the name of the encoding that worked.
func decodeDocument(data []byte) (jsonDocument, string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var doc jsonDocument
	var lastErr error
	if utf8.Valid(data) {
		if lastErr = json.Unmarshal(data, &doc); lastErr == nil {
			return doc, "UTF-8", nil
		}
	}
	for _, fb := range fallbackEncodings {
		decoded, err := fb.enc.NewDecoder().Bytes(data)
		if err != nil {
			lastErr = err
			continue
		}
		doc = jsonDocument{}
		if lastErr = json.Unmarshal(decoded, &doc); lastErr == nil {
			return doc, fb.name, nil
		}
	}
	return jsonDocument{}, "", fmt.Errorf("could not decode with any supported encoding: %w", lastErr)
}

// ImportJSON imports a layer export. Each layer is one view; its items are
// the projections of the parts in that view.
func ImportJSON(path string) ImportResult {
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
	return ImportJSONBytes(data)
}

// ImportJSONBytes imports a layer export held in memory.
func ImportJSONBytes(data []byte) ImportResult {
	result := ImportResult{}

	doc, enc, err := decodeDocument(data)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read JSON: %v", err))
		return result
	}
	if enc != "UTF-8" {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Decoded file as %s", enc))
	}
	if len(doc.Layers) == 0 {
		result.Errors = append(result.Errors, "No layers found")
		return result
	}

	for li, layer := range doc.Layers {
		view := model.NormalizeViewName(layer.Name)
		if view == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Layer %d: Unknown view '%s', skipping", li+1, layer.Name))
			continue
		}
		for ii, item := range layer.Items {
			label := fmt.Sprintf("Layer '%s' item %d", layer.Name, ii+1)
			name := item.Nome
			if name == "" {
				name = item.Name
			}
			if name == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing part name", label))
				continue
			}
			p, ok := item.projection()
			if !ok {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing position or dimensions for '%s'", label, name))
				continue
			}
			result.Document.Add(name, view, p)
		}
	}
	return result
}
