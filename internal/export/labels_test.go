package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/DowelMap/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult(t)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportLabels(path, model.Result{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildTestResult(t)
	labels := CollectLabelInfos(result)

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	leg := labels[0]
	if leg.PartName != "perna 1" || leg.Role != "leg" {
		t.Errorf("unexpected first label %+v", leg)
	}
	if leg.PartID != result.Parts[0].ID {
		t.Errorf("expected part id %s, got %s", result.Parts[0].ID, leg.PartID)
	}
	if len(leg.Faces) != 1 || leg.Faces[0] != "top" {
		t.Errorf("expected the leg to be drilled on top only, got %v", leg.Faces)
	}
	if leg.Holes != 2 {
		t.Errorf("expected 2 holes, got %d", leg.Holes)
	}
	if leg.Template != "20" || leg.RunID != result.RunID {
		t.Errorf("unexpected template %q or run %q", leg.Template, leg.RunID)
	}
}

func TestLabelInfo_JSONKeys(t *testing.T) {
	data, err := json.Marshal(LabelInfo{PartID: "ab12cd34", PartName: "tampo", Faces: []string{"main"}})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"id", "name", "length_mm", "faces", "template", "run"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}

func TestExportLabels_ManyParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// 35 parts spill onto a second label sheet
	var result model.Result
	for i := 0; i < 35; i++ {
		part := model.NewPart(fmt.Sprintf("shelf %d", i+1), r3.Vec{}, 300, 400, 18, model.AxisX, model.AxisZ, model.AxisY)
		part.Face(model.FaceMain).Holes = []model.Hole{{X: 9, Y: 9, Type: model.HoleFlapCorner}}
		result.Parts = append(result.Parts, part)
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}
