package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dxf")
	result := buildTestResult(t)

	paths, err := ExportDXF(dir, result)
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 drawings, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "01_perna_1.dxf" {
		t.Errorf("unexpected file name %s", filepath.Base(paths[0]))
	}

	drawing, err := dxf.Open(paths[0])
	if err != nil {
		t.Fatalf("cannot reopen drawing: %v", err)
	}
	circles, polylines := 0, 0
	for _, ent := range drawing.Entities() {
		switch ent.(type) {
		case *entity.Circle:
			circles++
		case *entity.LwPolyline:
			polylines++
		}
	}
	leg := result.Parts[0]
	if circles != leg.HoleCount() {
		t.Errorf("expected %d hole circles, got %d", leg.HoleCount(), circles)
	}
	// the top face outline and its connection area
	if polylines != 2 {
		t.Errorf("expected 2 polylines, got %d", polylines)
	}
}

func TestExportDXF_NothingToDraw(t *testing.T) {
	if _, err := ExportDXF(t.TempDir(), model.Result{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestFileSafe(t *testing.T) {
	cases := map[string]string{
		"perna 1":        "perna_1",
		"tampo/mesa":     "tampo_mesa",
		"prateleira méd": "prateleira_méd",
		"":               "part",
	}
	for in, want := range cases {
		if got := fileSafe(in); got != want {
			t.Errorf("fileSafe(%q) = %q, want %q", in, got, want)
		}
	}
	if strings.ContainsAny(fileSafe("a:b*c?"), ":*?") {
		t.Error("unsafe characters survived")
	}
}
