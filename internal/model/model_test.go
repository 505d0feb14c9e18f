package model

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRound(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{9.5, 9.5},
		{9.1, 9},
		{9.86, 10},
		{12.34, 12.3},
		{-0.04, 0},
		{135, 135},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func testPanel() *Part {
	// 400 long (X), 300 high (Y), 20 thick (Z), lying flat at Z 200..220
	return NewPart("Tampo", r3.Vec{X: 0, Y: 0, Z: 200}, 400, 300, 20, AxisX, AxisY, AxisZ)
}

func TestNewPartFaces(t *testing.T) {
	p := testPanel()
	if p.Name != "tampo" {
		t.Errorf("expected lower-cased name, got %q", p.Name)
	}
	if len(p.ID) != 8 {
		t.Errorf("expected short id, got %q", p.ID)
	}
	if p.HalfThickness != 10 {
		t.Errorf("expected half thickness 10, got %v", p.HalfThickness)
	}
	if len(p.Faces) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(p.Faces))
	}
	for i, side := range FaceSides {
		if p.Faces[i].Side != side {
			t.Errorf("face %d: expected %s, got %s", i, side, p.Faces[i].Side)
		}
	}
	sizes := map[FaceSide][2]float64{
		FaceMain:   {400, 300},
		FaceTop:    {400, 20},
		FaceLeft:   {20, 300},
		FaceBottom: {400, 20},
	}
	for side, want := range sizes {
		f := p.Face(side)
		if f.Width != want[0] || f.Height != want[1] {
			t.Errorf("%s: expected %vx%v, got %vx%v", side, want[0], want[1], f.Width, f.Height)
		}
	}
}

func TestFramePlanes(t *testing.T) {
	p := testPanel()
	main := p.Frame(FaceMain)
	if main.Normal != AxisZ || main.Plane != 200 {
		t.Errorf("main: expected Z plane 200, got %s %v", main.Normal, main.Plane)
	}
	other := p.Frame(FaceOtherMain)
	if other.Plane != 220 {
		t.Errorf("other_main: expected plane 220, got %v", other.Plane)
	}
	top := p.Frame(FaceTop)
	if top.Normal != AxisY || top.Plane != 300 {
		t.Errorf("top: expected Y plane 300, got %s %v", top.Normal, top.Plane)
	}
	right := p.Frame(FaceRight)
	if right.Normal != AxisX || right.Plane != 400 {
		t.Errorf("right: expected X plane 400, got %s %v", right.Normal, right.Plane)
	}

	r := main.GlobalRect()
	if r.U != AxisX || r.V != AxisY || r.UMax != 400 || r.VMax != 300 {
		t.Errorf("unexpected main footprint %+v", r)
	}
}

func TestPartBoxAndShift(t *testing.T) {
	p := testPanel()
	p.Shift(r3.Vec{X: 10, Y: -5})
	b := p.Box()
	if b.Min != (r3.Vec{X: 10, Y: -5, Z: 200}) {
		t.Errorf("unexpected min %v", b.Min)
	}
	if b.Max != (r3.Vec{X: 410, Y: 295, Z: 220}) {
		t.Errorf("unexpected max %v", b.Max)
	}
	if p.Length != 400 || p.Height != 300 || p.Thickness != 20 {
		t.Error("shift must not change dimensions")
	}
}

func TestAddHoleDedupAdoptsConnection(t *testing.T) {
	f := &Face{Side: FaceMain, Width: 400, Height: 300}
	if _, added := f.AddHole(Hole{X: 10, Y: 10, Type: HoleFlapCorner}, 8); !added {
		t.Fatal("expected first hole to be added")
	}
	i, added := f.AddHole(Hole{X: 14, Y: 12, ConnectionID: 3}, 8)
	if added {
		t.Fatal("expected duplicate to be suppressed")
	}
	if f.Holes[i].ConnectionID != 3 {
		t.Errorf("expected untagged hole to adopt id 3, got %d", f.Holes[i].ConnectionID)
	}
	_, _ = f.AddHole(Hole{X: 12, Y: 10, ConnectionID: 4}, 8)
	if f.Holes[0].ConnectionID != 3 {
		t.Error("tagged hole must keep its connection id")
	}
	if len(f.Holes) != 1 {
		t.Errorf("expected 1 hole, got %d", len(f.Holes))
	}
}

func TestAddAreaRules(t *testing.T) {
	f := &Face{Side: FaceMain, Width: 400, Height: 300}
	a := ConnectionArea{Rect: Rect{XMin: 10, YMin: 10, XMax: 50, YMax: 50}, ConnectionID: 1}
	if !f.AddArea(a, 1) {
		t.Fatal("expected first area to be added")
	}
	near := a
	near.XMin = 10.5
	if f.AddArea(near, 1) {
		t.Error("near-duplicate area should be skipped")
	}
	overlapping := ConnectionArea{Rect: Rect{XMin: 40, YMin: 40, XMax: 80, YMax: 80}, ConnectionID: 2}
	if f.AddArea(overlapping, 1) {
		t.Error("overlapping area should be rejected")
	}
	touching := ConnectionArea{Rect: Rect{XMin: 50, YMin: 10, XMax: 80, YMax: 50}, ConnectionID: 2}
	if !f.AddArea(touching, 1) {
		t.Error("edge-touching area should be accepted")
	}
	if f.AddArea(ConnectionArea{Rect: Rect{XMin: 5, XMax: 5, YMax: 3}}, 1) {
		t.Error("empty area should be rejected")
	}
	if !f.InAnyArea(20, 20) || f.InAnyArea(200, 200) {
		t.Error("InAnyArea mismatch")
	}
}

func TestConnectionSetOrderIndependent(t *testing.T) {
	s := ConnectionSet{}
	a := PartFace{Part: 0, Side: FaceTop}
	b := PartFace{Part: 1, Side: FaceMain}
	if !s.Add(a, b) {
		t.Fatal("expected new pair")
	}
	if s.Add(b, a) {
		t.Error("reversed pair must collide")
	}
	if !s.Has(b, a) {
		t.Error("Has must be order independent")
	}
}

func TestConnectionAdvanceNeverBackwards(t *testing.T) {
	c := Connection{}
	c.Advance(StateHolesMapped)
	c.Advance(StateAreaCreated)
	if c.State != StateHolesMapped {
		t.Errorf("expected holes_mapped, got %s", c.State)
	}
}

func TestViewDocumentKeepsFirstAppearanceOrder(t *testing.T) {
	var d ViewDocument
	d.Add(" Perna 1", ViewTop, Projection{Width: 2})
	d.Add("tampo", ViewTop, Projection{Width: 40})
	d.Add("PERNA 1", ViewFrontal, Projection{Height: 20})
	if d.Len() != 2 {
		t.Fatalf("expected 2 parts, got %d", d.Len())
	}
	if d.Parts[0].Name != "perna 1" || len(d.Parts[0].Views) != 2 {
		t.Errorf("unexpected first part %+v", d.Parts[0])
	}
}

func TestNormalizeViewName(t *testing.T) {
	if NormalizeViewName("Vista de Cima") != ViewTop {
		t.Error("expected top")
	}
	if NormalizeViewName("front view") != ViewFrontal {
		t.Error("expected frontal")
	}
	if NormalizeViewName("Lateral ") != ViewLateral {
		t.Error("expected lateral")
	}
	if NormalizeViewName("Layer 2 - Vista Superior") != ViewTop {
		t.Error("expected top from a longer layer name")
	}
	if NormalizeViewName("isometric") != "" {
		t.Error("expected unknown view")
	}
}

func TestFaceSideOpposite(t *testing.T) {
	for _, s := range FaceSides {
		if s.Opposite() == s {
			t.Errorf("%s is its own opposite", s)
		}
		if s.Opposite().Opposite() != s {
			t.Errorf("opposite of opposite of %s = %s", s, s.Opposite().Opposite())
		}
		if s.IsMaxSide() == s.Opposite().IsMaxSide() {
			t.Errorf("%s and %s are on the same side", s, s.Opposite())
		}
	}
}

func TestPartIsConnected(t *testing.T) {
	p := NewPart("shelf", r3.Vec{}, 500, 300, 18, AxisX, AxisZ, AxisY)
	p.Face(FaceMain).Holes = []Hole{{X: 9, Y: 9, Type: HoleFlapCorner}}
	p.Face(FaceMain).Areas = []ConnectionArea{{Rect: Rect{XMax: 20, YMax: 20}}}
	if p.IsConnected() {
		t.Error("untagged holes and structural areas do not connect a part")
	}
	p.Face(FaceTop).Areas = []ConnectionArea{{Rect: Rect{XMax: 20, YMax: 10}, ConnectionID: 3}}
	if !p.IsConnected() {
		t.Error("a tagged area connects the part")
	}
}
