package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newPanel(length, height, thickness float64) *model.Part {
	p := model.NewPart("panel", r3.Vec{}, length, height, thickness, model.AxisX, model.AxisZ, model.AxisY)
	p.Role = model.RolePanel
	return p
}

func newLeg(length, height, thickness float64) *model.Part {
	p := model.NewPart("perna", r3.Vec{}, length, height, thickness, model.AxisX, model.AxisZ, model.AxisY)
	p.Role = model.RoleLeg
	return p
}

func assertHoleAt(t *testing.T, face *model.Face, x, y float64, typ model.HoleType) {
	t.Helper()
	i := face.HoleNear(x, y, 0.05)
	if assert.GreaterOrEqual(t, i, 0, "expected hole at (%v,%v) on %s", x, y, face.Side) {
		assert.Equal(t, typ, face.Holes[i].Type)
	}
}

func TestAllocate_PanelCornersAndMidpoint(t *testing.T) {
	pl := New(model.DefaultSettings())
	part := newPanel(270, 400, 20)
	pl.AllocateSystematic(part, 20)

	main := part.Face(model.FaceMain)
	assertHoleAt(t, main, 10, 10, model.HoleFlapCorner)
	assertHoleAt(t, main, 260, 10, model.HoleFlapCorner)
	assertHoleAt(t, main, 10, 390, model.HoleFlapCorner)
	assertHoleAt(t, main, 260, 390, model.HoleFlapCorner)

	// corners 250 apart along X gain exactly one midpoint
	assertHoleAt(t, main, 135, 10, model.HoleFlapCentral)
	assertHoleAt(t, main, 135, 390, model.HoleFlapCentral)
	assertHoleAt(t, main, 10, 200, model.HoleFlapCentral)
	assertHoleAt(t, main, 260, 200, model.HoleFlapCentral)
	assert.Len(t, main.Holes, 8)

	h := main.Holes[0]
	assert.Equal(t, []string{model.HardwareDowelM}, h.Hardware)
	assert.Equal(t, 10.0, h.Depth)
	assert.Equal(t, 8.0, h.Diameter)
	assert.Equal(t, "20", h.TargetType)
}

func TestAllocate_NoMidpointUnderLimit(t *testing.T) {
	pl := New(model.DefaultSettings())
	part := newPanel(200, 210, 20)
	pl.AllocateSystematic(part, 20)

	assert.Len(t, part.Face(model.FaceMain).Holes, 4, "corners 180/190 apart need no central hole")
}

func TestAllocate_ThicknessFaceCollapsesCorners(t *testing.T) {
	pl := New(model.DefaultSettings())
	part := newPanel(400, 600, 20)
	pl.AllocateSystematic(part, 20)

	top := part.Face(model.FaceTop)
	require.Len(t, top.Holes, 3)
	assertHoleAt(t, top, 10, 10, model.HoleTopCorner)
	assertHoleAt(t, top, 390, 10, model.HoleTopCorner)
	assertHoleAt(t, top, 200, 10, model.HoleTopCentral)
	assert.Equal(t, []string{model.HardwareGlue}, top.Holes[0].Hardware)
	assert.Equal(t, 20.0, top.Holes[0].Depth)
}

func TestAllocate_HoleSpacing(t *testing.T) {
	pl := New(model.DefaultSettings())
	for _, part := range []*model.Part{newPanel(270, 400, 20), newPanel(30, 900, 18), newLeg(24, 100, 20)} {
		pl.AllocateSystematic(part, 20)
		for _, f := range part.Faces {
			for i := range f.Holes {
				for j := i + 1; j < len(f.Holes); j++ {
					d := math.Hypot(f.Holes[i].X-f.Holes[j].X, f.Holes[i].Y-f.Holes[j].Y)
					assert.GreaterOrEqual(t, d, 8.0, "%s/%s holes %d and %d", part.Name, f.Side, i, j)
				}
			}
		}
	}
}

func TestAllocate_LegTopOnly(t *testing.T) {
	pl := New(model.DefaultSettings())
	leg := newLeg(200, 200, 20)
	pl.AllocateSystematic(leg, 20)

	top := leg.Face(model.FaceTop)
	require.Len(t, top.Holes, 2)
	assertHoleAt(t, top, 10, 10, model.HoleTopCorner)
	assertHoleAt(t, top, 190, 10, model.HoleTopCorner)
	for _, f := range leg.Faces {
		if f.Side != model.FaceTop {
			assert.Empty(t, f.Holes, "leg face %s", f.Side)
		}
	}
}

func TestAllocate_SmallLegs(t *testing.T) {
	pl := New(model.DefaultSettings())

	narrow := newLeg(24, 100, 20)
	pl.AllocateSystematic(narrow, 20)
	require.Len(t, narrow.Face(model.FaceTop).Holes, 1)
	assertHoleAt(t, narrow.Face(model.FaceTop), 12, 10, model.HoleTopCorner)

	reduced := newLeg(30, 100, 20)
	pl.AllocateSystematic(reduced, 20)
	top := reduced.Face(model.FaceTop)
	require.Len(t, top.Holes, 2)
	assertHoleAt(t, top, 10, 10, model.HoleTopCorner)
	assertHoleAt(t, top, 20, 10, model.HoleTopCorner)

	tiny := newLeg(12, 100, 10)
	pl.AllocateSystematic(tiny, 20)
	require.Len(t, tiny.Face(model.FaceTop).Holes, 1)
	assertHoleAt(t, tiny.Face(model.FaceTop), 6, 5, model.HoleTopCorner)
}

func TestAllocate_Idempotent(t *testing.T) {
	pl := New(model.DefaultSettings())
	part := newPanel(270, 400, 20)
	pl.AllocateSystematic(part, 20)
	before := part.HoleCount()
	pl.AllocateSystematic(part, 20)
	assert.Equal(t, before, part.HoleCount())
}

func TestNearbyHoleRequestsCollapse(t *testing.T) {
	face := &model.Face{Side: model.FaceMain, Width: 300, Height: 300}
	face.AddHole(model.Hole{X: 100, Y: 100, Type: model.HoleFlapCentral}, 8)
	face.AddHole(model.Hole{X: 103, Y: 104, Type: model.HoleFlapCentral}, 8)
	assert.Len(t, face.Holes, 1)
}
