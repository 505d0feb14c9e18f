package engine

import (
	"testing"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestToLocalToGlobalInverse(t *testing.T) {
	part := mustBuild("tampo", boxViews(35, 12, 200, 435, 312, 220))
	for _, side := range model.FaceSides {
		f := part.Frame(side)
		l := r2.Vec{X: f.Width * 0.3, Y: f.Height * 0.7}
		g := ToGlobal(f, l)
		assert.InDelta(t, f.Plane, f.Normal.Of(g), 1e-9, "%s: point must lie on the face plane", side)
		back := ToLocal(f, g)
		assert.InDelta(t, l.X, back.X, 1e-9, side)
		assert.InDelta(t, l.Y, back.Y, 1e-9, side)
	}
}

func TestRectRoundTrip(t *testing.T) {
	parts := []*model.Part{
		mustBuild("tampo", boxViews(35, 12, 200, 435, 312, 220)),
		mustBuild("perna", boxViews(100, 140, 0, 300, 160, 200)),
		mustBuild("divider", boxViews(0, 0, 20, 400, 20, 320)),
	}
	for _, part := range parts {
		for _, side := range model.FaceSides {
			f := part.Frame(side)
			local := model.Rect{XMin: f.Width * 0.1, YMin: f.Height * 0.2, XMax: f.Width * 0.8, YMax: f.Height * 0.9}
			back, ok := RectToLocal(f, RectToGlobal(f, local))
			require.True(t, ok, "%s/%s", part.Name, side)
			assert.InDelta(t, local.XMin, back.XMin, 0.1)
			assert.InDelta(t, local.YMin, back.YMin, 0.1)
			assert.InDelta(t, local.XMax, back.XMax, 0.1)
			assert.InDelta(t, local.YMax, back.YMax, 0.1)
		}
	}
}

func TestRectToLocal_Clamps(t *testing.T) {
	part := mustBuild("tampo", boxViews(0, 0, 200, 400, 300, 220))
	f := part.Frame(model.FaceMain)
	g := f.GlobalRect()
	g.UMin, g.UMax = -50, 100 // X axis, which is local Y

	local, ok := RectToLocal(f, g)
	require.True(t, ok)
	assert.Equal(t, 0.0, local.YMin)
	assert.Equal(t, 100.0, local.YMax)
	assert.Equal(t, 0.0, local.XMin)
	assert.Equal(t, 300.0, local.XMax)
}

func TestRectToLocal_Degenerate(t *testing.T) {
	part := mustBuild("tampo", boxViews(0, 0, 200, 400, 300, 220))
	f := part.Frame(model.FaceMain)

	off := f.GlobalRect()
	off.UMin, off.UMax = 500, 600
	_, ok := RectToLocal(f, off)
	assert.False(t, ok, "rectangle beyond the face")

	wrong := part.Frame(model.FaceTop).GlobalRect()
	_, ok = RectToLocal(f, wrong)
	assert.False(t, ok, "rectangle in another plane orientation")
}

func TestFallbackRect(t *testing.T) {
	part := model.NewPart("thin", r3.Vec{}, 20, 300, 10, model.AxisX, model.AxisZ, model.AxisY)
	r := FallbackRect(part.Frame(model.FaceMain), 50, 20)
	assert.Equal(t, model.Rect{XMax: 20, YMax: 20}, r)

	big := FallbackRect(mustBuild("tampo", boxViews(0, 0, 200, 400, 300, 220)).Frame(model.FaceMain), 50, 20)
	assert.Equal(t, model.Rect{XMax: 50, YMax: 20}, big)
}

func TestSlotRect(t *testing.T) {
	part := mustBuild("tampo", boxViews(0, 0, 200, 400, 300, 220))
	f := part.Frame(model.FaceMain) // 300 wide

	single := SlotRect(f, 0, 1, 50, 20)
	assert.Equal(t, 125.0, single.XMin)
	assert.Equal(t, 175.0, single.XMax)

	first := SlotRect(f, 0, 3, 50, 20)
	mid := SlotRect(f, 1, 3, 50, 20)
	last := SlotRect(f, 2, 3, 50, 20)
	assert.Equal(t, 5.0, first.XMin)
	assert.Equal(t, 125.0, mid.XMin)
	assert.Equal(t, 245.0, last.XMin)
}
