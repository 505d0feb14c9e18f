package engine

import (
	"math"

	"github.com/piwi3910/DowelMap/internal/model"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToLocal projects a global point onto the face's local coordinates.
func ToLocal(f model.Frame, g r3.Vec) r2.Vec {
	return r2.Vec{
		X: f.XAxis.Of(g) - f.XAxis.Of(f.Origin),
		Y: f.YAxis.Of(g) - f.YAxis.Of(f.Origin),
	}
}

// ToGlobal maps a face-local point back onto the face plane in global space.
func ToGlobal(f model.Frame, l r2.Vec) r3.Vec {
	g := f.Origin
	g = f.XAxis.With(g, f.XAxis.Of(f.Origin)+l.X)
	g = f.YAxis.With(g, f.YAxis.Of(f.Origin)+l.Y)
	return g
}

// RectToLocal converts a global in-plane rectangle into face-local
// coordinates clamped to the face. It returns false when the rectangle lies
// in another plane orientation or nothing is left after clamping.
func RectToLocal(f model.Frame, r model.PlaneRect) (model.Rect, bool) {
	if r.Normal != f.Normal {
		return model.Rect{}, false
	}
	ox, oy := f.XAxis.Of(f.Origin), f.YAxis.Of(f.Origin)
	xmin, xmax := r.Bounds(f.XAxis)
	ymin, ymax := r.Bounds(f.YAxis)
	local := model.Rect{XMin: xmin - ox, YMin: ymin - oy, XMax: xmax - ox, YMax: ymax - oy}.Clamp(f.Width, f.Height)
	if !local.Valid() {
		return model.Rect{}, false
	}
	return local, true
}

// RectToGlobal is the inverse of RectToLocal for rectangles inside the face.
func RectToGlobal(f model.Frame, r model.Rect) model.PlaneRect {
	u, v := f.Normal.InPlane()
	ox, oy := f.XAxis.Of(f.Origin), f.YAxis.Of(f.Origin)
	out := model.PlaneRect{Normal: f.Normal, Plane: f.Plane, U: u, V: v}
	xmin, xmax := ox+r.XMin, ox+r.XMax
	ymin, ymax := oy+r.YMin, oy+r.YMax
	if f.XAxis == u {
		out.UMin, out.UMax, out.VMin, out.VMax = xmin, xmax, ymin, ymax
	} else {
		out.UMin, out.UMax, out.VMin, out.VMax = ymin, ymax, xmin, xmax
	}
	return out
}

// FallbackRect is the edge-anchored rectangle used when an overlap cannot be
// transformed onto a face.
func FallbackRect(f model.Frame, w, h float64) model.Rect {
	return model.Rect{XMax: math.Min(w, f.Width), YMax: math.Min(h, f.Height)}
}

// SlotRect places a fallback rectangle for the slot-th of count legs along
// the face's local X. One leg sits centred; several are spread evenly
// between 10% margins.
func SlotRect(f model.Frame, slot, count int, w, h float64) model.Rect {
	w = math.Min(w, f.Width)
	h = math.Min(h, f.Height)
	var cx float64
	if count <= 1 {
		cx = f.Width / 2
	} else {
		margin := f.Width * 0.1
		cx = margin + float64(slot)*(f.Width-2*margin)/float64(count-1)
	}
	x0 := math.Max(0, math.Min(cx-w/2, f.Width-w))
	return model.Rect{XMin: x0, XMax: x0 + w, YMax: h}
}
