package model

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrMissingView is returned when a part lacks one of the three projections.
	ErrMissingView = errors.New("missing view")
	// ErrDegenerateBox is returned when a part has a non-positive extent.
	ErrDegenerateBox = errors.New("degenerate box")
)

// Axis identifies one of the three global axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Of returns the component of v along the axis.
func (a Axis) Of(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns v with its component along the axis replaced by val.
func (a Axis) With(v r3.Vec, val float64) r3.Vec {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// InPlane returns the two axes orthogonal to a, in X, Y, Z order.
func (a Axis) InPlane() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// Role is the structural role of a part. It drives which faces are drilled
// and which side of a connection is the hole source.
type Role int

const (
	RoleGeneric Role = iota
	RoleLeg
	RolePanel
)

func (r Role) String() string {
	switch r {
	case RoleLeg:
		return "leg"
	case RolePanel:
		return "panel"
	default:
		return "generic"
	}
}

// Round rounds to one decimal and snaps to the nearest integer when within
// 0.15 of it.
func Round(v float64) float64 {
	r := math.Round(v*10) / 10
	if n := math.Round(r); math.Abs(r-n) <= 0.15 {
		return n
	}
	return r
}

// Part is an axis-aligned board reconstructed from its three projections.
// Dimensions are in mm and satisfy Height >= Length >= Thickness.
type Part struct {
	ID            string
	Name          string
	Role          Role
	Position      r3.Vec // min corner
	Length        float64
	Height        float64
	Thickness     float64
	HalfThickness float64

	LengthAxis    Axis
	HeightAxis    Axis
	ThicknessAxis Axis

	Faces []*Face
}

// NewPart creates a part with its six faces in canonical order. Dimensions
// are rounded.
func NewPart(name string, pos r3.Vec, length, height, thickness float64, lengthAxis, heightAxis, thicknessAxis Axis) *Part {
	p := &Part{
		ID:            uuid.New().String()[:8],
		Name:          strings.ToLower(strings.TrimSpace(name)),
		Position:      pos,
		Length:        Round(length),
		Height:        Round(height),
		Thickness:     Round(thickness),
		LengthAxis:    lengthAxis,
		HeightAxis:    heightAxis,
		ThicknessAxis: thicknessAxis,
	}
	p.HalfThickness = Round(p.Thickness / 2)
	for _, side := range FaceSides {
		w, h := p.faceSize(side)
		p.Faces = append(p.Faces, &Face{Side: side, Width: w, Height: h})
	}
	return p
}

func (p *Part) faceSize(side FaceSide) (float64, float64) {
	switch side {
	case FaceMain, FaceOtherMain:
		return p.Length, p.Height
	case FaceTop, FaceBottom:
		return p.Length, p.Thickness
	default:
		return p.Thickness, p.Height
	}
}

// IsLeg reports whether the part plays the leg role.
func (p *Part) IsLeg() bool { return p.Role == RoleLeg }

// Face returns the face on the given side.
func (p *Part) Face(side FaceSide) *Face {
	for _, f := range p.Faces {
		if f.Side == side {
			return f
		}
	}
	return nil
}

// Extent returns the part's size along a global axis.
func (p *Part) Extent(a Axis) float64 {
	switch a {
	case p.LengthAxis:
		return p.Length
	case p.HeightAxis:
		return p.Height
	default:
		return p.Thickness
	}
}

// Box returns the part's global bounding box.
func (p *Part) Box() r3.Box {
	size := r3.Vec{X: p.Extent(AxisX), Y: p.Extent(AxisY), Z: p.Extent(AxisZ)}
	return r3.Box{Min: p.Position, Max: r3.Add(p.Position, size)}
}

// Center returns the centre of the part's bounding box.
func (p *Part) Center() r3.Vec {
	b := p.Box()
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Shift moves the part without changing its geometry.
func (p *Part) Shift(delta r3.Vec) {
	p.Position = r3.Add(p.Position, delta)
}

// HasContent reports whether any face carries holes or areas.
func (p *Part) HasContent() bool {
	for _, f := range p.Faces {
		if !f.Empty() {
			return true
		}
	}
	return false
}

// IsConnected reports whether any hole or area carries a connection id.
func (p *Part) IsConnected() bool {
	for _, f := range p.Faces {
		for _, h := range f.Holes {
			if h.ConnectionID != 0 {
				return true
			}
		}
		for _, a := range f.Areas {
			if a.ConnectionID != 0 {
				return true
			}
		}
	}
	return false
}

// HoleCount returns the number of holes over all faces.
func (p *Part) HoleCount() int {
	n := 0
	for _, f := range p.Faces {
		n += len(f.Holes)
	}
	return n
}

// Frame describes how a face sits in global space: which global axes its
// local X and Y follow, its normal axis, and where its plane lies.
type Frame struct {
	Side   FaceSide
	XAxis  Axis
	YAxis  Axis
	Normal Axis
	Plane  float64
	Origin r3.Vec // global point of local (0,0)
	Width  float64
	Height float64
}

// Frame returns the frame of the face on the given side.
func (p *Part) Frame(side FaceSide) Frame {
	f := Frame{Side: side, Origin: p.Position}
	switch side {
	case FaceMain, FaceOtherMain:
		f.XAxis, f.YAxis, f.Normal = p.LengthAxis, p.HeightAxis, p.ThicknessAxis
	case FaceTop, FaceBottom:
		f.XAxis, f.YAxis, f.Normal = p.LengthAxis, p.ThicknessAxis, p.HeightAxis
	default:
		f.XAxis, f.YAxis, f.Normal = p.ThicknessAxis, p.HeightAxis, p.LengthAxis
	}
	f.Plane = f.Normal.Of(p.Position)
	if side.IsMaxSide() {
		f.Plane += p.Extent(f.Normal)
	}
	f.Origin = f.Normal.With(f.Origin, f.Plane)
	f.Width, f.Height = p.faceSize(side)
	return f
}

// GlobalRect returns the face's footprint on its plane.
func (f Frame) GlobalRect() PlaneRect {
	u, v := f.Normal.InPlane()
	r := PlaneRect{Normal: f.Normal, Plane: f.Plane, U: u, V: v}
	r.UMin = u.Of(f.Origin)
	r.VMin = v.Of(f.Origin)
	r.UMax = r.UMin + f.sizeAlong(u)
	r.VMax = r.VMin + f.sizeAlong(v)
	return r
}

func (f Frame) sizeAlong(a Axis) float64 {
	if a == f.XAxis {
		return f.Width
	}
	return f.Height
}

// PlaneRect is an axis-aligned rectangle lying in a global plane
// perpendicular to Normal. U and V are the in-plane axes in X, Y, Z order.
type PlaneRect struct {
	Normal Axis    `json:"normal"`
	Plane  float64 `json:"plane"`
	U      Axis    `json:"u"`
	V      Axis    `json:"v"`
	UMin   float64 `json:"u_min"`
	UMax   float64 `json:"u_max"`
	VMin   float64 `json:"v_min"`
	VMax   float64 `json:"v_max"`
}

// Area returns the rectangle's area, zero when empty.
func (r PlaneRect) Area() float64 {
	w, h := r.UMax-r.UMin, r.VMax-r.VMin
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersect returns the overlap of two rectangles on the same normal axis.
// The plane of the result is r's.
func (r PlaneRect) Intersect(o PlaneRect) PlaneRect {
	out := r
	out.UMin = math.Max(r.UMin, o.UMin)
	out.UMax = math.Min(r.UMax, o.UMax)
	out.VMin = math.Max(r.VMin, o.VMin)
	out.VMax = math.Min(r.VMax, o.VMax)
	return out
}

// Bounds returns the rectangle's extent along an in-plane axis.
func (r PlaneRect) Bounds(a Axis) (float64, float64) {
	if a == r.U {
		return r.UMin, r.UMax
	}
	return r.VMin, r.VMax
}
