package model

import "math"

// FaceSide names one of the six faces of a part.
type FaceSide string

const (
	FaceMain      FaceSide = "main"
	FaceOtherMain FaceSide = "other_main"
	FaceTop       FaceSide = "top"
	FaceBottom    FaceSide = "bottom"
	FaceLeft      FaceSide = "left"
	FaceRight     FaceSide = "right"
)

// FaceSides lists the faces in canonical order.
var FaceSides = []FaceSide{FaceMain, FaceOtherMain, FaceTop, FaceBottom, FaceLeft, FaceRight}

// IsMain reports whether the side is one of the two large faces.
func (s FaceSide) IsMain() bool { return s == FaceMain || s == FaceOtherMain }

// IsMaxSide reports whether the face lies on the max side of its normal axis.
func (s FaceSide) IsMaxSide() bool {
	return s == FaceOtherMain || s == FaceTop || s == FaceRight
}

// Opposite returns the face on the other side of the same normal axis.
func (s FaceSide) Opposite() FaceSide {
	switch s {
	case FaceMain:
		return FaceOtherMain
	case FaceOtherMain:
		return FaceMain
	case FaceTop:
		return FaceBottom
	case FaceBottom:
		return FaceTop
	case FaceLeft:
		return FaceRight
	default:
		return FaceLeft
	}
}

// HoleType classifies a drilling position.
type HoleType string

const (
	HoleFlapCorner    HoleType = "flap_corner"
	HoleFlapCentral   HoleType = "flap_central"
	HoleTopCorner     HoleType = "top_corner"
	HoleTopCentral    HoleType = "top_central"
	HoleFaceCentral   HoleType = "face_central"
	HoleSingerFlap    HoleType = "singer_flap"
	HoleSingerCentral HoleType = "singer_central"
	HoleSingerChannel HoleType = "singer_channel"
)

// IsProtected reports whether cleanup must keep holes of this type even
// when they lie outside every connection area.
func (t HoleType) IsProtected() bool {
	switch t {
	case HoleFlapCorner, HoleFlapCentral, HoleTopCorner, HoleTopCentral, HoleFaceCentral:
		return true
	}
	return false
}

// IsSinger reports whether the hole is a reinforcement hole.
func (t HoleType) IsSinger() bool {
	return t == HoleSingerFlap || t == HoleSingerCentral || t == HoleSingerChannel
}

// Hardware symbols.
const (
	HardwareGlue        = "glue"
	HardwareDowelM      = "dowel_M_with_glue"
	HardwareDowelG      = "dowel_G_with_glue"
	HardwareSingerDowel = "singer_dowel"
)

// Hole is a drilling position in face-local coordinates. A zero
// ConnectionID means the hole belongs to no connection.
type Hole struct {
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Type         HoleType `json:"type"`
	TargetType   string   `json:"targetType"`
	Hardware     []string `json:"ferragemSymbols"`
	ConnectionID int      `json:"connectionId,omitempty"`
	Depth        float64  `json:"depth,omitempty"`
	Diameter     float64  `json:"diameter,omitempty"`
}

// DistanceTo returns the Euclidean distance to a local point.
func (h Hole) DistanceTo(x, y float64) float64 {
	return math.Hypot(h.X-x, h.Y-y)
}

// Rect is an axis-aligned rectangle in face-local coordinates.
type Rect struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Valid reports whether the rectangle has positive size.
func (r Rect) Valid() bool { return r.Width() > 0 && r.Height() > 0 }

// Contains reports whether a point lies inside or on the border.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Overlaps reports whether the interiors of the two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.XMin < o.XMax && o.XMin < r.XMax && r.YMin < o.YMax && o.YMin < r.YMax
}

// NearlyEqual reports whether every bound is within tol.
func (r Rect) NearlyEqual(o Rect, tol float64) bool {
	return math.Abs(r.XMin-o.XMin) <= tol && math.Abs(r.YMin-o.YMin) <= tol &&
		math.Abs(r.XMax-o.XMax) <= tol && math.Abs(r.YMax-o.YMax) <= tol
}

// Inset shrinks the rectangle by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{XMin: r.XMin + m, YMin: r.YMin + m, XMax: r.XMax - m, YMax: r.YMax - m}
}

// Clamp clips the rectangle to [0,w]x[0,h].
func (r Rect) Clamp(w, h float64) Rect {
	return Rect{
		XMin: math.Max(0, r.XMin), YMin: math.Max(0, r.YMin),
		XMax: math.Min(w, r.XMax), YMax: math.Min(h, r.YMax),
	}
}

// Rounded applies Round to every bound.
func (r Rect) Rounded() Rect {
	return Rect{XMin: Round(r.XMin), YMin: Round(r.YMin), XMax: Round(r.XMax), YMax: Round(r.YMax)}
}

// ConnectionArea marks the region of a face that justifies its holes.
// Structural and reinforcement areas carry ConnectionID 0.
type ConnectionArea struct {
	Rect
	Fill         string  `json:"fill"`
	Opacity      float64 `json:"opacity"`
	ConnectionID int     `json:"connectionId"`
}

// Face holds the holes and connection areas of one side of a part.
type Face struct {
	Side   FaceSide
	Width  float64
	Height float64
	Holes  []Hole
	Areas  []ConnectionArea
}

// Empty reports whether the face carries neither holes nor areas.
func (f *Face) Empty() bool { return len(f.Holes) == 0 && len(f.Areas) == 0 }

// Bounds returns the face as a local rectangle.
func (f *Face) Bounds() Rect { return Rect{XMax: f.Width, YMax: f.Height} }

// HoleNear returns the index of the first hole within tol of (x, y), or -1.
func (f *Face) HoleNear(x, y, tol float64) int {
	for i, h := range f.Holes {
		if h.DistanceTo(x, y) <= tol {
			return i
		}
	}
	return -1
}

// AddHole appends h unless a hole already exists within tol. In that case an
// untagged existing hole adopts h's connection id. It returns the index of
// the hole now occupying the position and whether h was appended.
func (f *Face) AddHole(h Hole, tol float64) (int, bool) {
	h.X, h.Y = Round(h.X), Round(h.Y)
	if i := f.HoleNear(h.X, h.Y, tol); i >= 0 {
		if f.Holes[i].ConnectionID == 0 && h.ConnectionID != 0 {
			f.Holes[i].ConnectionID = h.ConnectionID
		}
		return i, false
	}
	f.Holes = append(f.Holes, h)
	return len(f.Holes) - 1, true
}

// HolesFor returns the indices of holes tagged with the connection id.
func (f *Face) HolesFor(id int) []int {
	var out []int
	for i, h := range f.Holes {
		if h.ConnectionID == id {
			out = append(out, i)
		}
	}
	return out
}

// AreasFor returns the areas tagged with the connection id.
func (f *Face) AreasFor(id int) []ConnectionArea {
	var out []ConnectionArea
	for _, a := range f.Areas {
		if a.ConnectionID == id {
			out = append(out, a)
		}
	}
	return out
}

// InAnyArea reports whether a point lies inside some area of the face.
func (f *Face) InAnyArea(x, y float64) bool {
	for _, a := range f.Areas {
		if a.Contains(x, y) {
			return true
		}
	}
	return false
}

// AddArea appends a rounded copy of a. It is skipped when a near-identical
// area (within dupTol) exists, and rejected when it is empty or overlaps an
// existing area. It reports whether the area was appended.
func (f *Face) AddArea(a ConnectionArea, dupTol float64) bool {
	a.Rect = a.Rect.Rounded()
	if !a.Valid() {
		return false
	}
	for _, existing := range f.Areas {
		if existing.NearlyEqual(a.Rect, dupTol) {
			return false
		}
	}
	for _, existing := range f.Areas {
		if existing.Overlaps(a.Rect) {
			return false
		}
	}
	f.Areas = append(f.Areas, a)
	return true
}
