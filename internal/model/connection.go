package model

// PartFace addresses one face of one part by the part's index in the
// assembly.
type PartFace struct {
	Part int      `json:"part"`
	Side FaceSide `json:"side"`
}

func (pf PartFace) less(o PartFace) bool {
	if pf.Part != o.Part {
		return pf.Part < o.Part
	}
	return pf.Side < o.Side
}

// ConnectionKey identifies a face pair independently of its order.
type ConnectionKey struct {
	A PartFace
	B PartFace
}

// NewConnectionKey normalises the pair so that (a, b) and (b, a) collide.
func NewConnectionKey(a, b PartFace) ConnectionKey {
	if b.less(a) {
		a, b = b, a
	}
	return ConnectionKey{A: a, B: b}
}

// ConnectionSet records the face pairs already connected during a run.
type ConnectionSet map[ConnectionKey]struct{}

// Add records the pair and reports whether it was new.
func (s ConnectionSet) Add(a, b PartFace) bool {
	k := NewConnectionKey(a, b)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Has reports whether the pair was recorded.
func (s ConnectionSet) Has(a, b PartFace) bool {
	_, ok := s[NewConnectionKey(a, b)]
	return ok
}

// ConnectionState tracks a connection through the pipeline.
type ConnectionState int

const (
	StateDetected ConnectionState = iota
	StateAreaCreated
	StateHolesMapped
	StateCleaned
)

func (s ConnectionState) String() string {
	switch s {
	case StateAreaCreated:
		return "area_created"
	case StateHolesMapped:
		return "holes_mapped"
	case StateCleaned:
		return "cleaned"
	default:
		return "detected"
	}
}

func (s ConnectionState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Connection is a touching face pair with the overlap rectangle that
// justifies it.
type Connection struct {
	ID       int             `json:"id"`
	A        PartFace        `json:"a"`
	B        PartFace        `json:"b"`
	Axis     Axis            `json:"axis"`
	Distance float64         `json:"distance"`
	Overlap  PlaneRect       `json:"overlap"`
	LegSlot  int             `json:"legSlot"`
	LegCount int             `json:"legCount"`
	State    ConnectionState `json:"state"`
}

// Advance moves the connection to state s. States never move backwards.
func (c *Connection) Advance(s ConnectionState) {
	if s > c.State {
		c.State = s
	}
}

// Involves reports whether the connection touches part index i.
func (c *Connection) Involves(i int) bool {
	return c.A.Part == i || c.B.Part == i
}
