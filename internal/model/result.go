package model

// Result is the outcome of one pipeline run over a view document.
type Result struct {
	RunID       string        `json:"run_id"`
	Parts       []*Part       `json:"-"`
	Connections []*Connection `json:"connections"`
	Template    float64       `json:"template"`
	Dropped     []string      `json:"dropped,omitempty"` // parts that could not be built
	Stages      []string      `json:"stages"`
}

// TotalHoles returns the number of holes over all parts.
func (r Result) TotalHoles() int {
	n := 0
	for _, p := range r.Parts {
		n += p.HoleCount()
	}
	return n
}

// TotalAreas returns the number of connection areas over all parts.
func (r Result) TotalAreas() int {
	n := 0
	for _, p := range r.Parts {
		for _, f := range p.Faces {
			n += len(f.Areas)
		}
	}
	return n
}

// ConnectedHoles returns the number of holes that carry a connection id.
func (r Result) ConnectedHoles() int {
	n := 0
	for _, p := range r.Parts {
		for _, f := range p.Faces {
			for _, h := range f.Holes {
				if h.ConnectionID != 0 {
					n++
				}
			}
		}
	}
	return n
}

// PartByName returns the part with the given name, or nil.
func (r Result) PartByName(name string) *Part {
	for _, p := range r.Parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}
