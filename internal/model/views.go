package model

import (
	"sort"
	"strings"
)

// View names of the three orthogonal projections.
const (
	ViewTop     = "top"
	ViewFrontal = "frontal"
	ViewLateral = "lateral"
)

var viewAliases = map[string]string{
	"top":            ViewTop,
	"top view":       ViewTop,
	"vista de cima":  ViewTop,
	"vista superior": ViewTop,
	"superior":       ViewTop,
	"cima":           ViewTop,
	"planta":         ViewTop,
	"frontal":        ViewFrontal,
	"front":          ViewFrontal,
	"front view":     ViewFrontal,
	"vista frontal":  ViewFrontal,
	"frente":         ViewFrontal,
	"lateral":        ViewLateral,
	"side":           ViewLateral,
	"side view":      ViewLateral,
	"vista lateral":  ViewLateral,
	"perfil":         ViewLateral,
}

// aliasesByLength lists the aliases longest first, so "vista superior"
// matches before "superior" when searching inside a longer layer name.
var aliasesByLength = func() []string {
	out := make([]string, 0, len(viewAliases))
	for a := range viewAliases {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// NormalizeViewName maps a view name to one of ViewTop, ViewFrontal or
// ViewLateral. Names that merely contain an alias, such as "Layer 2 -
// Frente", match too. It returns "" for unknown names.
func NormalizeViewName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if v, ok := viewAliases[name]; ok {
		return v
	}
	for _, a := range aliasesByLength {
		if strings.Contains(name, a) {
			return viewAliases[a]
		}
	}
	return ""
}

// Projection is a part's rectangle in one view, in design units.
type Projection struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PartViews collects the projections of one part keyed by view name.
type PartViews struct {
	Name  string
	Views map[string]Projection
}

// ViewDocument is the set of parts described by projections. Parts keep the
// order in which they first appeared.
type ViewDocument struct {
	Parts []PartViews
	index map[string]int
}

// Add records a projection. Names are lower-cased and trimmed; the view name
// must already be normalised.
func (d *ViewDocument) Add(name, view string, p Projection) {
	name = strings.ToLower(strings.TrimSpace(name))
	if d.index == nil {
		d.index = make(map[string]int)
		for i, pv := range d.Parts {
			d.index[pv.Name] = i
		}
	}
	i, ok := d.index[name]
	if !ok {
		i = len(d.Parts)
		d.index[name] = i
		d.Parts = append(d.Parts, PartViews{Name: name, Views: map[string]Projection{}})
	}
	d.Parts[i].Views[view] = p
}

// Len returns the number of distinct parts.
func (d *ViewDocument) Len() int { return len(d.Parts) }
