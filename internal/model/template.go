package model

import (
	"math"
	"sort"
	"strconv"
)

// NearestTemplate returns the template thickness closest to t. Ties go to the
// thinner template. With no options it returns t unchanged.
func NearestTemplate(t float64, options []float64) float64 {
	if len(options) == 0 {
		return t
	}
	best := options[0]
	for _, o := range options[1:] {
		d, bd := math.Abs(o-t), math.Abs(best-t)
		if d < bd || (d == bd && o < best) {
			best = o
		}
	}
	return best
}

// FormatTemplate renders a template thickness the way it appears in
// targetType fields.
func FormatTemplate(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// SelectTemplate picks the template thickness for a whole assembly by
// majority vote over the provisional target of every top_corner and
// top_central hole. Ties go to the thinner template; with no votes the
// fallback is returned.
func SelectTemplate(parts []*Part, fallback float64) float64 {
	votes := map[float64]int{}
	for _, p := range parts {
		for _, f := range p.Faces {
			for _, h := range f.Holes {
				if h.Type != HoleTopCorner && h.Type != HoleTopCentral {
					continue
				}
				v, err := strconv.ParseFloat(h.TargetType, 64)
				if err != nil {
					continue
				}
				votes[v]++
			}
		}
	}
	if len(votes) == 0 {
		return fallback
	}
	keys := make([]float64, 0, len(votes))
	for k := range votes {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if votes[k] > votes[best] {
			best = k
		}
	}
	return best
}

// ApplyTemplate sets the target type of every hole to t.
func ApplyTemplate(parts []*Part, t float64) {
	target := FormatTemplate(t)
	for _, p := range parts {
		for _, f := range p.Faces {
			for i := range f.Holes {
				f.Holes[i].TargetType = target
			}
		}
	}
}
