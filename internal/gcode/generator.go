// Package gcode writes drilling programs for the holes of a part, one
// program per face, and reads them back for verification.
package gcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/DowelMap/internal/model"
)

// Generator produces drilling GCode from the holes of a part.
type Generator struct {
	Settings model.Settings
	profile  model.GCodeProfile
}

func New(settings model.Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetProfile(settings.GCodeProfile),
	}
}

// FaceProgram is the drilling program for one face of a part. The face
// origin is the machine origin and Z0 is the face surface.
type FaceProgram struct {
	Part  string
	Side  model.FaceSide
	Holes int
	Code  string
}

// FileName returns a file name for the program, numbered by part index.
func (fp FaceProgram) FileName(partIndex int) string {
	name := strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, fp.Part)
	return fmt.Sprintf("%02d_%s_%s.nc", partIndex, name, fp.Side)
}

// GeneratePart produces one program per face that carries holes.
func (g *Generator) GeneratePart(part *model.Part) []FaceProgram {
	var programs []FaceProgram
	for _, face := range part.Faces {
		if len(face.Holes) == 0 {
			continue
		}
		programs = append(programs, FaceProgram{
			Part:  part.Name,
			Side:  face.Side,
			Holes: len(face.Holes),
			Code:  g.GenerateFace(part, face),
		})
	}
	return programs
}

// GenerateAll produces the programs of every part in the result.
func (g *Generator) GenerateAll(result model.Result) [][]FaceProgram {
	var all [][]FaceProgram
	for _, part := range result.Parts {
		all = append(all, g.GeneratePart(part))
	}
	return all
}

// GenerateFace produces the drilling program for a single face.
func (g *Generator) GenerateFace(part *model.Part, face *model.Face) string {
	var b strings.Builder

	g.writeHeader(&b, part, face)
	for i, idx := range drillOrder(face.Holes) {
		g.writeHole(&b, part, face.Holes[idx], i+1)
	}
	g.writeFooter(&b)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, part *model.Part, face *model.Face) {
	p := g.profile

	b.WriteString(g.comment(fmt.Sprintf("DowelMap drilling: %s, face %s", part.Name, face.Side)))
	b.WriteString(g.comment(fmt.Sprintf("Part: %g x %g x %g mm", part.Length, part.Height, part.Thickness)))
	b.WriteString(g.comment(fmt.Sprintf("Face: %g x %g mm, %d holes", face.Width, face.Height, len(face.Holes))))
	b.WriteString(g.comment(fmt.Sprintf("Plunge: %.0f mm/min, Peck: %.1fmm", g.Settings.PlungeRate, g.Settings.PeckDepth)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(g.comment("=== Job complete ==="))
	for _, code := range p.EndCode {
		b.WriteString(strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ)) + "\n")
	}
	// Most end blocks already stop the spindle.
	if p.SpindleStop != "" && !containsCode(p.EndCode, p.SpindleStop) {
		b.WriteString(p.SpindleStop + "\n")
	}
}

// writeHole emits rapid, plunge (in pecks when deeper than PeckDepth),
// optional dwell and retract for one hole.
func (g *Generator) writeHole(b *strings.Builder, part *model.Part, h model.Hole, n int) {
	p := g.profile
	depth := g.holeDepth(part, h)

	label := fmt.Sprintf("Hole %d: %s", n, h.Type)
	if h.ConnectionID != 0 {
		label += fmt.Sprintf(", connection %d", h.ConnectionID)
	}
	b.WriteString(g.comment(fmt.Sprintf("%s, depth %.1fmm, diameter %.1fmm", label, depth, g.holeDiameter(h))))

	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(h.X), g.format(h.Y)))

	for _, d := range peckDepths(depth, g.Settings.PeckDepth) {
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.FeedMove, g.format(-d), g.format(g.Settings.PlungeRate)))
		if d < depth {
			// clear chips above the surface before the next peck
			b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(chipClearance)))
		}
	}
	if p.Dwell != "" && g.Settings.DwellTime > 0 {
		b.WriteString(fmt.Sprintf(p.Dwell+"\n", g.Settings.DwellTime))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
}

// chipClearance is the Z a peck retracts to between plunges.
const chipClearance = 1.0

// peckDepths returns the successive plunge depths ending at depth.
func peckDepths(depth, peck float64) []float64 {
	if peck <= 0 || depth <= peck {
		return []float64{depth}
	}
	n := int(math.Ceil(depth/peck - 1e-9))
	out := make([]float64, 0, n)
	for i := 1; i < n; i++ {
		out = append(out, float64(i)*peck)
	}
	return append(out, depth)
}

func (g *Generator) holeDepth(part *model.Part, h model.Hole) float64 {
	if h.Depth > 0 {
		return h.Depth
	}
	return part.HalfThickness
}

func (g *Generator) holeDiameter(h model.Hole) float64 {
	if h.Diameter > 0 {
		return h.Diameter
	}
	return g.Settings.DrillDiameter
}

// drillOrder returns hole indices in nearest-neighbour order starting from
// the face origin.
func drillOrder(holes []model.Hole) []int {
	order := make([]int, 0, len(holes))
	done := make([]bool, len(holes))
	x, y := 0.0, 0.0
	for len(order) < len(holes) {
		best, bestDist := -1, math.Inf(1)
		for i, h := range holes {
			if done[i] {
				continue
			}
			if d := h.DistanceTo(x, y); d < bestDist {
				best, bestDist = i, d
			}
		}
		done[best] = true
		order = append(order, best)
		x, y = holes[best].X, holes[best].Y
	}
	return order
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if strings.TrimSpace(c) == code {
			return true
		}
	}
	return false
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}
