package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// MoveType represents the type of CNC toolpath movement.
type MoveType int

const (
	MoveRapid   MoveType = iota // G0: rapid positioning
	MoveFeed                    // G1: linear feed in the XY plane
	MovePlunge                  // G1 with Z decreasing: drilling into material
	MoveRetract                 // G0/G1 with Z increasing: leaving the hole
	MoveDwell                   // G4: pause at the current position
)

// GCodeMove represents a single parsed movement from GCode.
type GCodeMove struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
	Dwell    float64 // seconds, for MoveDwell
}

var wordRe = regexp.MustCompile(`([XYZFP])(-?\d+\.?\d*)`)

// ParseGCode parses a GCode string into a slice of structured moves.
// It tracks absolute position state and classifies each G0/G1 command
// by its movement characteristics (rapid, feed, plunge, retract). G4
// dwells are kept as MoveDwell entries.
func ParseGCode(code string) []GCodeMove {
	var moves []GCodeMove

	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0

	for _, line := range strings.Split(code, "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		cmd := strings.Fields(upper)[0]

		words := map[string]float64{}
		for _, m := range wordRe.FindAllStringSubmatch(upper, -1) {
			if val, err := strconv.ParseFloat(m[2], 64); err == nil {
				words[m[1]] = val
			}
		}

		switch cmd {
		case "G0", "G00", "G1", "G01":
		case "G4", "G04":
			moves = append(moves, GCodeMove{
				Type:     MoveDwell,
				FromX:    curX,
				FromY:    curY,
				FromZ:    curZ,
				ToX:      curX,
				ToY:      curY,
				ToZ:      curZ,
				FeedRate: curFeed,
				Dwell:    words["P"],
			})
			continue
		default:
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		if v, ok := words["X"]; ok {
			newX = v
		}
		if v, ok := words["Y"]; ok {
			newY = v
		}
		if v, ok := words["Z"]; ok {
			newZ = v
		}
		if v, ok := words["F"]; ok {
			newFeed = v
		}

		isRapid := cmd == "G0" || cmd == "G00"
		moves = append(moves, GCodeMove{
			Type:     classifyMove(isRapid, curZ, newZ, curX, curY, newX, newY),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})

		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// stripComment removes semicolon and parenthetical comments.
func stripComment(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	for {
		start := strings.Index(line, "(")
		if start < 0 {
			break
		}
		end := strings.Index(line[start:], ")")
		if end < 0 {
			line = line[:start]
			break
		}
		line = line[:start] + line[start+end+1:]
	}
	return strings.TrimSpace(line)
}

// classifyMove determines the MoveType based on movement characteristics.
func classifyMove(isRapid bool, fromZ, toZ, fromX, fromY, toX, toY float64) MoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case isRapid:
		if zDelta > 0 {
			return MoveRetract
		}
		return MoveRapid
	case zDelta < -0.001 && !hasXY:
		return MovePlunge
	case zDelta > 0.001 && !hasXY:
		return MoveRetract
	default:
		return MoveFeed
	}
}

// CountDrills counts drilled holes: runs of plunges at one XY position
// count once, so pecked holes are not counted per peck.
func CountDrills(moves []GCodeMove) int {
	count := 0
	drilled := false
	var lastX, lastY float64
	for _, m := range moves {
		if m.Type != MovePlunge {
			continue
		}
		if drilled && m.ToX == lastX && m.ToY == lastY {
			continue
		}
		count++
		drilled = true
		lastX, lastY = m.ToX, m.ToY
	}
	return count
}

// MaxDepth returns the deepest Z reached below the surface, as a positive
// number.
func MaxDepth(moves []GCodeMove) float64 {
	deepest := 0.0
	for _, m := range moves {
		if -m.ToZ > deepest {
			deepest = -m.ToZ
		}
	}
	return deepest
}
