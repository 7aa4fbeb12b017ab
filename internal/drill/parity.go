package drill

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

// layout is a read-only view of a drill taken as a fresh start: the line
// holding the ball is the starting line and the current direction is the
// starting direction. Before the first pass this is exactly the configured
// drill.
type layout struct {
	sizes []int
	start int
	dir   models.Direction
}

func (d *Drill) layout() layout {
	return layout{
		sizes: d.LineSizes(),
		start: d.lineWithBall,
		dir:   d.direction,
	}
}

// IsPerfect reports whether no player will ever oscillate. A drill is
// perfect when every intermediate line has an even number of players,
// except the starting line which must be odd unless it is an end line.
func (d *Drill) IsPerfect() bool {
	return d.layout().isPerfect()
}

// LineTriggersOscillation reports whether the parity of a line forces a
// player arriving in it to pass back the way it came
func (d *Drill) LineTriggersOscillation(line int) bool {
	return d.layout().triggers(line)
}

// ClosestTriggeringLine finds the triggering line nearest to fromLine. The
// line itself wins, then the closest one in the preferred direction, then
// the closest one the other way. End lines never trigger. Returns
// models.NoLine when no line triggers.
func (d *Drill) ClosestTriggeringLine(searchLeft bool, fromLine int) int {
	return d.layout().closestTriggeringLine(models.DirectionFromLeft(searchLeft), fromLine)
}

func (l layout) numLines() int {
	return len(l.sizes)
}

func (l layout) isIntermediate(line int) bool {
	return line > 0 && line < l.numLines()-1
}

func (l layout) isPerfect() bool {
	for line := 1; line < l.numLines()-1; line++ {
		if l.triggers(line) {
			return false
		}
	}
	return true
}

func (l layout) triggers(line int) bool {
	if !l.isIntermediate(line) {
		return false
	}
	if line == l.start {
		return l.sizes[line]%2 == 0
	}
	return l.sizes[line]%2 == 1
}

func (l layout) closestTriggeringLine(dir models.Direction, from int) int {
	preferred := l.scan(dir, from)
	if l.triggers(from) {
		return from
	}
	if preferred != models.NoLine {
		return preferred
	}
	return l.scan(dir.Opposite(), from)
}

// scan walks away from a line over the intermediate lines
func (l layout) scan(dir models.Direction, from int) int {
	for line := from + dir.Step(); l.isIntermediate(line); line += dir.Step() {
		if l.triggers(line) {
			return line
		}
	}
	return models.NoLine
}
