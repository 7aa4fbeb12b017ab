package drill

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

// sweep is the position of a travelling player: the line it just arrived
// in and the direction the ball was moving when it got there
type sweep struct {
	line int
	dir  models.Direction
}

// bounce returns the direction the ball leaves a line in. End lines send
// the ball back into the formation, every other line keeps it moving.
func bounce(numLines, line int, dir models.Direction) models.Direction {
	switch line {
	case 0:
		return models.DirectionRight
	case numLines - 1:
		return models.DirectionLeft
	}
	return dir
}

// advance moves a player one line on from where it arrived
func (l layout) advance(s sweep) sweep {
	dir := bounce(l.numLines(), s.line, s.dir)
	return sweep{line: s.line + dir.Step(), dir: dir}
}

// passesUntilLine counts the passes the ball needs to first reach a line
// from the starting line and the direction it is moving on arrival
func (l layout) passesUntilLine(target int) (int, models.Direction) {
	dir := bounce(l.numLines(), l.start, l.dir)
	if target == l.start {
		return 0, dir
	}

	last := l.numLines() - 1
	if dir.IsLeft() {
		if target < l.start {
			return l.start - target, models.DirectionLeft
		}
		// down to line 0 and back up
		return l.start + target, models.DirectionRight
	}

	if target > l.start {
		return target - l.start, models.DirectionRight
	}
	// up to the last line and back down
	return (last - l.start) + (last - target), models.DirectionLeft
}

// passesUntilFirst counts the passes before the player at rank in a line
// is at the front with the ball, counted from a visit of the ball moving
// in dir. Each player ahead leaves on one visit of the ball. Visits to an
// intermediate line alternate direction, so half of the players ahead leave
// each way and an odd one out leaves in dir. A player leaving towards one
// side holds the ball back for a round trip over the lines on that side.
func (l layout) passesUntilFirst(line, rank int, dir models.Direction) int {
	linesLeft := line
	linesRight := l.numLines() - line - 1

	if !l.isIntermediate(line) {
		// an end line is visited once per full sweep
		return rank * (linesLeft + linesRight) * 2
	}

	ahead := linesRight
	if dir.IsLeft() {
		ahead = linesLeft
	}
	extra := rank % 2

	return rank/2*linesLeft*2 + rank/2*linesRight*2 + extra*ahead*2
}

// arrivalRank is the rank a player takes when it arrives at the back of a
// line just before the front player leaves. The starting line is one
// player short once its first player is gone.
func (l layout) arrivalRank(line int) int {
	if line == l.start {
		return l.sizes[line] - 1
	}
	return l.sizes[line]
}
