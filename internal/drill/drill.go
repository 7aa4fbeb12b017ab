package drill

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/passdrill/internal/models"
)

// Drill owns the lines of a passing drill and the ball position.
//
// Players live in a flat slice indexed by id and lines hold ids, so a
// player's CurrLine and the line slices are only ever changed together
// inside Pass. A Drill is not safe for concurrent use.
type Drill struct {
	numLines     int
	numPlayers   int
	startingLine int
	lineWithBall int

	startDirection models.Direction
	direction      models.Direction

	players []models.Player
	lines   [][]int

	tracker        *Tracker
	hasOscillators bool
}

// New validates the config and builds a drill in its starting configuration
func New(cfg *Config) (*Drill, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	direction := cfg.Direction
	if direction == "" {
		direction = models.DirectionRight
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDirection, direction)
	}

	var (
		lines   [][]int
		players []models.Player
		err     error
	)
	if len(cfg.LineCounts) > 0 {
		lines, players, err = fillFromCounts(cfg.LineCounts)
		if err != nil {
			return nil, err
		}
	} else {
		if cfg.NumLines <= 1 || cfg.NumLines > cfg.NumPlayers {
			return nil, fmt.Errorf("%w: %d lines for %d players", ErrInvalidLineCount, cfg.NumLines, cfg.NumPlayers)
		}
		lines, players = fillRoundRobin(cfg.NumLines, cfg.NumPlayers)
	}

	if cfg.StartingLine < 0 || cfg.StartingLine >= len(lines) {
		return nil, fmt.Errorf("%w: line %d of %d", ErrInvalidStartingLine, cfg.StartingLine, len(lines))
	}
	if len(lines[cfg.StartingLine]) <= 1 {
		return nil, fmt.Errorf("%w: line %d has %d", ErrStartingLineTooSmall, cfg.StartingLine, len(lines[cfg.StartingLine]))
	}

	players[lines[cfg.StartingLine][0]].HasBall = true

	return &Drill{
		numLines:       len(lines),
		numPlayers:     len(players),
		startingLine:   cfg.StartingLine,
		lineWithBall:   cfg.StartingLine,
		startDirection: direction,
		direction:      direction,
		players:        players,
		lines:          lines,
		tracker:        &Tracker{},
	}, nil
}

// fillRoundRobin deals players into rows of numLines, left line first
func fillRoundRobin(numLines, numPlayers int) ([][]int, []models.Player) {
	lines := make([][]int, numLines)
	players := make([]models.Player, 0, numPlayers)

	for pid := 0; pid < numPlayers; pid++ {
		line := pid % numLines
		lines[line] = append(lines[line], pid)
		players = append(players, models.NewPlayer(pid, line))
	}

	return lines, players
}

// fillFromCounts fills lines in key order, numbering players line by line
func fillFromCounts(counts map[int]int) ([][]int, []models.Player, error) {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for i, k := range keys {
		if k != i {
			return nil, nil, fmt.Errorf("%w: got %v", ErrNonConsecutiveLines, keys)
		}
		if counts[k] <= 0 {
			return nil, nil, fmt.Errorf("%w: line %d has %d", ErrInvalidLineSize, k, counts[k])
		}
	}
	if len(keys) <= 1 {
		return nil, nil, fmt.Errorf("%w: %d lines", ErrInvalidLineCount, len(keys))
	}

	lines := make([][]int, len(keys))
	var players []models.Player
	pid := 0
	for _, k := range keys {
		for i := 0; i < counts[k]; i++ {
			lines[k] = append(lines[k], pid)
			players = append(players, models.NewPlayer(pid, k))
			pid++
		}
	}

	return lines, players, nil
}

// NumLines returns the number of lines
func (d *Drill) NumLines() int {
	return d.numLines
}

// NumPlayers returns the number of players
func (d *Drill) NumPlayers() int {
	return d.numPlayers
}

// StartingLine returns the line the ball started in
func (d *Drill) StartingLine() int {
	return d.startingLine
}

// StartDirection returns the configured starting direction
func (d *Drill) StartDirection() models.Direction {
	return d.startDirection
}

// Direction returns the direction of the last pass, or the starting
// direction before any pass
func (d *Drill) Direction() models.Direction {
	return d.direction
}

// LineWithBall returns the line whose front player holds the ball
func (d *Drill) LineWithBall() int {
	return d.lineWithBall
}

// BallHolder returns the id of the player holding the ball
func (d *Drill) BallHolder() int {
	return d.lines[d.lineWithBall][0]
}

// HasOscillators reports whether any oscillation was recorded
func (d *Drill) HasOscillators() bool {
	return d.hasOscillators
}

// PassCount returns the number of passes made so far
func (d *Drill) PassCount() int {
	return d.tracker.Passes()
}

// IsEndLine reports whether the line is one of the two boundary lines
func (d *Drill) IsEndLine(line int) bool {
	return line == 0 || line == d.numLines-1
}

// Player returns a copy of the player with the given id
func (d *Drill) Player(id int) (models.Player, error) {
	if id < 0 || id >= d.numPlayers {
		return models.Player{}, fmt.Errorf("%w: %d", ErrInvalidPlayerID, id)
	}
	return d.players[id], nil
}

// Line returns a copy of the player ids in a line, front first
func (d *Drill) Line(line int) ([]int, error) {
	if line < 0 || line >= d.numLines {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLine, line)
	}
	return append([]int(nil), d.lines[line]...), nil
}

// Lines returns a copy of every line
func (d *Drill) Lines() [][]int {
	out := make([][]int, d.numLines)
	for i, line := range d.lines {
		out[i] = append([]int(nil), line...)
	}
	return out
}

// LineSizes returns the player count of every line
func (d *Drill) LineSizes() []int {
	sizes := make([]int, d.numLines)
	for i, line := range d.lines {
		sizes[i] = len(line)
	}
	return sizes
}

// Info describes the drill's parameters and current layout
func (d *Drill) Info() *models.DrillInfo {
	return &models.DrillInfo{
		NumLines:     d.numLines,
		NumPlayers:   d.numPlayers,
		StartingLine: d.startingLine,
		Direction:    d.startDirection,
		LineSizes:    d.LineSizes(),
		Perfect:      d.IsPerfect(),
	}
}

// locate finds the line of a player and its rank within that line
func (d *Drill) locate(id int) (line, rank int, err error) {
	line = d.players[id].CurrLine
	for i, pid := range d.lines[line] {
		if pid == id {
			return line, i, nil
		}
	}
	return models.NoLine, 0, fmt.Errorf("%w: player %d not found in line %d", ErrInvalidPlayerID, id, line)
}
