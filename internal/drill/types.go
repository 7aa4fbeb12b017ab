package drill

import (
	"math"

	"github.com/KirkDiggler/passdrill/internal/models"
)

// NoPassLimit asks Predict for an unbounded horizon
const NoPassLimit = math.MaxInt

// Default values used by callers that do not specify a layout
const (
	DefaultNumLines   = 4
	DefaultNumPlayers = 15
)

// Config holds the parameters a drill is built from
type Config struct {
	// NumLines is the number of lines, ignored when LineCounts is set
	NumLines int

	// NumPlayers is the total number of players, ignored when LineCounts is set
	NumPlayers int

	// StartingLine is the line whose front player holds the ball first
	StartingLine int

	// Direction is the first direction of the ball, right when empty
	Direction models.Direction

	// LineCounts maps a line id to its player count. Keys must form a
	// consecutive range starting at 0. When set, lines are filled in key
	// order instead of round-robin.
	LineCounts map[int]int
}
