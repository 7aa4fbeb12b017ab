package models

// NoLine marks a line reference that has not been set yet
const NoLine = -1

// NoPass marks a pass reference that has not happened yet
const NoPass = -1

// Player represents a participant standing in one of the drill lines
type Player struct {
	// ID is the stable identifier of the player, also its index in the drill
	ID int

	// CurrLine is the index of the line the player is standing in
	CurrLine int

	// PreviousLine is the line the player stood in before its last move,
	// NoLine if the player never moved
	PreviousLine int

	// HasBall is true for the single player holding the ball
	HasBall bool

	// OscillationCount is how many times the player passed back to the line it came from
	OscillationCount int

	// FirstOscillationPass is the pass of the first oscillation, NoPass if none
	FirstOscillationPass int
}

// NewPlayer creates a player standing in the given line
func NewPlayer(id, line int) Player {
	return Player{
		ID:                   id,
		CurrLine:             line,
		PreviousLine:         NoLine,
		FirstOscillationPass: NoPass,
	}
}

// HasOscillated reports whether the player was ever credited with an oscillation
func (p *Player) HasOscillated() bool {
	return p.OscillationCount > 0
}
