package models

// Transition describes a single pass of the ball
type Transition struct {
	// Pass is the 1-based index of the pass
	Pass int

	// SourceLine is the line the ball left
	SourceLine int

	// TargetLine is the line the ball arrived in
	TargetLine int

	// PlayerID is the player who released the ball and walked to the target line
	PlayerID int

	// Oscillated is true when the move was credited as an oscillation
	Oscillated bool
}

// PassFrame is what a renderer receives after each pass
type PassFrame struct {
	Transition

	// Lines holds the player ids of every line, front first
	Lines [][]int

	// BallHolder is the player now holding the ball
	BallHolder int
}
