package models

import (
	"time"
)

// DrillInfo describes the parameters a drill was built with
type DrillInfo struct {
	// NumLines is the number of lines in the drill
	NumLines int

	// NumPlayers is the total number of players
	NumPlayers int

	// StartingLine is the line whose front player starts with the ball
	StartingLine int

	// Direction is the starting direction of the ball
	Direction Direction

	// LineSizes holds the player count of every line
	LineSizes []int

	// Perfect is true when no player can ever oscillate
	Perfect bool
}

// Run represents one execution of a drill
type Run struct {
	// ID is the unique identifier for this run
	ID string

	// Drill holds the parameters of the drill being run
	Drill *DrillInfo

	// RequestedPasses is how many passes the caller asked for
	RequestedPasses int

	// CompletedPasses is how many passes were actually made
	CompletedPasses int

	// StartedAt is when the run started
	StartedAt time.Time

	// FinishedAt is when the run stopped
	FinishedAt time.Time
}

// Interrupted reports whether the run stopped before the requested passes
func (r *Run) Interrupted() bool {
	return r.CompletedPasses < r.RequestedPasses
}

// Duration is the wall time the run took
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
