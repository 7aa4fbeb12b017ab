package models

// Prediction is the analytic forecast of a player's first oscillation
type Prediction struct {
	// PlayerID is the player the prediction was made for
	PlayerID int

	// WillOscillate is true when the oscillation happens within the requested pass limit
	WillOscillate bool

	// Pass is the pass on which the first oscillation happens, NoPass otherwise
	Pass int

	// Lines holds the line the player oscillates in followed by the line it
	// bounces back to, both NoLine when there is no oscillation
	Lines [2]int
}

// NoOscillation builds the prediction returned for a player that never
// oscillates within the limit
func NoOscillation(playerID int) *Prediction {
	return &Prediction{
		PlayerID: playerID,
		Pass:     NoPass,
		Lines:    [2]int{NoLine, NoLine},
	}
}

// PredictionCheck compares a prediction with a hidden run of the drill
type PredictionCheck struct {
	// Drill describes the layout the prediction was made for
	Drill *DrillInfo

	Prediction *Prediction

	// Simulated is false when the drill was not run, e.g. for an unbounded limit
	Simulated bool

	// SimulatedPass is the first oscillation pass observed in the run, NoPass if none
	SimulatedPass int

	// Accurate is true when the run agrees with the prediction
	Accurate bool
}
