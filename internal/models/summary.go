package models

// PlayerOscillation is a player's line in an oscillation summary
type PlayerOscillation struct {
	// PlayerID is the id of the player
	PlayerID int

	// Count is the number of oscillations credited to the player
	Count int

	// FirstPass is the pass of the first oscillation, NoPass if Count is 0
	FirstPass int

	// Percentage is Count relative to the total passes, 0 if Count is 0
	Percentage float64
}

// OscillationSummary represents the oscillation standings of a drill
type OscillationSummary struct {
	// TotalPasses is the number of passes run so far
	TotalPasses int

	// TotalOscillations is the sum of every player's count
	TotalOscillations int

	// Players contains one entry per player sorted by id
	Players []*PlayerOscillation
}

// Oscillators returns the entries with at least one oscillation
func (s *OscillationSummary) Oscillators() []*PlayerOscillation {
	var out []*PlayerOscillation
	for _, p := range s.Players {
		if p.Count > 0 {
			out = append(out, p)
		}
	}
	return out
}
