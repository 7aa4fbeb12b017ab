package models

// PerfectDrills lists the player counts that never oscillate for a line count
type PerfectDrills struct {
	// NumLines is the number of lines searched
	NumLines int

	// MinPlayers and MaxPlayers bound the searched player counts
	MinPlayers int
	MaxPlayers int

	// PlayerCounts holds every perfect player count in ascending order
	PlayerCounts []int
}

// SweepRange groups consecutive line counts sharing the same number of perfect player counts
type SweepRange struct {
	FromLines int
	ToLines   int

	// PerfectCount is the number of perfect player counts for each line count in the range
	PerfectCount int
}

// SweepReport is the outcome of a perfect drill search
type SweepReport struct {
	// Passes is the number of hidden passes used to confirm each candidate, 0 if not confirmed
	Passes int

	Results []*PerfectDrills
	Ranges  []*SweepRange
}

// VerificationReport is the outcome of checking the predictor against random layouts
type VerificationReport struct {
	// Trials is the number of layouts checked
	Trials int

	// Players is the number of player predictions checked
	Players int

	// Mismatches lists every check that disagreed with the run
	Mismatches []*PredictionCheck
}
