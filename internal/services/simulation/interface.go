package simulation

import "context"

// Service defines the interface for drill operations
type Service interface {
	// RunDrill builds a drill and makes the requested passes, reporting the run
	RunDrill(ctx context.Context, input *RunDrillInput) (*RunDrillOutput, error)

	// PredictOscillation forecasts a player's first oscillation and checks it against a hidden run
	PredictOscillation(ctx context.Context, input *PredictOscillationInput) (*PredictOscillationOutput, error)

	// FindPerfectDrills searches the round-robin drills in which nobody ever oscillates
	FindPerfectDrills(ctx context.Context, input *FindPerfectDrillsInput) (*FindPerfectDrillsOutput, error)

	// VerifyPredictor compares the predictor with hidden runs over random layouts
	VerifyPredictor(ctx context.Context, input *VerifyPredictorInput) (*VerifyPredictorOutput, error)
}
