package simulation

import (
	"github.com/KirkDiggler/passdrill/internal/common/clock"
	"github.com/KirkDiggler/passdrill/internal/common/uuid"
	"github.com/KirkDiggler/passdrill/internal/drill"
	"github.com/KirkDiggler/passdrill/internal/layout"
	"github.com/KirkDiggler/passdrill/internal/models"
	"github.com/KirkDiggler/passdrill/internal/render"
	"github.com/KirkDiggler/passdrill/internal/report"
	log "github.com/sirupsen/logrus"
)

// Config holds configuration for the simulation service
type Config struct {
	// Reporter receives the results of every operation
	Reporter report.Reporter

	// Renderer receives a frame after each pass of RunDrill, frames are skipped when nil
	Renderer render.Renderer

	// Service dependencies
	Clock           clock.Clock
	UUIDGenerator   uuid.Generator
	LayoutGenerator layout.Generator

	// Logger for service events, the standard logger when nil
	Logger log.FieldLogger
}

// RunDrillInput contains parameters for running a drill
type RunDrillInput struct {
	// Config describes the drill to build
	Config *drill.Config

	// TotalPasses is the number of passes to make, drill.NoPassLimit to run until cancelled
	TotalPasses int

	// Verbose reports the oscillations of every player at the end of the run
	Verbose bool
}

// RunDrillOutput contains the result of running a drill
type RunDrillOutput struct {
	Run     *models.Run
	Summary *models.OscillationSummary
}

// PredictOscillationInput contains parameters for predicting an oscillation
type PredictOscillationInput struct {
	// Config describes the drill to build
	Config *drill.Config

	// PlayerID is the player to predict for
	PlayerID int

	// PassLimit bounds the prediction, drill.NoPassLimit for none
	PassLimit int
}

// PredictOscillationOutput contains the result of a prediction
type PredictOscillationOutput struct {
	Check *models.PredictionCheck
}

// FindPerfectDrillsInput contains parameters for the perfect drill search
type FindPerfectDrillsInput struct {
	// MaxLines is the largest line count searched, starting from 2
	MaxLines int

	// PlayersCoefficient bounds the player counts to numLines*PlayersCoefficient
	PlayersCoefficient int

	// Passes confirms each perfect drill with a hidden run when greater than 0
	Passes int
}

// FindPerfectDrillsOutput contains the result of the perfect drill search
type FindPerfectDrillsOutput struct {
	Sweep *models.SweepReport
}

// VerifyPredictorInput contains parameters for verifying the predictor
type VerifyPredictorInput struct {
	// Trials is the number of random layouts to check
	Trials int

	// MaxLines and MaxPlayersPerLine bound the random layouts
	MaxLines          int
	MaxPlayersPerLine int
}

// VerifyPredictorOutput contains the result of a predictor verification
type VerifyPredictorOutput struct {
	Verification *models.VerificationReport
}
