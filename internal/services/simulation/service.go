package simulation

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/passdrill/internal/common/clock"
	"github.com/KirkDiggler/passdrill/internal/common/uuid"
	"github.com/KirkDiggler/passdrill/internal/drill"
	"github.com/KirkDiggler/passdrill/internal/layout"
	"github.com/KirkDiggler/passdrill/internal/models"
	"github.com/KirkDiggler/passdrill/internal/render"
	"github.com/KirkDiggler/passdrill/internal/report"
	log "github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	reporter        report.Reporter
	renderer        render.Renderer
	clock           clock.Clock
	uuidGenerator   uuid.Generator
	layoutGenerator layout.Generator
	logger          log.FieldLogger
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Reporter == nil {
		return nil, ErrNilReporter
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.LayoutGenerator == nil {
		return nil, ErrNilLayoutGenerator
	}

	var logger log.FieldLogger = log.StandardLogger()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &service{
		reporter:        cfg.Reporter,
		renderer:        cfg.Renderer,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		layoutGenerator: cfg.LayoutGenerator,
		logger:          logger,
	}, nil
}

// RunDrill builds a drill and makes the requested passes. A cancelled context
// stops the run early; the partial run is still reported and returned.
func (s *service) RunDrill(ctx context.Context, input *RunDrillInput) (*RunDrillOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Config == nil {
		return nil, ErrNilDrillConfig
	}

	if input.TotalPasses <= 0 {
		return nil, ErrInvalidPasses
	}

	d, err := drill.New(input.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create drill: %w", err)
	}

	run := &models.Run{
		ID:              s.uuidGenerator.NewID(),
		Drill:           d.Info(),
		RequestedPasses: input.TotalPasses,
		StartedAt:       s.clock.Now(),
	}
	logger := s.logger.WithField("run_id", run.ID)

	s.reporter.ReportDrill(run.Drill)
	if run.Drill.Perfect {
		logger.Debug("No player can oscillate in this drill")
	}

passes:
	for run.CompletedPasses < input.TotalPasses {
		select {
		case <-ctx.Done():
			logger.WithField("pass", run.CompletedPasses).Warn("Run cancelled")
			break passes
		default:
		}

		transition, err := d.Pass(d.PassCount() + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to make pass %d: %w", d.PassCount()+1, err)
		}
		run.CompletedPasses++

		if transition.Oscillated {
			logger.WithFields(log.Fields{
				"pass":      transition.Pass,
				"player_id": transition.PlayerID,
			}).Debug("Player oscillated")
		}

		s.renderPass(logger, d, transition)
	}

	run.FinishedAt = s.clock.Now()
	s.reporter.ReportRun(run)

	summary := d.Summary()
	if input.Verbose {
		s.reporter.ReportSummary(summary)
	}

	return &RunDrillOutput{
		Run:     run,
		Summary: summary,
	}, nil
}

// renderPass hands the frame to the renderer, a failing renderer never stops the drill
func (s *service) renderPass(logger log.FieldLogger, d *drill.Drill, transition *models.Transition) {
	if s.renderer == nil {
		return
	}

	frame := &models.PassFrame{
		Transition: *transition,
		Lines:      d.Lines(),
		BallHolder: d.BallHolder(),
	}
	if err := s.renderer.RenderPass(frame); err != nil {
		logger.WithError(err).WithField("pass", transition.Pass).Error("Failed to render pass")
	}
}

// PredictOscillation forecasts a player's first oscillation. The forecast is
// checked against a hidden run of the drill whenever the run has a bound:
// the pass limit, or the predicted pass when there is no limit.
func (s *service) PredictOscillation(ctx context.Context, input *PredictOscillationInput) (*PredictOscillationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Config == nil {
		return nil, ErrNilDrillConfig
	}

	d, err := drill.New(input.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create drill: %w", err)
	}

	prediction, err := d.Predict(input.PlayerID, input.PassLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to predict oscillation: %w", err)
	}

	check := &models.PredictionCheck{
		Drill:         d.Info(),
		Prediction:    prediction,
		SimulatedPass: models.NoPass,
	}

	s.reporter.ReportDrill(check.Drill)

	passes := input.PassLimit
	if passes == drill.NoPassLimit {
		passes = 0
		if prediction.WillOscillate {
			passes = prediction.Pass
		}
	}

	if passes > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := d.Run(passes); err != nil {
			return nil, fmt.Errorf("failed to run drill: %w", err)
		}

		p, err := d.Player(input.PlayerID)
		if err != nil {
			return nil, err
		}

		check.Simulated = true
		check.SimulatedPass = p.FirstOscillationPass
		check.Accurate = check.SimulatedPass == prediction.Pass
	}

	if check.Simulated && !check.Accurate {
		s.logger.WithFields(log.Fields{
			"player_id": input.PlayerID,
			"predicted": prediction.Pass,
			"simulated": check.SimulatedPass,
		}).Error("Prediction disagrees with the drill")
	}

	s.reporter.ReportPrediction(check)

	return &PredictOscillationOutput{
		Check: check,
	}, nil
}

// FindPerfectDrills searches, for every line count from 2 to MaxLines, the
// player counts that fill the lines round-robin without ever oscillating.
func (s *service) FindPerfectDrills(ctx context.Context, input *FindPerfectDrillsInput) (*FindPerfectDrillsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.MaxLines < 2 {
		return nil, ErrInvalidMaxLines
	}

	if input.PlayersCoefficient < 2 {
		return nil, ErrInvalidCoefficient
	}

	if input.Passes < 0 {
		return nil, ErrInvalidSweepPasses
	}

	sweep := &models.SweepReport{
		Passes: input.Passes,
	}

	for numLines := 2; numLines <= input.MaxLines; numLines++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := &models.PerfectDrills{
			NumLines:     numLines,
			MinPlayers:   numLines + 1,
			MaxPlayers:   numLines * input.PlayersCoefficient,
			PlayerCounts: []int{},
		}

		for numPlayers := result.MinPlayers; numPlayers <= result.MaxPlayers; numPlayers++ {
			perfect, err := s.isPerfectDrill(numLines, numPlayers, input.Passes)
			if err != nil {
				return nil, err
			}
			if perfect {
				result.PlayerCounts = append(result.PlayerCounts, numPlayers)
			}
		}

		sweep.Results = append(sweep.Results, result)
	}

	sweep.Ranges = groupRanges(sweep.Results)
	s.reporter.ReportSweep(sweep)

	return &FindPerfectDrillsOutput{
		Sweep: sweep,
	}, nil
}

func (s *service) isPerfectDrill(numLines, numPlayers, passes int) (bool, error) {
	d, err := drill.New(&drill.Config{
		NumLines:     numLines,
		NumPlayers:   numPlayers,
		StartingLine: 0,
		Direction:    models.DirectionRight,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create drill: %w", err)
	}

	if !d.IsPerfect() {
		return false, nil
	}

	if passes == 0 {
		return true, nil
	}

	if err := d.Run(passes); err != nil {
		return false, fmt.Errorf("failed to run drill: %w", err)
	}

	if d.HasOscillators() {
		s.logger.WithFields(log.Fields{
			"lines":   numLines,
			"players": numPlayers,
		}).Error("Drill classified as perfect oscillated")
		return false, nil
	}

	return true, nil
}

// groupRanges merges consecutive line counts with the same number of perfect player counts
func groupRanges(results []*models.PerfectDrills) []*models.SweepRange {
	var ranges []*models.SweepRange
	for _, result := range results {
		count := len(result.PlayerCounts)
		if n := len(ranges); n > 0 && ranges[n-1].PerfectCount == count {
			ranges[n-1].ToLines = result.NumLines
			continue
		}
		ranges = append(ranges, &models.SweepRange{
			FromLines:    result.NumLines,
			ToLines:      result.NumLines,
			PerfectCount: count,
		})
	}
	return ranges
}

// VerifyPredictor predicts every player of Trials random layouts and runs
// each drill long enough to observe every predicted oscillation.
func (s *service) VerifyPredictor(ctx context.Context, input *VerifyPredictorInput) (*VerifyPredictorOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Trials <= 0 {
		return nil, ErrInvalidTrials
	}

	logger := s.logger.WithField("verification_id", s.uuidGenerator.NewID())
	verification := &models.VerificationReport{}

	for trial := 0; trial < input.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			logger.WithField("trials", verification.Trials).Warn("Verification cancelled")
			break
		}

		cfg := s.layoutGenerator.Random(input.MaxLines, input.MaxPlayersPerLine)
		players, mismatches, err := verifyLayout(cfg)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		verification.Trials++
		verification.Players += players
		verification.Mismatches = append(verification.Mismatches, mismatches...)
	}

	if len(verification.Mismatches) > 0 {
		logger.WithField("mismatches", len(verification.Mismatches)).Error("Predictor disagrees with the drill")
	}

	s.reporter.ReportVerification(verification)

	return &VerifyPredictorOutput{
		Verification: verification,
	}, nil
}

// verifyLayout returns the number of players checked and the predictions
// that a run of the drill contradicts
func verifyLayout(cfg *drill.Config) (int, []*models.PredictionCheck, error) {
	d, err := drill.New(cfg)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create drill: %w", err)
	}
	info := d.Info()

	// long enough for every line to be visited from every rank
	passes := 2 * d.NumPlayers() * d.NumLines()
	predictions := make([]*models.Prediction, d.NumPlayers())
	for id := range predictions {
		predictions[id], err = d.Predict(id, drill.NoPassLimit)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to predict oscillation: %w", err)
		}
		if predictions[id].Pass > passes {
			passes = predictions[id].Pass
		}
	}

	if err := d.Run(passes); err != nil {
		return 0, nil, fmt.Errorf("failed to run drill: %w", err)
	}

	var mismatches []*models.PredictionCheck
	for id, prediction := range predictions {
		p, err := d.Player(id)
		if err != nil {
			return 0, nil, err
		}
		if p.FirstOscillationPass == prediction.Pass {
			continue
		}
		mismatches = append(mismatches, &models.PredictionCheck{
			Drill:         info,
			Prediction:    prediction,
			Simulated:     true,
			SimulatedPass: p.FirstOscillationPass,
		})
	}

	return d.NumPlayers(), mismatches, nil
}
