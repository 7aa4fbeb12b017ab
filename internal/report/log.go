package report

import (
	"fmt"

	"github.com/KirkDiggler/passdrill/internal/models"
	log "github.com/sirupsen/logrus"
)

// HeavyOscillationPercent is the share of passes above which a player's
// oscillations are reported as a warning
const HeavyOscillationPercent = 2.0

// Config holds configuration for the log reporter
type Config struct {
	// Logger receives the report entries, the standard logger when nil
	Logger log.FieldLogger
}

// LogReporter writes reports as logrus entries
type LogReporter struct {
	logger log.FieldLogger
}

// NewLog creates a reporter writing to a logrus logger
func NewLog(cfg *Config) *LogReporter {
	var logger log.FieldLogger = log.StandardLogger()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &LogReporter{
		logger: logger,
	}
}

// ReportDrill implements Reporter
func (r *LogReporter) ReportDrill(info *models.DrillInfo) {
	r.logger.WithFields(log.Fields{
		"lines":      info.NumLines,
		"players":    info.NumPlayers,
		"start_line": info.StartingLine,
		"direction":  info.Direction,
		"line_sizes": info.LineSizes,
		"perfect":    info.Perfect,
	}).Info("Drill parameters")
}

// ReportRun implements Reporter
func (r *LogReporter) ReportRun(run *models.Run) {
	entry := r.logger.WithFields(log.Fields{
		"run_id":    run.ID,
		"requested": run.RequestedPasses,
		"completed": run.CompletedPasses,
		"duration":  run.Duration(),
	})
	if run.Interrupted() {
		entry.Warn("Run interrupted")
		return
	}
	entry.Info("Run complete")
}

// ReportSummary implements Reporter
func (r *LogReporter) ReportSummary(summary *models.OscillationSummary) {
	r.logger.WithField("total_passes", summary.TotalPasses).Info("Total passes")

	for _, p := range summary.Players {
		if p.Count == 0 {
			r.logger.Infof("Player %d did not oscillate.", p.PlayerID)
			continue
		}

		msg := fmt.Sprintf("Player %3d oscillated %4d times (%5.1f%% of the drill). Their first oscillation was on pass %3d.",
			p.PlayerID, p.Count, p.Percentage, p.FirstPass)
		entry := r.logger.WithField("player_id", p.PlayerID)
		if p.Percentage >= HeavyOscillationPercent {
			entry.Warn(msg)
		} else {
			entry.Info(msg)
		}
	}
}

// ReportPrediction implements Reporter
func (r *LogReporter) ReportPrediction(check *models.PredictionCheck) {
	p := check.Prediction
	entry := r.logger.WithField("player_id", p.PlayerID)

	if check.Simulated {
		if check.Accurate {
			entry.Info("Projection accurate.")
		} else {
			entry.Warn("Projection deviated from simulation.")
		}
		if check.SimulatedPass == models.NoPass {
			entry.Infof("Simulation result: player %d did not oscillate.", p.PlayerID)
		} else {
			entry.Infof("Simulation result: player %d's first oscillation was at pass %d.", p.PlayerID, check.SimulatedPass)
		}
	} else {
		entry.Info("Simulation result not available for an unbounded number of passes.")
	}

	if !p.WillOscillate {
		entry.Infof("Projected result: player %d will not oscillate.", p.PlayerID)
		return
	}
	entry.Infof("Projected result: player %d will oscillate between lines %d and %d on pass %d.",
		p.PlayerID, p.Lines[0], p.Lines[1], p.Pass)
}

// ReportSweep implements Reporter
func (r *LogReporter) ReportSweep(sweep *models.SweepReport) {
	for _, result := range sweep.Results {
		entry := r.logger.WithField("lines", result.NumLines)
		if len(result.PlayerCounts) == 0 {
			entry.Warnf("No successful runs for %d lines over players %d to %d.",
				result.NumLines, result.MinPlayers, result.MaxPlayers)
			continue
		}
		for _, players := range result.PlayerCounts {
			entry.Infof("No oscillations for %3d players.", players)
		}
	}

	for _, rng := range sweep.Ranges {
		if rng.FromLines == rng.ToLines {
			r.logger.Infof("Line %d: %d unique player counts result in no oscillations", rng.FromLines, rng.PerfectCount)
			continue
		}
		r.logger.Infof("Lines %d-%d: %d unique player counts result in no oscillations", rng.FromLines, rng.ToLines, rng.PerfectCount)
	}
}

// ReportVerification implements Reporter
func (r *LogReporter) ReportVerification(verification *models.VerificationReport) {
	entry := r.logger.WithFields(log.Fields{
		"trials":  verification.Trials,
		"players": verification.Players,
	})
	if len(verification.Mismatches) == 0 {
		entry.Info("Predictor agrees with the simulation")
		return
	}

	for _, m := range verification.Mismatches {
		r.logger.WithFields(log.Fields{
			"line_sizes": m.Drill.LineSizes,
			"start_line": m.Drill.StartingLine,
			"direction":  m.Drill.Direction,
			"player_id":  m.Prediction.PlayerID,
			"projected":  m.Prediction.Pass,
			"real":       m.SimulatedPass,
		}).Error("Projection deviated from simulation")
	}
	entry.Warnf("%d predictions deviated", len(verification.Mismatches))
}
