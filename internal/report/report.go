package report

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_report.go github.com/KirkDiggler/passdrill/internal/report Reporter

// Reporter receives the structured results of drills. Implementations own
// all presentation.
type Reporter interface {
	// ReportDrill describes the drill about to be run
	ReportDrill(info *models.DrillInfo)

	// ReportRun describes a finished run
	ReportRun(run *models.Run)

	// ReportSummary lists the oscillations of every player
	ReportSummary(summary *models.OscillationSummary)

	// ReportPrediction gives a prediction and how it compared to a hidden run
	ReportPrediction(check *models.PredictionCheck)

	// ReportSweep lists the drills that never oscillate
	ReportSweep(sweep *models.SweepReport)

	// ReportVerification gives the outcome of a predictor verification
	ReportVerification(verification *models.VerificationReport)
}
