package drill

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

// Tracker counts passes and oscillations of a drill. Only Pass writes to it.
type Tracker struct {
	passes       int
	oscillations int
}

// Passes returns the number of passes recorded
func (t *Tracker) Passes() int {
	return t.passes
}

// Oscillations returns the number of oscillations recorded across all players
func (t *Tracker) Oscillations() int {
	return t.oscillations
}

func (t *Tracker) recordPass() {
	t.passes++
}

func (t *Tracker) recordOscillation(p *models.Player, pass int) {
	if p.OscillationCount == 0 {
		p.FirstOscillationPass = pass
	}
	p.OscillationCount++
	t.oscillations++
}

// summarize builds the summary for players ordered by id
func (t *Tracker) summarize(players []models.Player) *models.OscillationSummary {
	summary := &models.OscillationSummary{
		TotalPasses:       t.passes,
		TotalOscillations: t.oscillations,
		Players:           make([]*models.PlayerOscillation, 0, len(players)),
	}

	for _, p := range players {
		entry := &models.PlayerOscillation{
			PlayerID:  p.ID,
			Count:     p.OscillationCount,
			FirstPass: models.NoPass,
		}
		if p.OscillationCount > 0 {
			entry.FirstPass = p.FirstOscillationPass
			if t.passes > 0 {
				entry.Percentage = float64(p.OscillationCount) / float64(t.passes) * 100
			}
		}
		summary.Players = append(summary.Players, entry)
	}

	return summary
}

// Summary returns the oscillation standings sorted by player id
func (d *Drill) Summary() *models.OscillationSummary {
	// players are stored by id
	return d.tracker.summarize(d.players)
}
