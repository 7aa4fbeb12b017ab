package drill

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

func (s *DrillTestSuite) TestSummaryBeforeAnyPass() {
	summary := s.drill.Summary()

	s.Equal(0, summary.TotalPasses)
	s.Equal(0, summary.TotalOscillations)
	s.Len(summary.Players, 10)
	s.Empty(summary.Oscillators())
	for id, entry := range summary.Players {
		s.Equal(&models.PlayerOscillation{PlayerID: id, FirstPass: models.NoPass}, entry)
	}
}

func (s *DrillTestSuite) TestSummaryAfterRun() {
	s.Require().NoError(s.drill.Run(200))

	summary := s.drill.Summary()
	s.Equal(200, summary.TotalPasses)
	s.Equal(64, summary.TotalOscillations)
	s.Len(summary.Oscillators(), 10)

	counts := []int{8, 5, 5, 6, 8, 8, 6, 5, 8, 5}
	firstPasses := []int{12, 38, 32, 20, 18, 30, 14, 26, 24, 44}
	for id, entry := range summary.Players {
		s.Equal(id, entry.PlayerID)
		s.Equal(counts[id], entry.Count, "player %d", id)
		s.Equal(firstPasses[id], entry.FirstPass, "player %d", id)
		s.InDelta(float64(counts[id])/2, entry.Percentage, 1e-9, "player %d", id)
	}
}

func (s *DrillTestSuite) TestTrackerKeepsFirstPass() {
	tracker := &Tracker{}
	p := models.NewPlayer(0, 1)

	tracker.recordOscillation(&p, 7)
	tracker.recordOscillation(&p, 19)

	s.Equal(2, p.OscillationCount)
	s.Equal(7, p.FirstOscillationPass)
	s.Equal(2, tracker.Oscillations())
	s.Equal(0, tracker.Passes())
}
