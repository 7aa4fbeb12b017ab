package drill

import (
	"github.com/KirkDiggler/passdrill/internal/models"
)

func (s *DrillTestSuite) TestPassScenario() {
	// pass 1: player 0 walks from line 0 to line 1
	tr, err := s.drill.Pass(1)
	s.Require().NoError(err)
	s.Equal(&models.Transition{Pass: 1, SourceLine: 0, TargetLine: 1, PlayerID: 0}, tr)
	s.Equal([][]int{{4, 8}, {1, 5, 9, 0}, {2, 6}, {3, 7}}, s.drill.Lines())
	s.Equal(1, s.drill.LineWithBall())
	s.Equal(1, s.drill.BallHolder())

	// pass 2
	_, err = s.drill.Pass(2)
	s.Require().NoError(err)
	s.Equal([][]int{{4, 8}, {5, 9, 0}, {2, 6, 1}, {3, 7}}, s.drill.Lines())
	s.Equal(2, s.drill.BallHolder())

	// pass 3
	_, err = s.drill.Pass(3)
	s.Require().NoError(err)
	s.Equal([][]int{{4, 8}, {5, 9, 0}, {6, 1}, {3, 7, 2}}, s.drill.Lines())
	s.Equal(3, s.drill.BallHolder())
	s.Equal(models.DirectionRight, s.drill.Direction())

	// pass 4 bounces off the last line
	tr, err = s.drill.Pass(4)
	s.Require().NoError(err)
	s.Equal([][]int{{4, 8}, {5, 9, 0}, {6, 1, 3}, {7, 2}}, s.drill.Lines())
	s.Equal(6, s.drill.BallHolder())
	s.Equal(models.DirectionLeft, s.drill.Direction())
	s.False(tr.Oscillated)

	p, err := s.drill.Player(3)
	s.Require().NoError(err)
	s.Equal(0, p.OscillationCount)
	s.Equal(3, p.PreviousLine)
	s.Equal(2, p.CurrLine)
	s.False(p.HasBall)

	holder, err := s.drill.Player(6)
	s.Require().NoError(err)
	s.True(holder.HasBall)
	s.Equal(4, s.drill.PassCount())
}

func (s *DrillTestSuite) TestPassRecordsOscillation() {
	// player 0 oscillates between lines 1 and 0 on pass 12
	s.Require().NoError(s.drill.Run(11))
	p, err := s.drill.Player(0)
	s.Require().NoError(err)
	s.Equal(0, p.OscillationCount)
	s.False(s.drill.HasOscillators())

	tr, err := s.drill.Pass(12)
	s.Require().NoError(err)
	s.Equal(&models.Transition{Pass: 12, SourceLine: 1, TargetLine: 0, PlayerID: 0, Oscillated: true}, tr)

	p, err = s.drill.Player(0)
	s.Require().NoError(err)
	s.Equal(1, p.OscillationCount)
	s.Equal(12, p.FirstOscillationPass)
	s.True(s.drill.HasOscillators())
}

func (s *DrillTestSuite) TestPassInvariants() {
	configs := []*Config{
		{NumLines: 4, NumPlayers: 10, StartingLine: 0, Direction: models.DirectionRight},
		{NumLines: 4, NumPlayers: 10, StartingLine: 0, Direction: models.DirectionLeft},
		{NumLines: 5, NumPlayers: 12, StartingLine: 2, Direction: models.DirectionLeft},
		{NumLines: 6, NumPlayers: 20, StartingLine: 5, Direction: models.DirectionRight},
		{NumLines: 2, NumPlayers: 5, StartingLine: 1, Direction: models.DirectionLeft},
		{LineCounts: map[int]int{0: 1, 1: 4, 2: 1, 3: 3, 4: 2}, StartingLine: 1},
	}

	for _, cfg := range configs {
		d, err := New(cfg)
		s.Require().NoError(err)

		for pass := 1; pass <= 300; pass++ {
			before := d.Direction()
			source := d.LineWithBall()

			tr, err := d.Pass(pass)
			s.Require().NoError(err)

			// conservation
			total := 0
			for _, size := range d.LineSizes() {
				total += size
			}
			s.Equal(d.NumPlayers(), total)

			// single ball holder at the front of the ball line
			holders := 0
			for id := 0; id < d.NumPlayers(); id++ {
				p, err := d.Player(id)
				s.Require().NoError(err)
				if p.HasBall {
					holders++
					s.Equal(d.BallHolder(), id)
				}
			}
			s.Equal(1, holders)
			s.Equal(tr.TargetLine, d.LineWithBall())

			// boundary reflection
			if d.IsEndLine(source) {
				if pass > 1 {
					s.Equal(before.Opposite(), d.Direction())
				}
				s.False(tr.Oscillated)
			} else {
				s.Equal(before, d.Direction())
			}
			s.Equal(1, abs(tr.TargetLine-tr.SourceLine))
		}
	}
}

func (s *DrillTestSuite) TestPassFromEndLineIsNeverAnOscillation() {
	// line 0 holds one player, so anyone arriving there is sent straight back
	d, err := New(&Config{
		StartingLine: 1,
		Direction:    models.DirectionLeft,
		LineCounts:   map[int]int{0: 1, 1: 2, 2: 2},
	})
	s.Require().NoError(err)

	for pass := 1; pass <= 100; pass++ {
		tr, err := d.Pass(pass)
		s.Require().NoError(err)
		if d.IsEndLine(tr.SourceLine) {
			s.False(tr.Oscillated)
		}
	}
}

func (s *DrillTestSuite) TestPerfectDrillNeverOscillates() {
	configs := []*Config{
		{NumLines: 4, NumPlayers: 8, StartingLine: 0},
		{NumLines: 4, NumPlayers: 7, StartingLine: 0},
		{NumLines: 3, NumPlayers: 5, StartingLine: 0},
		{NumLines: 2, NumPlayers: 5, StartingLine: 1},
		{LineCounts: map[int]int{0: 3, 1: 2, 2: 3, 3: 4, 4: 1}, StartingLine: 2},
	}

	for _, cfg := range configs {
		d, err := New(cfg)
		s.Require().NoError(err)
		s.Require().True(d.IsPerfect())

		s.Require().NoError(d.Run(1000))
		s.False(d.HasOscillators())
		for _, entry := range d.Summary().Players {
			s.Equal(0, entry.Count)
		}
	}
}

func (s *DrillTestSuite) TestPassRejectsEmptyLines() {
	d := &Drill{
		numLines:     3,
		numPlayers:   2,
		lineWithBall: 0,
		direction:    models.DirectionRight,
		players:      []models.Player{models.NewPlayer(0, 0), models.NewPlayer(1, 0)},
		lines:        [][]int{{0, 1}, {}, {}},
		tracker:      &Tracker{},
	}

	_, err := d.Pass(1)
	s.ErrorIs(err, ErrEmptyLine)
	s.Equal(0, d.PassCount())
	s.Equal(models.DirectionRight, d.Direction())

	d.lineWithBall = 1
	_, err = d.Pass(1)
	s.ErrorIs(err, ErrEmptyLine)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
