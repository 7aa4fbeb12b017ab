package drill

import (
	"testing"

	"github.com/KirkDiggler/passdrill/internal/models"
	"github.com/stretchr/testify/suite"
)

type DrillTestSuite struct {
	suite.Suite

	// 4 lines, 10 players, ball starts in line 0 moving right
	drill *Drill
}

func (s *DrillTestSuite) SetupTest() {
	d, err := New(&Config{
		NumLines:     4,
		NumPlayers:   10,
		StartingLine: 0,
		Direction:    models.DirectionRight,
	})
	s.Require().NoError(err)
	s.drill = d
}

func TestDrillTestSuite(t *testing.T) {
	suite.Run(t, new(DrillTestSuite))
}

func (s *DrillTestSuite) TestNewFillsRoundRobin() {
	s.Equal(4, s.drill.NumLines())
	s.Equal(10, s.drill.NumPlayers())
	s.Equal([][]int{{0, 4, 8}, {1, 5, 9}, {2, 6}, {3, 7}}, s.drill.Lines())
	s.Equal([]int{3, 3, 2, 2}, s.drill.LineSizes())

	s.Equal(0, s.drill.LineWithBall())
	s.Equal(0, s.drill.BallHolder())
	s.Equal(0, s.drill.PassCount())
	s.False(s.drill.HasOscillators())

	for id := 0; id < 10; id++ {
		p, err := s.drill.Player(id)
		s.Require().NoError(err)
		s.Equal(id, p.ID)
		s.Equal(id%4, p.CurrLine)
		s.Equal(models.NoLine, p.PreviousLine)
		s.Equal(models.NoPass, p.FirstOscillationPass)
		s.Equal(id == 0, p.HasBall)
	}
}

func (s *DrillTestSuite) TestNewFromLineCounts() {
	d, err := New(&Config{
		StartingLine: 1,
		Direction:    models.DirectionLeft,
		LineCounts:   map[int]int{2: 1, 0: 5, 3: 3, 1: 5},
	})
	s.Require().NoError(err)

	s.Equal(4, d.NumLines())
	s.Equal(14, d.NumPlayers())
	s.Equal([]int{5, 5, 1, 3}, d.LineSizes())

	line, err := d.Line(1)
	s.Require().NoError(err)
	s.Equal([]int{5, 6, 7, 8, 9}, line)

	s.Equal(5, d.BallHolder())
	s.Equal(models.DirectionLeft, d.Direction())
	s.Equal(models.DirectionLeft, d.StartDirection())
}

func (s *DrillTestSuite) TestNewDefaultsDirectionToRight() {
	d, err := New(&Config{NumLines: 3, NumPlayers: 6})
	s.Require().NoError(err)
	s.Equal(models.DirectionRight, d.Direction())
}

func (s *DrillTestSuite) TestNewRejectsInvalidConfig() {
	testCases := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "one line", cfg: &Config{NumLines: 1, NumPlayers: 4}, err: ErrInvalidLineCount},
		{name: "more lines than players", cfg: &Config{NumLines: 5, NumPlayers: 4}, err: ErrInvalidLineCount},
		{name: "bad direction", cfg: &Config{NumLines: 2, NumPlayers: 4, Direction: "up"}, err: ErrInvalidDirection},
		{name: "starting line out of range", cfg: &Config{NumLines: 2, NumPlayers: 4, StartingLine: 2}, err: ErrInvalidStartingLine},
		{name: "negative starting line", cfg: &Config{NumLines: 2, NumPlayers: 4, StartingLine: -1}, err: ErrInvalidStartingLine},
		{name: "single player starting line", cfg: &Config{NumLines: 4, NumPlayers: 5, StartingLine: 1}, err: ErrStartingLineTooSmall},
		{name: "non consecutive keys", cfg: &Config{LineCounts: map[int]int{0: 2, 2: 2}}, err: ErrNonConsecutiveLines},
		{name: "keys not starting at zero", cfg: &Config{LineCounts: map[int]int{1: 2, 2: 2}}, err: ErrNonConsecutiveLines},
		{name: "empty line", cfg: &Config{LineCounts: map[int]int{0: 2, 1: 0}}, err: ErrInvalidLineSize},
		{name: "single line config", cfg: &Config{LineCounts: map[int]int{0: 4}}, err: ErrInvalidLineCount},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d, err := New(tc.cfg)
			s.ErrorIs(err, tc.err)
			s.Nil(d)
		})
	}
}

func (s *DrillTestSuite) TestAccessorsRejectOutOfRange() {
	_, err := s.drill.Player(10)
	s.ErrorIs(err, ErrInvalidPlayerID)

	_, err = s.drill.Player(-1)
	s.ErrorIs(err, ErrInvalidPlayerID)

	_, err = s.drill.Line(4)
	s.ErrorIs(err, ErrInvalidLine)
}

func (s *DrillTestSuite) TestLinesReturnsCopy() {
	lines := s.drill.Lines()
	lines[0][0] = 99

	line, err := s.drill.Line(0)
	s.Require().NoError(err)
	s.Equal(0, line[0])
}

func (s *DrillTestSuite) TestInfo() {
	info := s.drill.Info()
	s.Equal(&models.DrillInfo{
		NumLines:     4,
		NumPlayers:   10,
		StartingLine: 0,
		Direction:    models.DirectionRight,
		LineSizes:    []int{3, 3, 2, 2},
		Perfect:      false,
	}, info)
}
