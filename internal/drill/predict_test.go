package drill

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/passdrill/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      *Config
		expected map[int]*models.Prediction
	}{
		{
			name: "4 lines 10 players from line 0",
			cfg:  &Config{NumLines: 4, NumPlayers: 10, StartingLine: 0, Direction: models.DirectionRight},
			expected: map[int]*models.Prediction{
				0: {PlayerID: 0, WillOscillate: true, Pass: 12, Lines: [2]int{1, 0}},
				1: {PlayerID: 1, WillOscillate: true, Pass: 38, Lines: [2]int{1, 2}},
				3: {PlayerID: 3, WillOscillate: true, Pass: 20, Lines: [2]int{1, 2}},
				6: {PlayerID: 6, WillOscillate: true, Pass: 14, Lines: [2]int{1, 2}},
				9: {PlayerID: 9, WillOscillate: true, Pass: 44, Lines: [2]int{1, 2}},
			},
		},
		{
			name: "5 lines 12 players from an even middle line",
			cfg:  &Config{NumLines: 5, NumPlayers: 12, StartingLine: 2, Direction: models.DirectionLeft},
			expected: map[int]*models.Prediction{
				2:  {PlayerID: 2, WillOscillate: true, Pass: 12, Lines: [2]int{1, 2}},
				3:  {PlayerID: 3, WillOscillate: true, Pass: 37, Lines: [2]int{2, 3}},
				6:  {PlayerID: 6, WillOscillate: true, Pass: 9, Lines: [2]int{2, 1}},
				11: {PlayerID: 11, WillOscillate: true, Pass: 50, Lines: [2]int{1, 0}},
			},
		},
		{
			name: "6 lines 20 players from a middle line",
			cfg:  &Config{NumLines: 6, NumPlayers: 20, StartingLine: 3, Direction: models.DirectionRight},
			expected: map[int]*models.Prediction{
				3:  {PlayerID: 3, WillOscillate: true, Pass: 14, Lines: [2]int{4, 3}},
				4:  {PlayerID: 4, WillOscillate: true, Pass: 52, Lines: [2]int{4, 5}},
				9:  {PlayerID: 9, WillOscillate: true, Pass: 20, Lines: [2]int{2, 3}},
				14: {PlayerID: 14, WillOscillate: true, Pass: 116, Lines: [2]int{2, 1}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := New(tc.cfg)
			require.NoError(t, err)

			for pid, expected := range tc.expected {
				actual, err := d.Predict(pid, NoPassLimit)
				require.NoError(t, err)
				assert.Equal(t, expected, actual, "player %d", pid)
			}
		})
	}
}

func TestPredictPerfectDrill(t *testing.T) {
	d, err := New(&Config{NumLines: 4, NumPlayers: 8})
	require.NoError(t, err)

	for pid := 0; pid < 8; pid++ {
		actual, err := d.Predict(pid, NoPassLimit)
		require.NoError(t, err)
		assert.Equal(t, models.NoOscillation(pid), actual)
	}
}

func TestPredictPassLimit(t *testing.T) {
	d, err := New(&Config{NumLines: 4, NumPlayers: 10})
	require.NoError(t, err)

	within, err := d.Predict(0, 12)
	require.NoError(t, err)
	assert.True(t, within.WillOscillate)
	assert.Equal(t, 12, within.Pass)

	beyond, err := d.Predict(0, 11)
	require.NoError(t, err)
	assert.Equal(t, models.NoOscillation(0), beyond)
}

func TestPredictRejectsInvalidInput(t *testing.T) {
	d, err := New(&Config{NumLines: 4, NumPlayers: 10})
	require.NoError(t, err)

	_, err = d.Predict(10, NoPassLimit)
	assert.ErrorIs(t, err, ErrInvalidPlayerID)

	_, err = d.Predict(-1, NoPassLimit)
	assert.ErrorIs(t, err, ErrInvalidPlayerID)

	_, err = d.Predict(0, 0)
	assert.ErrorIs(t, err, ErrInvalidPassLimit)
}

func TestPredictDoesNotMutate(t *testing.T) {
	d, err := New(&Config{NumLines: 5, NumPlayers: 12, StartingLine: 2})
	require.NoError(t, err)
	before := d.Lines()

	for pid := 0; pid < d.NumPlayers(); pid++ {
		_, err := d.Predict(pid, NoPassLimit)
		require.NoError(t, err)
	}

	assert.Equal(t, before, d.Lines())
	assert.Equal(t, 0, d.PassCount())
	assert.Equal(t, 2, d.LineWithBall())
}

// Every layout of up to 5 lines with 1 to 3 players per line, from every
// valid starting line in both directions: the prediction must match the pass
// of the first oscillation recorded by running the drill.
func TestPredictMatchesSimulation(t *testing.T) {
	for numLines := 2; numLines <= 5; numLines++ {
		for _, sizes := range layouts(numLines, 3) {
			for start := 0; start < numLines; start++ {
				if sizes[start] < 2 {
					continue
				}
				for _, dir := range []models.Direction{models.DirectionLeft, models.DirectionRight} {
					counts := make(map[int]int, numLines)
					total := 0
					for i, size := range sizes {
						counts[i] = size
						total += size
					}

					name := fmt.Sprintf("%v/start=%d/%s", sizes, start, dir)
					d, err := New(&Config{LineCounts: counts, StartingLine: start, Direction: dir})
					require.NoError(t, err, name)

					predictions := make([]*models.Prediction, total)
					for pid := range predictions {
						predictions[pid], err = d.Predict(pid, NoPassLimit)
						require.NoError(t, err, name)
					}

					require.NoError(t, d.Run(6*total*numLines+50), name)

					for pid, prediction := range predictions {
						p, err := d.Player(pid)
						require.NoError(t, err)
						require.Equal(t, p.FirstOscillationPass, prediction.Pass, "%s player %d", name, pid)
						require.Equal(t, p.HasOscillated(), prediction.WillOscillate, "%s player %d", name, pid)
					}
				}
			}
		}
	}
}

// layouts lists every combination of numLines line sizes between 1 and maxSize
func layouts(numLines, maxSize int) [][]int {
	if numLines == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, rest := range layouts(numLines-1, maxSize) {
		for size := 1; size <= maxSize; size++ {
			out = append(out, append(append([]int(nil), rest...), size))
		}
	}
	return out
}
