package layout

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/passdrill/internal/drill"
	"github.com/KirkDiggler/passdrill/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_layout.go github.com/KirkDiggler/passdrill/internal/layout Generator

// Generator produces drill configurations to test the predictor against
type Generator interface {
	// Random returns a layout of 2 to maxLines lines holding 1 to
	// maxPlayersPerLine players each, with a starting line that can hold the ball
	Random(maxLines, maxPlayersPerLine int) *drill.Config
}

// Config for the layout generator
type Config struct {
	// Optional seed for reproducible layouts
	Seed int64
}

// RandomGenerator draws layouts from a seeded source
type RandomGenerator struct {
	random *rand.Rand
}

// New creates a new layout generator
func New(cfg *Config) *RandomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Random implements Generator
func (g *RandomGenerator) Random(maxLines, maxPlayersPerLine int) *drill.Config {
	if maxLines < 2 {
		maxLines = 2
	}
	if maxPlayersPerLine < 2 {
		maxPlayersPerLine = 2
	}

	numLines := 2 + g.random.Intn(maxLines-1)
	counts := make(map[int]int, numLines)
	for line := 0; line < numLines; line++ {
		counts[line] = 1 + g.random.Intn(maxPlayersPerLine)
	}

	// the ball needs someone to stay behind in the starting line
	start := g.random.Intn(numLines)
	if counts[start] < 2 {
		counts[start] = 2 + g.random.Intn(maxPlayersPerLine-1)
	}

	direction := models.DirectionRight
	if g.random.Intn(2) == 0 {
		direction = models.DirectionLeft
	}

	return &drill.Config{
		StartingLine: start,
		Direction:    direction,
		LineCounts:   counts,
	}
}
