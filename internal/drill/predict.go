package drill

import (
	"fmt"

	"github.com/KirkDiggler/passdrill/internal/models"
)

// Predict works out whether and when a player first oscillates without
// running the drill. The drill is read as a fresh start, so it should be
// called before any pass. A prediction past passLimit reports no
// oscillation; use NoPassLimit for an unbounded horizon.
func (d *Drill) Predict(playerID, passLimit int) (*models.Prediction, error) {
	if playerID < 0 || playerID >= d.numPlayers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerID, playerID)
	}
	if passLimit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPassLimit, passLimit)
	}

	line, rank, err := d.locate(playerID)
	if err != nil {
		return nil, err
	}

	return d.layout().predict(playerID, line, rank, passLimit), nil
}

func (l layout) predict(playerID, line, rank, passLimit int) *models.Prediction {
	if l.isPerfect() {
		return models.NoOscillation(playerID)
	}

	// ball travel to the player's line, then the wait for the player to be first
	passes, arrival := l.passesUntilLine(line)
	firstDir := bounce(l.numLines(), line, arrival)
	passes += l.passesUntilFirst(line, rank, firstDir)

	// players in an intermediate line leave in alternating directions
	dir := firstDir
	if l.isIntermediate(line) && rank%2 == 1 {
		dir = firstDir.Opposite()
	}

	// the player's first pass; it can never oscillate on this one
	passes++
	pos := sweep{line: line + dir.Step(), dir: dir}

	target := l.closestTriggeringLine(pos.dir, pos.line)
	if target == models.NoLine {
		return models.NoOscillation(playerID)
	}

	for {
		passes += l.passesUntilFirst(pos.line, l.arrivalRank(pos.line), pos.dir) + 1
		if pos.line == target {
			break
		}
		pos = l.advance(pos)
	}

	if passes > passLimit {
		return models.NoOscillation(playerID)
	}

	return &models.Prediction{
		PlayerID:      playerID,
		WillOscillate: true,
		Pass:          passes,
		Lines:         [2]int{target, target - pos.dir.Step()},
	}
}
