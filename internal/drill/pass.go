package drill

import (
	"fmt"

	"github.com/KirkDiggler/passdrill/internal/models"
)

// Pass hands the ball from the front of the line with the ball to the
// adjacent line in the current direction. The releasing player walks to the
// back of the receiving line. passIndex is recorded as the pass of the
// player's first oscillation when the move sends it back to the line it
// came from.
func (d *Drill) Pass(passIndex int) (*models.Transition, error) {
	source := d.lineWithBall

	// the ball bounces back into the formation at either end
	direction := bounce(d.numLines, source, d.direction)
	target := source + direction.Step()

	if target < 0 || target >= d.numLines {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLine, target)
	}
	if len(d.lines[source]) == 0 {
		return nil, fmt.Errorf("%w: line %d is passing to no one", ErrEmptyLine, source)
	}
	if len(d.lines[target]) == 0 {
		return nil, fmt.Errorf("%w: line %d is receiving from no one", ErrEmptyLine, target)
	}
	if target == source {
		return nil, ErrSelfPass
	}

	d.direction = direction

	pid := d.lines[source][0]
	player := &d.players[pid]

	d.lines[source] = d.lines[source][1:]
	d.lines[target] = append(d.lines[target], pid)
	player.HasBall = false
	d.lineWithBall = target
	d.players[d.lines[target][0]].HasBall = true

	oscillated := !d.IsEndLine(source) && player.PreviousLine == target
	if oscillated {
		d.tracker.recordOscillation(player, passIndex)
		d.hasOscillators = true
	}

	player.PreviousLine = source
	player.CurrLine = target
	d.tracker.recordPass()

	return &models.Transition{
		Pass:       passIndex,
		SourceLine: source,
		TargetLine: target,
		PlayerID:   pid,
		Oscillated: oscillated,
	}, nil
}

// Run makes totalPasses passes without rendering, numbering them after the
// passes already made
func (d *Drill) Run(totalPasses int) error {
	for i := 0; i < totalPasses; i++ {
		if _, err := d.Pass(d.PassCount() + 1); err != nil {
			return err
		}
	}
	return nil
}
