package models

// Direction is the way the ball travels along the row of lines
type Direction string

const (
	// DirectionLeft moves the ball towards line 0
	DirectionLeft Direction = "left"

	// DirectionRight moves the ball towards the last line
	DirectionRight Direction = "right"
)

// IsValid reports whether the direction is one of the known values
func (d Direction) IsValid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// IsLeft reports whether the direction points towards line 0
func (d Direction) IsLeft() bool {
	return d == DirectionLeft
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Step returns the line index delta of one hop in this direction
func (d Direction) Step() int {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// DirectionFromLeft converts a "search left" flag into a Direction
func DirectionFromLeft(left bool) Direction {
	if left {
		return DirectionLeft
	}
	return DirectionRight
}
