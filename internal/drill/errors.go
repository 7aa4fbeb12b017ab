package drill

// DrillError is a custom error type for drill configuration and state errors
type DrillError string

// Error implements the error interface
func (e DrillError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            DrillError = "config cannot be nil"
	ErrInvalidLineCount     DrillError = "number of lines must be greater than 1 and at most the number of players"
	ErrInvalidDirection     DrillError = "direction must be 'left' or 'right'"
	ErrInvalidStartingLine  DrillError = "starting line must be less than the number of lines"
	ErrStartingLineTooSmall DrillError = "starting line must have more than one player"
	ErrNonConsecutiveLines  DrillError = "line ids must be consecutive and start at 0"
	ErrInvalidLineSize      DrillError = "number of players in a line must be greater than 0"
	ErrEmptyLine            DrillError = "cannot pass from or to an empty line"
	ErrSelfPass             DrillError = "player cannot pass to their current line"
	ErrInvalidLine          DrillError = "invalid line index"
	ErrInvalidPlayerID      DrillError = "invalid player id"
	ErrInvalidPassLimit     DrillError = "pass limit must be greater than 0"
)
