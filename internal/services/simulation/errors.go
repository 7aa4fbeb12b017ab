package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          SimulationError = "config cannot be nil"
	ErrNilInput           SimulationError = "input cannot be nil"
	ErrNilDrillConfig     SimulationError = "drill config cannot be nil"
	ErrNilReporter        SimulationError = "reporter cannot be nil"
	ErrNilClock           SimulationError = "clock cannot be nil"
	ErrNilUUIDGenerator   SimulationError = "UUID generator cannot be nil"
	ErrNilLayoutGenerator SimulationError = "layout generator cannot be nil"
	ErrInvalidPasses      SimulationError = "number of passes must be greater than 0"
	ErrInvalidMaxLines    SimulationError = "maximum number of lines must be at least 2"
	ErrInvalidCoefficient SimulationError = "players coefficient must be at least 2"
	ErrInvalidSweepPasses SimulationError = "confirmation passes cannot be negative"
	ErrInvalidTrials      SimulationError = "number of trials must be greater than 0"
)
