package schedulers

import "errors"

var (
	ErrNoProcesses        = errors.New("no processes to schedule")
	ErrInvalidProcess     = errors.New("invalid process")
	ErrDuplicatePID       = errors.New("duplicate pid")
	ErrInvalidTimeQuantum = errors.New("time quantum must be a positive integer")
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
)

// IsValidationError reports whether err comes from rejected input rather
// than a failure of the simulation itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoProcesses) ||
		errors.Is(err, ErrInvalidProcess) ||
		errors.Is(err, ErrDuplicatePID) ||
		errors.Is(err, ErrInvalidTimeQuantum) ||
		errors.Is(err, ErrUnknownAlgorithm)
}
