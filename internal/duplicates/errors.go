package duplicates

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMode is returned when the duplication type is not RPA or COLLAB
	ErrUnknownMode = errors.New("unknown duplication type")

	// ErrMissingDataset is returned when RPA mode is requested without an RPA inventory
	ErrMissingDataset = errors.New("missing dataset")

	// ErrThresholdRange is returned when a threshold falls outside [MinThreshold, MaxThreshold]
	ErrThresholdRange = errors.New("threshold out of range")
)

// ConfigurationError reports a run that cannot start because of how it was configured
type ConfigurationError struct {
	Setting string
	Value   string
	Err     error
}

func (e *ConfigurationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownMode):
		return fmt.Sprintf("unexpected value for %s - %s; value=%s", e.Setting, joinModes(), e.Value)
	case errors.Is(e.Err, ErrMissingDataset):
		return fmt.Sprintf("no %s specified for duplication type of %s", e.Setting, e.Value)
	default:
		return fmt.Sprintf("invalid %s %q: %v", e.Setting, e.Value, e.Err)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError reports an argument outside its accepted range
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unexpected %s value: %d: expected %d-%d", e.Field, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Unwrap() error {
	return ErrThresholdRange
}
