package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when an add operation would break name uniqueness.
var ErrDuplicateName = errors.New("duplicate name")

// ErrMissingPeriod is returned when a periodic runnable is constructed without a period.
var ErrMissingPeriod = errors.New("periodic runnable requires a period")

// ErrUnexpectedPeriod is returned when a non-periodic runnable is given a period.
var ErrUnexpectedPeriod = errors.New("period is only allowed on periodic runnables")

// ErrInvalidArgument is returned when an add operation receives a nil entity.
var ErrInvalidArgument = errors.New("invalid argument")

// Entity kinds reported by DuplicateNameError.
const (
	KindComponent = "component"
	KindPort      = "port"
	KindRunnable  = "runnable"
)

// DuplicateNameError reports which container rejected which name.
type DuplicateNameError struct {
	Kind  string // component, port or runnable
	Name  string
	Owner string // name of the container that already holds Name
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q already exists in %q", e.Kind, e.Name, e.Owner)
}

// Unwrap allows errors.Is(err, ErrDuplicateName).
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}
