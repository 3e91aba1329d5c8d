package domain

import (
	"fmt"
	"strings"
)

// Trigger is the activation kind of a runnable.
type Trigger string

const (
	// TriggerPeriodic runnables are activated on a fixed period.
	TriggerPeriodic Trigger = "periodic"
	// TriggerAperiodic runnables are activated by anything but a timer.
	TriggerAperiodic Trigger = "aperiodic"
)

// NormalizeTrigger returns the canonical lowercase form of a trigger kind.
func NormalizeTrigger(trigger string) Trigger {
	return Trigger(strings.ToLower(strings.TrimSpace(trigger)))
}

// Runnable is a named unit of executable behavior of a component.
type Runnable struct {
	Name    string  `json:"name" yaml:"name"`
	Trigger Trigger `json:"trigger" yaml:"trigger"`
	// Period is set only when Trigger is periodic.
	Period string `json:"period,omitempty" yaml:"period,omitempty"`
}

// NewRunnable creates a runnable from already-resolved arguments.
// An empty period means "no period".
func NewRunnable(name, trigger, period string) (Runnable, error) {
	kind := NormalizeTrigger(trigger)
	period = strings.TrimSpace(period)

	if kind == TriggerPeriodic && period == "" {
		return Runnable{}, fmt.Errorf("runnable %q: %w", name, ErrMissingPeriod)
	}
	if kind != TriggerPeriodic && period != "" {
		return Runnable{}, fmt.Errorf("runnable %q (%s): %w", name, kind, ErrUnexpectedPeriod)
	}

	return Runnable{
		Name:    name,
		Trigger: kind,
		Period:  period,
	}, nil
}

// IsPeriodic reports whether the runnable carries a period.
func (r Runnable) IsPeriodic() bool {
	return r.Trigger == TriggerPeriodic
}
