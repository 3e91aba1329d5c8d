package dsl

import "github.com/aretw0/composer/pkg/domain"

// ComponentBuilder provides a fluent API for configuring a component.
type ComponentBuilder struct {
	component *domain.Component
	builder   *Builder
}

// Sender adds a sender port.
func (c *ComponentBuilder) Sender(name string) *ComponentBuilder {
	return c.Port(name, domain.DirectionSender)
}

// Receiver adds a receiver port.
func (c *ComponentBuilder) Receiver(name string) *ComponentBuilder {
	return c.Port(name, domain.DirectionReceiver)
}

// Port adds a port with an arbitrary direction.
func (c *ComponentBuilder) Port(name string, direction domain.Direction) *ComponentBuilder {
	c.record(c.component.AddPort(domain.NewPort(name, direction)))
	return c
}

// Periodic adds a runnable activated every period.
func (c *ComponentBuilder) Periodic(name, period string) *ComponentBuilder {
	return c.Runnable(name, string(domain.TriggerPeriodic), period)
}

// Aperiodic adds a runnable without a period.
func (c *ComponentBuilder) Aperiodic(name string) *ComponentBuilder {
	return c.Runnable(name, string(domain.TriggerAperiodic), "")
}

// Runnable adds a runnable from raw trigger and period values.
func (c *ComponentBuilder) Runnable(name, trigger, period string) *ComponentBuilder {
	r, err := domain.NewRunnable(name, trigger, period)
	if err != nil {
		c.record(err)
		return c
	}
	c.record(c.component.AddRunnable(r))
	return c
}

// Component ends this component and starts the next one.
func (c *ComponentBuilder) Component(name, componentType string) *ComponentBuilder {
	return c.builder.Component(name, componentType)
}

// Build builds the whole composition. See Builder.Build.
func (c *ComponentBuilder) Build() (*domain.Composition, error) {
	return c.builder.Build()
}

// Done returns the underlying component.
// This is primarily used by the Builder, but exposed for templates.
func (c *ComponentBuilder) Done() *domain.Component {
	return c.component
}

func (c *ComponentBuilder) record(err error) {
	if err != nil {
		c.builder.errs = append(c.builder.errs, err)
	}
}
