package domain

import "slices"

// Component is an encapsulated unit owning ports and runnables.
//
// Ports are keyed by name for lookup; their insertion order is kept separately
// so that displays stay stable. Runnables are an ordered sequence.
//
// Name and type are fixed at construction: a composition relies on the name
// staying put once the component is attached.
//
// Read accessors treat a nil *Component as empty.
type Component struct {
	name          string
	componentType string

	ports     map[string]Port
	portOrder []string
	runnables []Runnable
}

// NewComponent creates a component with no ports and no runnables.
func NewComponent(name, componentType string) *Component {
	return &Component{
		name:          name,
		componentType: componentType,
		ports:         make(map[string]Port),
	}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Type returns the free-form type tag, such as "Sensor" or "Controller".
func (c *Component) Type() string {
	if c == nil {
		return ""
	}
	return c.componentType
}

// AddPort inserts p, keyed by its name.
func (c *Component) AddPort(p Port) error {
	if c == nil {
		return ErrInvalidArgument
	}
	if c.ports == nil {
		c.ports = make(map[string]Port)
	}
	if _, exists := c.ports[p.Name]; exists {
		return &DuplicateNameError{Kind: KindPort, Name: p.Name, Owner: c.name}
	}
	c.ports[p.Name] = p
	c.portOrder = append(c.portOrder, p.Name)
	return nil
}

// AddRunnable appends r unless a runnable with the same name exists.
// r goes through the same trigger/period rules as NewRunnable, so literals
// cannot bypass them.
func (c *Component) AddRunnable(r Runnable) error {
	if c == nil {
		return ErrInvalidArgument
	}
	checked, err := NewRunnable(r.Name, string(r.Trigger), r.Period)
	if err != nil {
		return err
	}
	for _, existing := range c.runnables {
		if existing.Name == checked.Name {
			return &DuplicateNameError{Kind: KindRunnable, Name: checked.Name, Owner: c.name}
		}
	}
	c.runnables = append(c.runnables, checked)
	return nil
}

// Port looks up a port by name.
func (c *Component) Port(name string) (Port, bool) {
	if c == nil {
		return Port{}, false
	}
	p, ok := c.ports[name]
	return p, ok
}

// Ports returns the ports in insertion order.
func (c *Component) Ports() []Port {
	if c == nil {
		return nil
	}
	out := make([]Port, 0, len(c.portOrder))
	for _, name := range c.portOrder {
		out = append(out, c.ports[name])
	}
	return out
}

// Runnables returns a copy of the runnables in insertion order.
func (c *Component) Runnables() []Runnable {
	if c == nil {
		return nil
	}
	return slices.Clone(c.runnables)
}

// Runnable looks up a runnable by name.
func (c *Component) Runnable(name string) (Runnable, bool) {
	if c == nil {
		return Runnable{}, false
	}
	for _, r := range c.runnables {
		if r.Name == name {
			return r, true
		}
	}
	return Runnable{}, false
}

// Clone returns an independent copy of c: same name and type, copied ports
// and runnables. It does not check for collisions in any composition.
// Cloning nil yields nil.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	return c.CloneAs(c.name)
}

// CloneAs is Clone with a different name for the copy.
func (c *Component) CloneAs(name string) *Component {
	if c == nil {
		return nil
	}
	clone := NewComponent(name, c.componentType)
	for _, pname := range c.portOrder {
		clone.ports[pname] = c.ports[pname]
	}
	clone.portOrder = slices.Clone(c.portOrder)
	clone.runnables = slices.Clone(c.runnables)
	return clone
}
