package domain

// Interface is a named data contract shared between ports.
// Compositions reserve a registry of them; no operation uses it yet.
type Interface struct {
	Name string `json:"name" yaml:"name"`
}

// Composition is the top-level container of components.
// Read accessors treat a nil *Composition as empty.
type Composition struct {
	Name string
	// Interfaces is a reserved registry; it is never populated or consumed.
	Interfaces []Interface

	components []*Component
}

// NewComposition creates an empty composition. The name is not validated.
func NewComposition(name string) *Composition {
	return &Composition{Name: name}
}

// AddComponent appends sw unless a component with the same name exists.
func (k *Composition) AddComponent(sw *Component) error {
	if k == nil || sw == nil {
		return ErrInvalidArgument
	}
	if _, exists := k.FindComponent(sw.Name()); exists {
		return &DuplicateNameError{Kind: KindComponent, Name: sw.Name(), Owner: k.Name}
	}
	k.components = append(k.components, sw)
	return nil
}

// ComponentNames returns the component names in insertion order.
func (k *Composition) ComponentNames() []string {
	if k == nil {
		return nil
	}
	names := make([]string, 0, len(k.components))
	for _, sw := range k.components {
		names = append(names, sw.Name())
	}
	return names
}

// FindComponent returns the component with the given name.
// Absence is reported through ok, never as an error.
func (k *Composition) FindComponent(name string) (*Component, bool) {
	if k == nil {
		return nil, false
	}
	for _, sw := range k.components {
		if sw.Name() == name {
			return sw, true
		}
	}
	return nil, false
}

// Components returns the components in insertion order.
// The slice is a copy; the components are shared.
func (k *Composition) Components() []*Component {
	if k == nil {
		return nil
	}
	out := make([]*Component, len(k.components))
	copy(out, k.components)
	return out
}

// Len returns the number of components.
func (k *Composition) Len() int {
	if k == nil {
		return 0
	}
	return len(k.components)
}
