package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/composer/pkg/domain"
)

// Builder manages the composition construction.
type Builder struct {
	name       string
	components []*ComponentBuilder
	errs       []error
}

// New creates a new composition builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Component starts a new component in the composition.
// Components are added to the composition in declaration order.
func (b *Builder) Component(name, componentType string) *ComponentBuilder {
	cb := &ComponentBuilder{
		component: domain.NewComponent(name, componentType),
		builder:   b,
	}
	b.components = append(b.components, cb)
	return cb
}

// From adds an independent copy of a prepared component under a new name.
func (b *Builder) From(template *domain.Component, name string) *ComponentBuilder {
	cb := &ComponentBuilder{
		component: template.CloneAs(name),
		builder:   b,
	}
	b.components = append(b.components, cb)
	return cb
}

// Build assembles the composition.
// Every error recorded while declaring members is reported, joined.
func (b *Builder) Build() (*domain.Composition, error) {
	k := domain.NewComposition(b.name)
	errs := append([]error(nil), b.errs...)

	for _, cb := range b.components {
		if err := k.AddComponent(cb.component); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build composition %q: %w", b.name, errors.Join(errs...))
	}
	return k, nil
}
