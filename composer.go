package composer

import (
	_ "embed"
	"fmt"

	"github.com/aretw0/composer/internal/presentation/tree"
	"github.com/aretw0/composer/pkg/domain"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// CreateComposition returns an empty composition.
func CreateComposition(name string) *domain.Composition {
	return domain.NewComposition(name)
}

// CreateComponent returns a component with no ports or runnables.
func CreateComponent(name, componentType string) *domain.Component {
	return domain.NewComponent(name, componentType)
}

// AddComponentToComposition attaches sw to k.
func AddComponentToComposition(k *domain.Composition, sw *domain.Component) error {
	if k == nil {
		return fmt.Errorf("no composition: %w", domain.ErrInvalidArgument)
	}
	return k.AddComponent(sw)
}

// CreatePort returns a port with the given direction ("sender" or "receiver").
func CreatePort(name, direction string) domain.Port {
	return domain.NewPort(name, domain.Direction(direction))
}

// AddPortToComponent attaches p to sw.
func AddPortToComponent(sw *domain.Component, p domain.Port) error {
	return sw.AddPort(p)
}

// CreateRunnable returns a runnable. The period is required for periodic
// triggers and forbidden for any other.
func CreateRunnable(name, trigger string, period ...string) (domain.Runnable, error) {
	switch len(period) {
	case 0:
		return domain.NewRunnable(name, trigger, "")
	case 1:
		return domain.NewRunnable(name, trigger, period[0])
	default:
		return domain.Runnable{}, fmt.Errorf("runnable %q: at most one period, got %d: %w", name, len(period), domain.ErrInvalidArgument)
	}
}

// AddRunnableToComponent attaches r to sw.
func AddRunnableToComponent(sw *domain.Component, r domain.Runnable) error {
	return sw.AddRunnable(r)
}

// FindComponent looks up a component of k by name.
func FindComponent(k *domain.Composition, name string) (*domain.Component, bool) {
	return k.FindComponent(name)
}

// CloneComponent returns an independent copy of sw.
// The copy keeps the name; adding it next to sw fails until it is renamed.
func CloneComponent(sw *domain.Component) *domain.Component {
	if sw == nil {
		return nil
	}
	return sw.Clone()
}

// Render returns the architecture tree of k.
func Render(k *domain.Composition) string {
	return tree.Render(k)
}
