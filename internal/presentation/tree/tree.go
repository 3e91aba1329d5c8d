// Package tree renders a composition as a human-readable text tree.
package tree

import (
	"fmt"
	"strings"

	"github.com/aretw0/composer/pkg/domain"
)

// Render produces the architecture tree of k: the composition line, then each
// component in insertion order with its runnables and ports.
// A composition without components renders as the composition line only.
func Render(k *domain.Composition) string {
	if k == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Composition: '%s'\n", k.Name)

	components := k.Components()
	if len(components) == 0 {
		return sb.String()
	}

	sb.WriteString("    Components:\n")
	for i, sw := range components {
		fmt.Fprintf(&sb, "    %d- Name: '%s', Type: '%s'\n", i+1, sw.Name(), sw.Type())
		writeMembers(&sb, sw, "        ")
	}
	return sb.String()
}

// RenderComponent produces the detail block of a single component.
func RenderComponent(sw *domain.Component) string {
	if sw == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Software Component '%s' Details:\n", sw.Name())
	fmt.Fprintf(&sb, "  Type: %s\n", sw.Type())
	writeMembers(&sb, sw, "  ")
	return sb.String()
}

func writeMembers(sb *strings.Builder, sw *domain.Component, indent string) {
	for _, r := range sw.Runnables() {
		sb.WriteString(indent)
		sb.WriteString(runnableLine(r))
		sb.WriteString("\n")
	}
	for _, p := range sw.Ports() {
		fmt.Fprintf(sb, "%sPort Name: %s, Direction: %s\n", indent, p.Name, p.Direction)
	}
}

func runnableLine(r domain.Runnable) string {
	line := fmt.Sprintf("Runnable Name: %s, Trigger: %s", r.Name, r.Trigger)
	if r.IsPeriodic() {
		line += fmt.Sprintf(", Period: %s", r.Period)
	}
	return line
}
