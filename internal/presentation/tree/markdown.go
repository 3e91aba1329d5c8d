package tree

import (
	"fmt"
	"strings"

	"github.com/aretw0/composer/pkg/domain"
)

// Markdown renders the same tree as Render using Markdown headings and lists,
// for display through a Markdown terminal renderer.
func Markdown(k *domain.Composition) string {
	if k == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Composition `%s`\n", k.Name)

	for i, sw := range k.Components() {
		fmt.Fprintf(&sb, "\n## %d. %s\n\n", i+1, sw.Name())
		fmt.Fprintf(&sb, "*Type:* %s\n", sw.Type())

		if runnables := sw.Runnables(); len(runnables) > 0 {
			sb.WriteString("\n**Runnables**\n\n")
			for _, r := range runnables {
				fmt.Fprintf(&sb, "- `%s` (%s", r.Name, r.Trigger)
				if r.IsPeriodic() {
					fmt.Fprintf(&sb, ", every %s", r.Period)
				}
				sb.WriteString(")\n")
			}
		}

		if ports := sw.Ports(); len(ports) > 0 {
			sb.WriteString("\n**Ports**\n\n")
			for _, p := range ports {
				fmt.Fprintf(&sb, "- `%s` %s\n", p.Name, p.Direction)
			}
		}
	}
	return sb.String()
}
