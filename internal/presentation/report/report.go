// Package report renders a markdown summary of a generation run.
package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/combogen/internal/emitter"
	"github.com/aretw0/combogen/pkg/domain"
)

// Input gathers what the report describes.
type Input struct {
	Source      string
	Chains      []domain.Chain
	Table       *emitter.Table
	Diagnostics []domain.Diagnostic
}

// Markdown renders the report.
func Markdown(in Input) string {
	var sb strings.Builder
	title := "Combo automaton"
	if in.Source != "" {
		title += " (`" + in.Source + "`)"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("## Chains\n\n")
	sb.WriteString("| Label | Positions |\n|---|---|\n")
	for _, c := range in.Chains {
		parts := make([]string, len(c.Positions))
		for i, p := range c.Positions {
			parts[i] = "`" + p.String() + "`"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", c.Label, strings.Join(parts, " "))
	}

	if in.Table != nil {
		ids := in.Table.IDs()
		fmt.Fprintf(&sb, "\n## States (%d)\n\n", len(ids)+1)
		sb.WriteString("| # | State | Transitions |\n|---|---|---|\n")
		for i, id := range ids {
			fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", i, id, transitions(in.Table, id))
		}
		fmt.Fprintf(&sb, "| %d | `%s` | |\n", len(ids), domain.StateLast)

		var composites []string
		for _, id := range ids {
			if in.Table.IsComposite(id) {
				composites = append(composites, fmt.Sprintf("- `%s`: %s", id, strings.Join(in.Table.Names(id), ", ")))
			}
		}
		if len(composites) > 0 {
			sb.WriteString("\n## Composite states\n\n")
			sb.WriteString(strings.Join(composites, "\n"))
			sb.WriteString("\n")
		}
	}

	if len(in.Diagnostics) > 0 {
		sb.WriteString("\n## Diagnostics\n\n")
		for _, d := range in.Diagnostics {
			fmt.Fprintf(&sb, "- %s\n", d.Error())
		}
	}
	return sb.String()
}

func transitions(t *emitter.Table, id string) string {
	var parts []string
	for _, key := range t.Keys(id) {
		for _, pos := range t.Positions(id, key) {
			edge, _ := t.Lookup(id, key, pos)
			parts = append(parts, fmt.Sprintf("`%s`@%d → %s", key, pos, edge))
		}
	}
	return strings.Join(parts, "<br>")
}
