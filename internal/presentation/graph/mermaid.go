package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/combogen/internal/automaton"
)

// GraphOverlay highlights the states visited by a key sequence.
type GraphOverlay struct {
	Trace []string
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Root: ((Circle))
// - Composite: [[Subroutine]]
// - Completes a chain: ([Stadium])
// - Default: [Rectangle]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(m *automaton.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := m.Reachable()
	ids := make(map[*automaton.State]string, len(states))
	for i, s := range states {
		ids[s] = fmt.Sprintf("s%d", i)
	}

	for _, s := range states {
		safeID := ids[s]

		opener, closer := "[", "]"
		switch {
		case s.IsRoot():
			opener, closer = "((", "))"
		case s.IsComposite():
			opener, closer = "[[", "]]"
		case len(s.Terminals()) > 0:
			opener, closer = "([", "])"
		}

		label := fmt.Sprintf("%s @%d", s.ID(), s.Position())
		if s.IsComposite() {
			label = fmt.Sprintf("%s @%d <br/> %s", s.ID(), s.Position(), strings.Join(s.Names(), ", "))
		}
		if terms := s.Terminals(); len(terms) > 0 {
			label += " <br/> ⏎ " + strings.Join(terms, ", ")
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		for _, key := range s.Keys() {
			dst, _ := s.Exit(key)
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, escapeLabel(key), ids[dst]))
		}
	}

	if overlay != nil && len(overlay.Trace) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		current := m.Root()
		for _, key := range overlay.Trace {
			next, ok := current.Exit(key)
			if !ok {
				break
			}
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", ids[current]))
			current = next
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", ids[current]))
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
