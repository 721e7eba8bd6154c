package domain

import "fmt"

// Diagnostic is a non-fatal finding collected while building the automaton.
type Diagnostic struct {
	Chain    string
	Position int // 1-based index of the resolved position
	Symbol   rune
	Err      error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("chain %q position %d: %s %q, using %s", d.Chain, d.Position, d.Err, d.Symbol, KeyPlaceholder)
}

func (d Diagnostic) Unwrap() error { return d.Err }
