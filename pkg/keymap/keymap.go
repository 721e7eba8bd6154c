// Package keymap provides the key alphabet used to expand symbolic chain positions
// into literal key identifiers.
//
// The alphabet is owned by the caller. The builtin table covers digits, lower-case
// letters, space and unshifted punctuation; anything else is expected to come from
// configuration. Missing symbols are not an error here: the automaton builder
// degrades them to a placeholder key and reports a diagnostic.
package keymap

import (
	"fmt"
	"sort"
)

// Table is an immutable symbol -> alternatives mapping.
type Table struct {
	entries map[rune][]string
}

// New builds a Table from a copy of the given entries.
// Every entry must have at least one alternative.
func New(entries map[rune][]string) (*Table, error) {
	t := &Table{entries: make(map[rune][]string, len(entries))}
	for r, keys := range entries {
		if len(keys) == 0 {
			return nil, fmt.Errorf("keymap: symbol %q has no alternatives", r)
		}
		t.entries[r] = append([]string(nil), keys...)
	}
	return t, nil
}

// Lookup returns the ordered alternatives for a symbol.
func (t *Table) Lookup(symbol rune) ([]string, bool) {
	keys, ok := t.entries[symbol]
	if !ok {
		return nil, false
	}
	return append([]string(nil), keys...), true
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Symbols returns all mapped symbols in ascending order.
func (t *Table) Symbols() []rune {
	out := make([]rune, 0, len(t.entries))
	for r := range t.entries {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Merge returns a new table where entries from overrides replace the receiver's.
func (t *Table) Merge(overrides map[rune][]string) (*Table, error) {
	merged := make(map[rune][]string, len(t.entries)+len(overrides))
	for r, keys := range t.entries {
		merged[r] = keys
	}
	for r, keys := range overrides {
		merged[r] = keys
	}
	return New(merged)
}

// ParseSymbol converts a config key into a single symbol.
// Config files key the table by strings, so anything but exactly one rune is rejected.
func ParseSymbol(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("keymap: symbol %q must be exactly one character", s)
	}
	return runes[0], nil
}
