package emitter

import (
	"sort"
	"strings"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/aretw0/combogen/pkg/domain"
)

// Edge is one linearized transition.
type Edge struct {
	Next string // identifier of the successor
	// Terminal is the identifier of the action completed on arrival, or "".
	Terminal string
	// Final reports that the successor has no further steps, so the action is
	// dispatched immediately. Otherwise Terminal is left pending in the runtime.
	Final bool
}

// Table groups the automaton transitions per state:
// state id -> key -> required progress counter -> edge.
type Table struct {
	rows  map[string]map[string]map[int]Edge
	names map[string][]string
}

func newTable() *Table {
	return &Table{
		rows:  make(map[string]map[string]map[int]Edge),
		names: make(map[string][]string),
	}
}

// Linearize walks the machine breadth-first from the root, visiting each state
// once, and builds the dispatch table. It fails on contradicting transitions,
// ambiguous terminals and composite dispatch targets.
func Linearize(m *automaton.Machine) (*Table, error) {
	t := newTable()

	for _, s := range m.Reachable() {
		sid := s.ID()
		if err := t.register(sid, s.Names()); err != nil {
			return nil, err
		}
		row := t.row(sid)

		for _, key := range s.Keys() {
			dst, _ := s.Exit(key)
			did := dst.ID()
			if err := t.register(did, dst.Names()); err != nil {
				return nil, err
			}
			position := dst.Position() - 1

			terms := dst.Terminals()
			if len(terms) > 1 {
				return nil, &domain.AmbiguousTerminalError{From: sid, Key: key, Position: position, Terminals: terms}
			}

			edge := Edge{Next: did}
			if len(terms) == 1 {
				edge.Terminal = automaton.StateID(terms)
				edge.Final = len(dst.Keys()) == 0
				if automaton.IsCompositeID(edge.Terminal) {
					return nil, &domain.TerminalIsMergedStateError{State: edge.Terminal, Names: terms}
				}
				if edge.Final && dst.IsComposite() {
					return nil, &domain.TerminalIsMergedStateError{State: did, Names: dst.Names()}
				}
				if err := t.register(edge.Terminal, terms); err != nil {
					return nil, err
				}
			}

			positions, ok := row[key]
			if !ok {
				positions = make(map[int]Edge)
				row[key] = positions
			}
			if prev, ok := positions[position]; ok {
				if prev != edge {
					return nil, &domain.DuplicatePositionError{
						State:    sid,
						Key:      key,
						Position: position,
						Existing: prev.String(),
						Incoming: edge.String(),
					}
				}
				continue
			}
			positions[position] = edge
		}
	}
	return t, nil
}

func (e Edge) String() string {
	if e.Terminal == "" {
		return e.Next
	}
	if e.Final {
		return e.Next + " (dispatch " + e.Terminal + ")"
	}
	return e.Next + " (pending " + e.Terminal + ")"
}

func (t *Table) row(id string) map[string]map[int]Edge {
	r, ok := t.rows[id]
	if !ok {
		r = make(map[string]map[int]Edge)
		t.rows[id] = r
	}
	return r
}

func (t *Table) register(id string, names []string) error {
	prev, ok := t.names[id]
	if !ok {
		t.names[id] = append([]string(nil), names...)
		return nil
	}
	if strings.Join(prev, "\x00") != strings.Join(names, "\x00") {
		return &collisionError{id: id, a: prev, b: names}
	}
	return nil
}

// IDs returns every state identifier in enumeration order:
// NONE, plain states sorted, composite states sorted. The sentinel is not included.
func (t *Table) IDs() []string {
	var plain, composite []string
	for id := range t.names {
		switch {
		case id == domain.StateNone:
		case automaton.IsCompositeID(id):
			composite = append(composite, id)
		default:
			plain = append(plain, id)
		}
	}
	sort.Strings(plain)
	sort.Strings(composite)

	out := make([]string, 0, len(t.names)+1)
	out = append(out, domain.StateNone)
	out = append(out, plain...)
	return append(out, composite...)
}

// Names returns the constituent names behind an identifier.
func (t *Table) Names(id string) []string {
	return append([]string(nil), t.names[id]...)
}

// IsComposite reports whether id is a merged state.
func (t *Table) IsComposite(id string) bool {
	return automaton.IsCompositeID(id)
}

// Keys returns the triggering keys of a state, sorted.
func (t *Table) Keys(id string) []string {
	row := t.rows[id]
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Positions returns the recorded progress counters for (state, key), ascending.
func (t *Table) Positions(id, key string) []int {
	positions := t.rows[id][key]
	out := make([]int, 0, len(positions))
	for p := range positions {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Lookup returns the edge recorded for (state, key, position).
func (t *Table) Lookup(id, key string, position int) (Edge, bool) {
	e, ok := t.rows[id][key][position]
	return e, ok
}

// Len returns the number of distinct state identifiers, root included.
func (t *Table) Len() int {
	return len(t.names)
}
