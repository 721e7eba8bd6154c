package automaton

import (
	"sort"

	"github.com/aretw0/combogen/pkg/domain"
)

// State is one node of the automaton.
type State struct {
	serial    int
	names     map[string]struct{}
	position  int
	entryCode string
	terminals map[string]struct{}
	exits     map[string]*State

	// forward is set once the state has been absorbed by a merge.
	forward *State
}

func newState(serial int, name string, position int, entryCode string) *State {
	return &State{
		serial:    serial,
		names:     map[string]struct{}{name: {}},
		position:  position,
		entryCode: entryCode,
		terminals: make(map[string]struct{}),
		exits:     make(map[string]*State),
	}
}

// resolve follows merge forwarding to the surviving state, compressing the path.
func (s *State) resolve() *State {
	root := s
	for root.forward != nil {
		root = root.forward
	}
	for s.forward != nil {
		next := s.forward
		s.forward = root
		s = next
	}
	return root
}

// Names returns the sorted constituent names.
func (s *State) Names() []string {
	return sortedKeys(s.resolve().names)
}

// Terminals returns the sorted terminal labels completed on reaching this state.
func (s *State) Terminals() []string {
	return sortedKeys(s.resolve().terminals)
}

// Position is the depth of the state: 0 for the root, 1 after the first key.
func (s *State) Position() int {
	return s.resolve().position
}

// EntryCode is the literal key that enters this state.
func (s *State) EntryCode() string {
	return s.resolve().entryCode
}

// IsComposite reports whether the state represents more than one chain name.
func (s *State) IsComposite() bool {
	return len(s.resolve().names) > 1
}

// IsRoot reports whether s is the idle state.
func (s *State) IsRoot() bool {
	r := s.resolve()
	_, none := r.names[domain.StateNone]
	return none && r.position == 0
}

// ID returns the canonical identifier used in the generated artifacts.
func (s *State) ID() string {
	return StateID(s.Names())
}

// Keys returns the triggering keys of the outgoing edges, sorted.
func (s *State) Keys() []string {
	r := s.resolve()
	keys := make([]string, 0, len(r.exits))
	for k := range r.exits {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Exit returns the successor for key, if any.
func (s *State) Exit(key string) (*State, bool) {
	dst, ok := s.resolve().exits[key]
	if !ok {
		return nil, false
	}
	return dst.resolve(), true
}

func (s *State) ref() domain.StateRef {
	return domain.StateRef{Names: s.Names(), Position: s.position, EntryCode: s.entryCode}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
