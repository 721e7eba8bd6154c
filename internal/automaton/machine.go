package automaton

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/combogen/internal/logging"
	"github.com/aretw0/combogen/pkg/domain"
)

// Stats summarises a construction pass.
type Stats struct {
	Chains        int
	StatesCreated int
	Merges        int
}

// Machine owns the root state and, transitively, every state reachable from it.
type Machine struct {
	root     *State
	alphabet domain.Alphabet
	logger   *slog.Logger

	serial int
	labels map[string]string // upper-cased label -> declared label
	diags  []domain.Diagnostic
	stats  Stats
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the structured logger used for construction tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New creates an empty machine that expands symbols through alphabet.
func New(alphabet domain.Alphabet, opts ...Option) *Machine {
	m := &Machine{
		alphabet: alphabet,
		labels:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	m.root = m.newState(domain.StateNone, 0, domain.KeyRootEntry)
	return m
}

// Root returns the idle state.
func (m *Machine) Root() *State {
	return m.root
}

// Diagnostics returns the non-fatal findings collected so far, in submission order.
func (m *Machine) Diagnostics() []domain.Diagnostic {
	return append([]domain.Diagnostic(nil), m.diags...)
}

// Stats returns construction counters.
func (m *Machine) Stats() Stats {
	return m.stats
}

// AddChain grows the graph with one chain.
// A rejected chain (invalid label, fewer than two positions) creates no state.
func (m *Machine) AddChain(chain domain.Chain) error {
	if err := ValidateLabel(chain.Label); err != nil {
		return &domain.ChainError{Label: chain.Label, Err: err}
	}
	upper := strings.ToUpper(chain.Label)
	if prev, ok := m.labels[upper]; ok && prev != chain.Label {
		return &domain.ChainError{
			Label: chain.Label,
			Err:   fmt.Errorf("%w: clashes with %q once upper-cased", domain.ErrInvalidLabel, prev),
		}
	}

	steps, diags, err := chain.Resolve(m.alphabet)
	if err != nil {
		return err
	}
	m.diags = append(m.diags, diags...)
	m.labels[upper] = chain.Label

	frontier := []*State{m.root}
	for i, step := range steps {
		next := make([]*State, 0, len(step))
		for _, key := range step {
			next = append(next, m.newState(chain.Label, i+1, key))
		}
		for _, src := range frontier {
			for _, dst := range next {
				if err := m.link(src.resolve(), dst.resolve()); err != nil {
					return fmt.Errorf("chain %q position %d: %w", chain.Label, i+1, err)
				}
			}
		}
		frontier = next
	}

	for _, s := range frontier {
		s.resolve().terminals[chain.Label] = struct{}{}
	}

	m.stats.Chains++
	m.logger.Debug("chain added", "chain", chain.Label, "positions", len(steps))
	return nil
}

func (m *Machine) newState(name string, position int, entryCode string) *State {
	m.serial++
	m.stats.StatesCreated++
	return newState(m.serial, name, position, entryCode)
}

// link adds src -> dst keyed by dst's entry code. An existing edge for the same
// key absorbs dst through a merge.
func (m *Machine) link(src, dst *State) error {
	key := dst.entryCode
	if cur, ok := src.exits[key]; ok {
		return m.Merge(cur, dst)
	}
	src.exits[key] = dst
	return nil
}

// Reachable returns every state reachable from the root exactly once,
// in breadth-first order with edges visited by ascending key.
func (m *Machine) Reachable() []*State {
	seen := map[*State]bool{m.root: true}
	queue := []*State{m.root}
	var out []*State

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		out = append(out, s)

		for _, key := range s.Keys() {
			dst, _ := s.Exit(key)
			if !seen[dst] {
				seen[dst] = true
				queue = append(queue, dst)
			}
		}
	}
	return out
}
