package dsl

import (
	"fmt"

	"github.com/aretw0/combogen/pkg/domain"
)

// Builder collects chains in declaration order.
type Builder struct {
	chains []*ChainBuilder
}

// New creates a new chain builder.
func New() *Builder {
	return &Builder{}
}

// Chain starts a new chain ending in label.
// Declaring the same label twice adds a second key sequence for the same action.
func (b *Builder) Chain(label string) *ChainBuilder {
	cb := &ChainBuilder{chain: domain.Chain{Label: label}}
	b.chains = append(b.chains, cb)
	return cb
}

// Build returns the declared chains.
// Length rules are enforced later by the automaton, which knows the alphabet.
func (b *Builder) Build() ([]domain.Chain, error) {
	out := make([]domain.Chain, 0, len(b.chains))
	for i, cb := range b.chains {
		if cb.chain.Label == "" {
			return nil, fmt.Errorf("chain #%d has no label", i+1)
		}
		if len(cb.chain.Positions) == 0 {
			return nil, fmt.Errorf("chain %q has no positions", cb.chain.Label)
		}
		out = append(out, cb.Build())
	}
	return out, nil
}
