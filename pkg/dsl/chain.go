package dsl

import "github.com/aretw0/combogen/pkg/domain"

// ChainBuilder provides a fluent API for configuring one chain.
type ChainBuilder struct {
	chain domain.Chain
}

// Symbols appends a symbolic string, expanded character by character.
func (c *ChainBuilder) Symbols(s string) *ChainBuilder {
	c.chain.Positions = append(c.chain.Positions, domain.Symbols(s))
	return c
}

// Key appends a single literal key.
func (c *ChainBuilder) Key(key string) *ChainBuilder {
	c.chain.Positions = append(c.chain.Positions, domain.Key(key))
	return c
}

// AnyOf appends a position satisfied by any of the given literal keys.
func (c *ChainBuilder) AnyOf(keys ...string) *ChainBuilder {
	c.chain.Positions = append(c.chain.Positions, domain.AnyOf(keys...))
	return c
}

// Build returns a copy of the underlying domain.Chain.
func (c *ChainBuilder) Build() domain.Chain {
	out := domain.Chain{Label: c.chain.Label}
	out.Positions = append([]domain.Position(nil), c.chain.Positions...)
	return out
}
