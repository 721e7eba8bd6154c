package combogen

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/aretw0/combogen/internal/emitter"
	"github.com/aretw0/combogen/internal/logging"
	"github.com/aretw0/combogen/internal/validator"
	"github.com/aretw0/combogen/pkg/domain"
	"github.com/aretw0/combogen/pkg/keymap"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// RuntimeNames aliases the firmware primitive names used by the dispatch artifact.
type RuntimeNames = emitter.RuntimeNames

// Generator is the high-level entry point: chains in, artifacts out.
type Generator struct {
	alphabet domain.Alphabet
	names    RuntimeNames
	logger   *slog.Logger
	verify   bool
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithAlphabet sets the symbol table used to expand symbolic positions.
func WithAlphabet(a domain.Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// WithRuntimeNames overrides the firmware primitives referenced by the dispatch artifact.
func WithRuntimeNames(names RuntimeNames) Option {
	return func(g *Generator) {
		g.names = names
	}
}

// WithLogger sets a custom structured logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithoutVerification skips walking every chain through the finished machine.
func WithoutVerification() Option {
	return func(g *Generator) {
		g.verify = false
	}
}

// New creates a Generator using the builtin key alphabet and default runtime names.
func New(opts ...Option) *Generator {
	g := &Generator{
		alphabet: keymap.Default(),
		names:    emitter.DefaultRuntimeNames(),
		verify:   true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	return g
}

// Result holds the outputs of one generation run.
type Result struct {
	Dispatch    []byte
	Enum        []byte
	Diagnostics []domain.Diagnostic
	Stats       automaton.Stats
	Machine     *automaton.Machine
	Table       *emitter.Table
}

// Build runs the construction pass only. Chains are added in order; the first
// fatal error aborts and is returned together with the partial machine.
func (g *Generator) Build(chains []domain.Chain) (*automaton.Machine, error) {
	m := automaton.New(g.alphabet, automaton.WithLogger(g.logger))
	for _, c := range chains {
		if err := m.AddChain(c); err != nil {
			return m, fmt.Errorf("failed to add chain: %w", err)
		}
	}
	logging.Diagnostics(g.logger, m.Diagnostics())

	if g.verify {
		if err := validator.VerifyChains(m, g.alphabet, chains); err != nil {
			return m, fmt.Errorf("automaton verification failed: %w", err)
		}
	}
	return m, nil
}

// Generate builds the automaton for chains and renders both artifacts.
func (g *Generator) Generate(chains []domain.Chain) (*Result, error) {
	m, err := g.Build(chains)
	if err != nil {
		return nil, err
	}

	em := emitter.New(emitter.WithRuntimeNames(g.names), emitter.WithLogger(g.logger))
	art, err := em.Emit(m)
	if err != nil {
		return nil, fmt.Errorf("failed to emit artifacts: %w", err)
	}

	g.logger.Info("artifacts generated",
		"chains", len(chains),
		"states", art.Table.Len(),
		"merges", m.Stats().Merges,
	)

	return &Result{
		Dispatch:    art.Dispatch,
		Enum:        art.Enum,
		Diagnostics: m.Diagnostics(),
		Stats:       m.Stats(),
		Machine:     m,
		Table:       art.Table,
	}, nil
}

// Composites counts the composite states in the emitted enumeration.
func (r *Result) Composites() int {
	n := 0
	for _, id := range r.Table.IDs() {
		if r.Table.IsComposite(id) {
			n++
		}
	}
	return n
}
