// Package emitter linearizes a finished automaton and renders the two firmware
// artifacts: the state enumeration (a header fragment) and the dispatch logic
// (a C translation unit).
//
// Rendering is all-or-nothing: both artifacts are built in memory and returned
// only when every invariant check has passed.
package emitter

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/aretw0/combogen/internal/logging"
)

// RuntimeNames are the externally defined firmware primitives referenced by the
// dispatch artifact. The generator never defines them.
type RuntimeNames struct {
	Includes   []string `json:"includes" yaml:"includes" mapstructure:"includes"`
	Function   string   `json:"function" yaml:"function" mapstructure:"function"`
	StateMacro string   `json:"state_macro" yaml:"state_macro" mapstructure:"state_macro"`
	EnumMacro  string   `json:"enum_macro" yaml:"enum_macro" mapstructure:"enum_macro"`
	Timer      string   `json:"timer" yaml:"timer" mapstructure:"timer"`
	IsModifier string   `json:"is_modifier" yaml:"is_modifier" mapstructure:"is_modifier"`
	Tick       string   `json:"tick" yaml:"tick" mapstructure:"tick"`
	BreakCombo string   `json:"break_combo" yaml:"break_combo" mapstructure:"break_combo"`
	Init       string   `json:"init" yaml:"init" mapstructure:"init"`
}

// DefaultRuntimeNames matches the keymap runtime shipped with the firmware.
func DefaultRuntimeNames() RuntimeNames {
	return RuntimeNames{
		Includes:   []string{"QMK_KEYBOARD_H", `"state_machine.h"`},
		Function:   "state_machine_advance_internal",
		StateMacro: "STATE_NAME",
		EnumMacro:  "STATE_MACHINE_ENUM_VALUE",
		Timer:      "timer_read32",
		IsModifier: "IS_MODIFIER_KEYCODE",
		Tick:       "state_machine_tick",
		BreakCombo: "state_machine_break_combo",
		Init:       "state_machine_init",
	}
}

// WithDefaults fills every empty field from DefaultRuntimeNames.
func (n RuntimeNames) WithDefaults() RuntimeNames {
	d := DefaultRuntimeNames()
	if n.Includes == nil {
		n.Includes = d.Includes
	}
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&n.Function, d.Function)
	fill(&n.StateMacro, d.StateMacro)
	fill(&n.EnumMacro, d.EnumMacro)
	fill(&n.Timer, d.Timer)
	fill(&n.IsModifier, d.IsModifier)
	fill(&n.Tick, d.Tick)
	fill(&n.BreakCombo, d.BreakCombo)
	fill(&n.Init, d.Init)
	return n
}

// Artifacts are the rendered outputs of one generation run.
type Artifacts struct {
	Dispatch []byte
	Enum     []byte
	Table    *Table
}

// Emitter renders artifacts from a machine.
type Emitter struct {
	names  RuntimeNames
	logger *slog.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithRuntimeNames overrides the firmware primitive names.
func WithRuntimeNames(names RuntimeNames) Option {
	return func(e *Emitter) {
		e.names = names.WithDefaults()
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		e.logger = logger
	}
}

// New creates an Emitter.
func New(opts ...Option) *Emitter {
	e := &Emitter{names: DefaultRuntimeNames()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// Emit linearizes m and renders both artifacts. Nothing is returned on failure.
func (e *Emitter) Emit(m *automaton.Machine) (*Artifacts, error) {
	table, err := Linearize(m)
	if err != nil {
		return nil, fmt.Errorf("failed to linearize automaton: %w", err)
	}
	ids := table.IDs()

	a := &Artifacts{
		Enum:     e.renderEnum(table, ids),
		Dispatch: e.renderDispatch(table, ids),
		Table:    table,
	}
	e.logger.Debug("artifacts rendered",
		"states", len(ids),
		"enum_bytes", len(a.Enum),
		"dispatch_bytes", len(a.Dispatch),
	)
	return a, nil
}

func (e *Emitter) state(id string) string {
	return fmt.Sprintf("%s(%s)", e.names.StateMacro, id)
}
