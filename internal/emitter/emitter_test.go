package emitter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/aretw0/combogen/pkg/domain"
	"github.com/aretw0/combogen/pkg/keymap"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMachine(t *testing.T, chains ...domain.Chain) *automaton.Machine {
	t.Helper()
	m := automaton.New(keymap.Default())
	for _, c := range chains {
		require.NoError(t, m.AddChain(c))
	}
	return m
}

func chain(label, symbols string) domain.Chain {
	return domain.Chain{Label: label, Positions: []domain.Position{domain.Symbols(symbols)}}
}

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestEmit_SingleChainGolden(t *testing.T) {
	m := buildMachine(t, chain("sixty_nine", "68"))

	a, err := New().Emit(m)
	require.NoError(t, err)

	if diff := cmp.Diff(golden(t, "sixty_nine.gen.h"), string(a.Enum)); diff != "" {
		t.Errorf("enum artifact mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(golden(t, "sixty_nine.gen.c"), string(a.Dispatch)); diff != "" {
		t.Errorf("dispatch artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearize_SingleChain(t *testing.T) {
	table, err := Linearize(buildMachine(t, chain("sixty_nine", "68")))
	require.NoError(t, err)

	assert.Equal(t, []string{"NONE", "SIXTY_NINE"}, table.IDs())

	edge, ok := table.Lookup("NONE", "KC_6", 0)
	require.True(t, ok)
	assert.Equal(t, Edge{Next: "SIXTY_NINE"}, edge)

	edge, ok = table.Lookup("SIXTY_NINE", "KC_8", 1)
	require.True(t, ok)
	assert.Equal(t, Edge{Next: "SIXTY_NINE", Terminal: "SIXTY_NINE", Final: true}, edge)
}

func TestLinearize_PendingTerminal(t *testing.T) {
	// "68" completes a, "689" continues into b: the shared second state keeps a pending.
	table, err := Linearize(buildMachine(t, chain("a", "68"), chain("b", "689")))
	require.NoError(t, err)

	first, ok := table.Lookup("NONE", "KC_6", 0)
	require.True(t, ok)
	assert.True(t, table.IsComposite(first.Next))
	assert.Equal(t, []string{"a", "b"}, table.Names(first.Next))

	second, ok := table.Lookup(first.Next, "KC_8", 1)
	require.True(t, ok)
	assert.True(t, table.IsComposite(second.Next))
	assert.Equal(t, "A", second.Terminal)
	assert.False(t, second.Final)

	third, ok := table.Lookup(second.Next, "KC_9", 2)
	require.True(t, ok)
	assert.Equal(t, Edge{Next: "B", Terminal: "B", Final: true}, third)

	ids := table.IDs()
	assert.Equal(t, "NONE", ids[0])
	assert.Equal(t, []string{"A", "B"}, ids[1:3], "terminal-only ids are enumerated with plain states")
}

func TestEmit_DuplicatePosition(t *testing.T) {
	// Same label, different lengths: x@1 on KC_8 is an intermediate step in one chain
	// and a final one in the other.
	m := buildMachine(t,
		chain("x", "689"),
		chain("x", "78"),
	)

	_, err := New().Emit(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicatePosition))

	var dup *domain.DuplicatePositionError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "X", dup.State)
	assert.Equal(t, "KC_8", dup.Key)
	assert.Equal(t, 1, dup.Position)
}

func TestEmit_AmbiguousTerminal(t *testing.T) {
	m := buildMachine(t, chain("a", "68"), chain("b", "68"))

	_, err := New().Emit(m)
	require.Error(t, err)

	var amb *domain.AmbiguousTerminalError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, []string{"a", "b"}, amb.Terminals)
	assert.Equal(t, "KC_8", amb.Key)
}

func TestEmit_TerminalIsMergedState(t *testing.T) {
	m := buildMachine(t, chain("merged_on_purpose", "68"))

	_, err := New().Emit(m)
	assert.ErrorIs(t, err, domain.ErrTerminalIsMergedState)
}

func TestEmit_EnumOrdering(t *testing.T) {
	m := buildMachine(t,
		chain("zeta", "12"),
		chain("alpha", "34"),
		chain("beta", "35"),
		chain("gamma", "36"),
	)

	a, err := New().Emit(m)
	require.NoError(t, err)

	var values []string
	var comments []string
	for _, l := range strings.Split(string(a.Enum), "\n") {
		switch {
		case strings.HasPrefix(l, "STATE_MACHINE_ENUM_VALUE("):
			values = append(values, l)
		case strings.HasPrefix(l, "/* STATE_NAME("):
			comments = append(comments, l)
		}
	}

	require.Len(t, values, 7)
	assert.Equal(t, "STATE_MACHINE_ENUM_VALUE(STATE_NAME(NONE)),", values[0])
	assert.Equal(t, []string{
		"STATE_MACHINE_ENUM_VALUE(STATE_NAME(ALPHA)),",
		"STATE_MACHINE_ENUM_VALUE(STATE_NAME(BETA)),",
		"STATE_MACHINE_ENUM_VALUE(STATE_NAME(GAMMA)),",
		"STATE_MACHINE_ENUM_VALUE(STATE_NAME(ZETA)),",
	}, values[1:5])
	assert.Contains(t, values[5], "STATE_NAME(MERGED_")
	assert.Equal(t, "STATE_MACHINE_ENUM_VALUE(STATE_NAME(LAST)),", values[6])

	require.Len(t, comments, 1)
	assert.Equal(t, "/* STATE_NAME(ALPHA), STATE_NAME(BETA), STATE_NAME(GAMMA) */", comments[0])
}

func TestEmit_Idempotent(t *testing.T) {
	chains := []domain.Chain{
		chain("a", "123"),
		chain("b", "124"),
		chain("c", "13"),
		{Label: "d", Positions: []domain.Position{domain.AnyOf("KC_1", "KC_2"), domain.Symbols("59")}},
	}

	first, err := New().Emit(buildMachine(t, chains...))
	require.NoError(t, err)

	reversed := make([]domain.Chain, len(chains))
	for i, c := range chains {
		reversed[len(chains)-1-i] = c
	}
	for _, cs := range [][]domain.Chain{chains, reversed} {
		again, err := New().Emit(buildMachine(t, cs...))
		require.NoError(t, err)
		if diff := cmp.Diff(string(first.Enum), string(again.Enum)); diff != "" {
			t.Errorf("enum artifact not reproducible (-first +again):\n%s", diff)
		}
	}
}

func TestEmit_RuntimeNames(t *testing.T) {
	names := RuntimeNames{Timer: "now_ms", Includes: []string{`"combo.h"`}}
	a, err := New(WithRuntimeNames(names)).Emit(buildMachine(t, chain("hi", "12")))
	require.NoError(t, err)

	out := string(a.Dispatch)
	assert.Contains(t, out, "#include \"combo.h\"\n")
	assert.NotContains(t, out, "QMK_KEYBOARD_H")
	assert.Contains(t, out, ".last_tick = now_ms()")
	assert.Contains(t, out, "state->last_tick = now_ms();")
	assert.Contains(t, out, "IS_MODIFIER_KEYCODE(original_keycode)", "unset names keep their default")
}

func TestEmit_ResetReconsidersKey(t *testing.T) {
	a, err := New().Emit(buildMachine(t, chain("hi", "12")))
	require.NoError(t, err)

	out := string(a.Dispatch)
	reset := strings.Index(out, "RESET_COMBO:")
	start := strings.Index(out, "case STATE_NAME(NONE):")
	require.True(t, reset > 0 && start > reset, "reset path must fall through into the root table")
	assert.Contains(t, out[reset:start], "[[fallthrough]];")
}

func TestEmit_EmptyMachine(t *testing.T) {
	a, err := New().Emit(automaton.New(keymap.Default()))
	require.NoError(t, err)
	assert.Contains(t, string(a.Enum), "STATE_NAME(NONE)),\nSTATE_MACHINE_ENUM_VALUE(STATE_NAME(LAST)),")
	assert.Contains(t, string(a.Dispatch), "case STATE_NAME(NONE):\n\t\tswitch (keycode) {\n\t\tdefault:")
}
