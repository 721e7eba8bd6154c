package automaton

import (
	"strings"
	"testing"

	"github.com/aretw0/combogen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateID(t *testing.T) {
	assert.Equal(t, "SIXTY_NINE", StateID([]string{"sixty_nine"}))

	id := StateID([]string{"a", "b"})
	assert.True(t, strings.HasPrefix(id, domain.StateMergedPrefix))
	assert.Len(t, id, len(domain.StateMergedPrefix)+16)
	assert.Equal(t, id, StateID([]string{"b", "a"}), "order independent")
	assert.NotEqual(t, id, StateID([]string{"a", "c"}))
	assert.True(t, IsCompositeID(id))
	assert.False(t, IsCompositeID("SIXTY_NINE"))
}

func TestDigest_DelimiterSafe(t *testing.T) {
	// Plain concatenation would make these equal.
	assert.NotEqual(t, Digest([]string{"ab", "c"}), Digest([]string{"a", "bc"}))
}

func TestCompositeIDs_AreStableAcrossSubmissionOrder(t *testing.T) {
	build := func(labels ...string) string {
		m := newTestMachine(t)
		for _, l := range labels {
			require.NoError(t, m.AddChain(domain.Chain{
				Label:     l,
				Positions: []domain.Position{domain.Symbols("1"), domain.Key("KC_" + strings.ToUpper(l))},
			}))
		}
		s, ok := m.Root().Exit("KC_1")
		require.True(t, ok)
		return s.ID()
	}

	assert.Equal(t, build("x", "y", "z"), build("z", "x", "y"))
}

func TestValidateLabel(t *testing.T) {
	assert.NoError(t, ValidateLabel("sixty_nine"))
	assert.NoError(t, ValidateLabel("_private"))
	assert.NoError(t, ValidateLabel("merged_on_purpose"), "rejected later, at emission")
	assert.ErrorIs(t, ValidateLabel("None"), domain.ErrInvalidLabel)
	assert.ErrorIs(t, ValidateLabel("a-b"), domain.ErrInvalidLabel)
}
