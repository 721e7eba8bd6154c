package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()

	tests := []struct {
		symbol rune
		want   string
	}{
		{'6', "KC_6"},
		{'9', "KC_9"},
		{'a', "KC_A"},
		{'z', "KC_Z"},
		{' ', "KC_SPC"},
		{'/', "KC_SLSH"},
	}
	for _, tt := range tests {
		keys, ok := tbl.Lookup(tt.symbol)
		require.True(t, ok, "symbol %q", tt.symbol)
		assert.Equal(t, []string{tt.want}, keys)
	}

	_, ok := tbl.Lookup('A')
	assert.False(t, ok, "upper-case letters are not in the builtin table")
}

func TestTable_Merge(t *testing.T) {
	base := Default()
	merged, err := base.Merge(map[rune][]string{
		'6': {"KC_P6", "KC_6"},
		'!': {"KC_EXLM"},
	})
	require.NoError(t, err)

	keys, _ := merged.Lookup('6')
	assert.Equal(t, []string{"KC_P6", "KC_6"}, keys)
	keys, _ = merged.Lookup('!')
	assert.Equal(t, []string{"KC_EXLM"}, keys)
	assert.Equal(t, base.Len()+1, merged.Len())

	// Base is untouched
	keys, _ = base.Lookup('6')
	assert.Equal(t, []string{"KC_6"}, keys)
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(map[rune][]string{'x': {}})
	assert.Error(t, err)
}

func TestParseSymbol(t *testing.T) {
	r, err := ParseSymbol("6")
	require.NoError(t, err)
	assert.Equal(t, '6', r)

	_, err = ParseSymbol("69")
	assert.Error(t, err)
	_, err = ParseSymbol("")
	assert.Error(t, err)
}

func TestTable_Symbols(t *testing.T) {
	tbl, err := New(map[rune][]string{'b': {"KC_B"}, 'a': {"KC_A"}})
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b'}, tbl.Symbols())
}
