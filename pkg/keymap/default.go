package keymap

var punctuation = map[rune]string{
	' ':  "KC_SPC",
	'-':  "KC_MINS",
	'=':  "KC_EQL",
	'[':  "KC_LBRC",
	']':  "KC_RBRC",
	'\\': "KC_BSLS",
	';':  "KC_SCLN",
	'\'': "KC_QUOT",
	'`':  "KC_GRV",
	',':  "KC_COMM",
	'.':  "KC_DOT",
	'/':  "KC_SLSH",
	'\n': "KC_ENT",
	'\t': "KC_TAB",
}

// Default returns the builtin alphabet.
func Default() *Table {
	entries := make(map[rune][]string, 10+26+len(punctuation))
	for r := '0'; r <= '9'; r++ {
		entries[r] = []string{"KC_" + string(r)}
	}
	for r := 'a'; r <= 'z'; r++ {
		entries[r] = []string{"KC_" + string(r-'a'+'A')}
	}
	for r, key := range punctuation {
		entries[r] = []string{key}
	}
	t, _ := New(entries)
	return t
}
