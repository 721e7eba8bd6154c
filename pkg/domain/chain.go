package domain

import "regexp"

// keyPattern accepts a C identifier, optionally applied as a macro to
// identifier or number arguments (e.g. LCTL(KC_A)).
var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\(\s*[A-Za-z0-9_]+(\s*,\s*[A-Za-z0-9_]+)*\s*\))?$`)

// Alphabet maps one symbolic character to its ordered literal key alternatives.
// Implementations are read-only; pkg/keymap provides the default one.
type Alphabet interface {
	Lookup(symbol rune) ([]string, bool)
}

// Chain is one recognizable combo: an ordered key sequence ending in a terminal label.
type Chain struct {
	Label     string     `json:"name" yaml:"name"`
	Positions []Position `json:"-" yaml:"-"`
}

// Step is a resolved position: the literal keys any of which satisfies it.
type Step []string

// Resolve normalizes the declared positions into one Step per resolved position.
// Symbols missing from the alphabet degrade to KeyPlaceholder and are reported as
// diagnostics; an empty explicit alternative list or a key that is not a C
// expression usable as a case label is fatal.
func (c Chain) Resolve(alphabet Alphabet) ([]Step, []Diagnostic, error) {
	var steps []Step
	var diags []Diagnostic

	for _, p := range c.Positions {
		switch p.Kind {
		case PositionSymbols:
			for _, r := range p.Symbols {
				keys, ok := alphabet.Lookup(r)
				if !ok || len(keys) == 0 {
					diags = append(diags, Diagnostic{
						Chain:    c.Label,
						Position: len(steps) + 1,
						Symbol:   r,
						Err:      ErrUnknownSymbol,
					})
					keys = []string{KeyPlaceholder}
				}
				if err := c.checkKeys(len(steps)+1, keys); err != nil {
					return nil, diags, err
				}
				steps = append(steps, append(Step(nil), keys...))
			}
		default:
			if len(p.Keys) == 0 {
				return nil, diags, &ChainError{Label: c.Label, Positions: len(steps), Err: ErrEmptyPosition}
			}
			if err := c.checkKeys(len(steps)+1, p.Keys); err != nil {
				return nil, diags, err
			}
			steps = append(steps, append(Step(nil), p.Keys...))
		}
	}

	if len(steps) < MinChainLength {
		return nil, diags, &ChainError{Label: c.Label, Positions: len(steps), Err: ErrDegenerateChain}
	}
	return steps, diags, nil
}

func (c Chain) checkKeys(position int, keys []string) error {
	for _, k := range keys {
		if !keyPattern.MatchString(k) {
			return &InvalidKeyError{Chain: c.Label, Position: position, Key: k}
		}
	}
	return nil
}

// Sequences expands resolved steps into every concrete key sequence they accept,
// in declaration order.
func Sequences(steps []Step) [][]string {
	seqs := [][]string{{}}
	for _, step := range steps {
		next := make([][]string, 0, len(seqs)*len(step))
		for _, seq := range seqs {
			for _, key := range step {
				s := make([]string, len(seq), len(seq)+1)
				copy(s, seq)
				next = append(next, append(s, key))
			}
		}
		seqs = next
	}
	return seqs
}
