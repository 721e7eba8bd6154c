package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/combogen/internal/automaton"
	"github.com/aretw0/combogen/pkg/domain"
)

// VerifyChains walks every key sequence each chain accepts through the built
// machine and checks that it ends on a state at the matching depth carrying the
// chain's label. Chains that fail to resolve are skipped; AddChain already
// rejected them.
func VerifyChains(m *automaton.Machine, alphabet domain.Alphabet, chains []domain.Chain) error {
	var errors []string

	for _, c := range chains {
		steps, _, err := c.Resolve(alphabet)
		if err != nil {
			continue
		}

		for _, seq := range domain.Sequences(steps) {
			if msg := walk(m.Root(), c.Label, seq); msg != "" {
				errors = append(errors, msg)
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

func walk(root *automaton.State, label string, seq []string) string {
	current := root
	for i, key := range seq {
		next, ok := current.Exit(key)
		if !ok {
			return fmt.Sprintf("chain %q: no transition on %s from %s (sequence %s)",
				label, key, current.ID(), strings.Join(seq, " "))
		}
		if next.Position() != i+1 {
			return fmt.Sprintf("chain %q: %s reached at depth %d, want %d (sequence %s)",
				label, next.ID(), next.Position(), i+1, strings.Join(seq, " "))
		}
		current = next
	}
	if !slices.Contains(current.Terminals(), label) {
		return fmt.Sprintf("chain %q: sequence %s ends on %s without the label",
			label, strings.Join(seq, " "), current.ID())
	}
	return ""
}
