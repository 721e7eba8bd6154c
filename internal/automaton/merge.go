package automaton

import (
	"github.com/aretw0/combogen/pkg/domain"
)

type mergePair struct {
	survivor, absorbed *State
}

// Merge unifies two states representing the same point of the automaton.
// The first argument survives. Both must share position and entry code.
// Colliding edges of the absorbed state are queued and merged in turn until the
// whole reachable subgraph is consistent.
func (m *Machine) Merge(a, b *State) error {
	work := []mergePair{{a, b}}

	for len(work) > 0 {
		p := work[0]
		work = work[1:]

		x, y := p.survivor.resolve(), p.absorbed.resolve()
		if x == y {
			continue
		}
		if x.position != y.position || x.entryCode != y.entryCode {
			return &domain.MergeConflictError{Survivor: x.ref(), Absorbed: y.ref()}
		}

		for n := range y.names {
			x.names[n] = struct{}{}
		}
		for t := range y.terminals {
			x.terminals[t] = struct{}{}
		}

		exits := y.exits
		y.exits = nil
		y.names = nil
		y.terminals = nil
		y.forward = x

		for _, key := range sortedExitKeys(exits) {
			dst := exits[key]
			if cur, ok := x.exits[key]; ok {
				work = append(work, mergePair{cur, dst})
				continue
			}
			x.exits[key] = dst
		}

		m.stats.Merges++
		m.logger.Debug("states merged",
			"survivor", x.serial,
			"absorbed", y.serial,
			"position", x.position,
			"entry_code", x.entryCode,
			"names", sortedKeys(x.names),
		)
	}
	return nil
}

func sortedExitKeys(exits map[string]*State) []string {
	set := make(map[string]struct{}, len(exits))
	for k := range exits {
		set[k] = struct{}{}
	}
	return sortedKeys(set)
}
