package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSymbol is attached to diagnostics for symbols missing from the key alphabet.
// It is never returned as a fatal error.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrDegenerateChain is returned when a chain resolves to fewer than MinChainLength positions.
var ErrDegenerateChain = errors.New("degenerate chain")

// ErrInvalidLabel is returned when a terminal label cannot be used as a state identifier.
var ErrInvalidLabel = errors.New("invalid terminal label")

// ErrMergeConflict is returned when two states with different position or entry code are merged.
var ErrMergeConflict = errors.New("merge conflict")

// ErrDuplicatePosition is returned when two transitions at the same (state, key, position) disagree.
var ErrDuplicatePosition = errors.New("duplicate position")

// ErrAmbiguousTerminal is returned when a reachable state completes more than one chain.
var ErrAmbiguousTerminal = errors.New("ambiguous terminal")

// ErrTerminalIsMergedState is returned when a transition would dispatch a composite state.
var ErrTerminalIsMergedState = errors.New("terminal is a merged state")

// ErrNameCollision is returned when two different name sets map to the same composite identifier.
var ErrNameCollision = errors.New("composite name collision")

// ChainError reports a chain rejected before any state was created.
type ChainError struct {
	Label     string
	Positions int
	Err       error
}

func (e *ChainError) Error() string {
	if errors.Is(e.Err, ErrDegenerateChain) {
		return fmt.Sprintf("chain %q: %s: %d position(s), need at least %d (use a plain key remap instead)",
			e.Label, e.Err, e.Positions, MinChainLength)
	}
	return fmt.Sprintf("chain %q: %s", e.Label, e.Err)
}

func (e *ChainError) Unwrap() error { return e.Err }

// StateRef describes one side of a failed merge.
type StateRef struct {
	Names     []string
	Position  int
	EntryCode string
}

func (r StateRef) String() string {
	return fmt.Sprintf("[%s]@%d(%s)", strings.Join(r.Names, ","), r.Position, r.EntryCode)
}

// MergeConflictError names both states of an illegal merge.
type MergeConflictError struct {
	Survivor StateRef
	Absorbed StateRef
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("%s: cannot merge %s into %s", ErrMergeConflict, e.Absorbed, e.Survivor)
}

func (e *MergeConflictError) Unwrap() error { return ErrMergeConflict }

// DuplicatePositionError reports two contradicting transitions out of the same state.
type DuplicatePositionError struct {
	State    string
	Key      string
	Position int
	Existing string
	Incoming string
}

func (e *DuplicatePositionError) Error() string {
	return fmt.Sprintf("%s: state %s on %s at position %d already leads to %s, refusing %s",
		ErrDuplicatePosition, e.State, e.Key, e.Position, e.Existing, e.Incoming)
}

func (e *DuplicatePositionError) Unwrap() error { return ErrDuplicatePosition }

// AmbiguousTerminalError reports a state reached with more than one terminal label.
type AmbiguousTerminalError struct {
	From      string
	Key       string
	Position  int
	Terminals []string
}

func (e *AmbiguousTerminalError) Error() string {
	return fmt.Sprintf("%s: from %s on %s at position %d, too many terminals: %s",
		ErrAmbiguousTerminal, e.From, e.Key, e.Position, strings.Join(e.Terminals, ", "))
}

func (e *AmbiguousTerminalError) Unwrap() error { return ErrAmbiguousTerminal }

// TerminalIsMergedStateError reports a composite state used as a dispatch target.
type TerminalIsMergedStateError struct {
	State string
	Names []string
}

func (e *TerminalIsMergedStateError) Error() string {
	return fmt.Sprintf("%s: %s (%s) cannot be terminal",
		ErrTerminalIsMergedState, e.State, strings.Join(e.Names, ", "))
}

func (e *TerminalIsMergedStateError) Unwrap() error { return ErrTerminalIsMergedState }

// ErrEmptyPosition is returned when an explicit alternative list has no keys.
var ErrEmptyPosition = errors.New("position has no alternatives")

// ErrInvalidKey is returned when a literal key cannot be written as a C case label.
var ErrInvalidKey = errors.New("invalid key identifier")

// InvalidKeyError names the offending key and where it was declared.
type InvalidKeyError struct {
	Chain    string
	Position int // 1-based index of the resolved position
	Key      string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("chain %q position %d: %s %q", e.Chain, e.Position, ErrInvalidKey, e.Key)
}

func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }
