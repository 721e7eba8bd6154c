package domain

import "fmt"

// PositionKind tags the variant held by a Position.
type PositionKind int

const (
	// PositionSymbols expands every character through the key alphabet.
	// A string of N characters contributes N resolved positions.
	PositionSymbols PositionKind = iota
	// PositionKey is a single literal key.
	PositionKey
	// PositionAnyOf is an explicit list of literal key alternatives.
	PositionAnyOf
)

func (k PositionKind) String() string {
	switch k {
	case PositionSymbols:
		return "symbols"
	case PositionKey:
		return "key"
	case PositionAnyOf:
		return "any"
	}
	return fmt.Sprintf("PositionKind(%d)", int(k))
}

// Position is one declared step of a chain.
type Position struct {
	Kind    PositionKind
	Symbols string
	Keys    []string
}

// Symbols declares a symbolic string, resolved character by character.
func Symbols(s string) Position {
	return Position{Kind: PositionSymbols, Symbols: s}
}

// Key declares a single literal key.
func Key(key string) Position {
	return Position{Kind: PositionKey, Keys: []string{key}}
}

// AnyOf declares a position satisfied by any of the given literal keys.
func AnyOf(keys ...string) Position {
	return Position{Kind: PositionAnyOf, Keys: append([]string(nil), keys...)}
}

func (p Position) String() string {
	switch p.Kind {
	case PositionSymbols:
		return fmt.Sprintf("%q", p.Symbols)
	case PositionKey:
		if len(p.Keys) == 1 {
			return p.Keys[0]
		}
	}
	return fmt.Sprintf("%v", p.Keys)
}
