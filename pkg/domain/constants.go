package domain

// Literal key identifiers with a fixed meaning for the generator.
const (
	// KeyPlaceholder is the no-op key used when a symbol has no entry in the alphabet.
	KeyPlaceholder = "KC_NO"

	// KeyRootEntry is the entry code of the idle state. It never matches a real press.
	KeyRootEntry = "KC_TRANSPARENT"
)

// State identifiers reserved by the generated enumeration.
const (
	// StateNone is the idle/root state. It is always index 0.
	StateNone = "NONE"
	// StateLast is the sentinel closing the enumeration.
	StateLast = "LAST"
	// StateMergedPrefix prefixes every composite (merged) state identifier.
	StateMergedPrefix = "MERGED_"
)

// MinChainLength is the smallest number of resolved positions a chain may have.
// A single position is a plain remap, not a combo.
const MinChainLength = 2
