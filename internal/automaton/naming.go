package automaton

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/combogen/pkg/domain"
	"github.com/cespare/xxhash/v2"
)

var labelPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// StateID derives the canonical identifier for a set of constituent names.
// A single name is upper-cased. Several names hash to MERGED_<hex>, where the
// digest covers the sorted, length-prefixed names so the result never depends on
// merge order.
func StateID(names []string) string {
	if len(names) == 1 {
		return strings.ToUpper(names[0])
	}
	return domain.StateMergedPrefix + fmt.Sprintf("%016X", Digest(names))
}

// Digest is the content hash behind composite identifiers.
func Digest(names []string) uint64 {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	h := xxhash.New()
	for _, n := range sorted {
		_, _ = h.WriteString(strconv.Itoa(len(n)))
		_, _ = h.WriteString(":")
		_, _ = h.WriteString(n)
	}
	return h.Sum64()
}

// IsCompositeID reports whether id names a merged state.
func IsCompositeID(id string) bool {
	return strings.HasPrefix(id, domain.StateMergedPrefix)
}

// ValidateLabel checks that a terminal label can become a state identifier.
// Labels carrying the composite prefix pass here and are refused at emission,
// where they would be dispatched as a merged state.
func ValidateLabel(label string) error {
	if !labelPattern.MatchString(label) {
		return fmt.Errorf("%w: %q is not a C identifier", domain.ErrInvalidLabel, label)
	}
	id := strings.ToUpper(label)
	if id == domain.StateNone || id == domain.StateLast {
		return fmt.Errorf("%w: %q is reserved", domain.ErrInvalidLabel, label)
	}
	return nil
}
