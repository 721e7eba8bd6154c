package dsl

import (
	"testing"

	"github.com/aretw0/combogen/pkg/domain"
)

func TestBuilder_Chains(t *testing.T) {
	// 1. Build the chains using DSL
	b := New()

	b.Chain("sixty_nine").
		Symbols("69")

	b.Chain("shout").
		Key("KC_LSFT").
		AnyOf("KC_1", "KC_EXLM").
		Symbols("go")

	b.Chain("sixty_nine").
		Key("KC_P6").
		Key("KC_P9")

	chains, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// 2. Verify declaration order is kept
	if len(chains) != 3 {
		t.Fatalf("Expected 3 chains, got %d", len(chains))
	}
	if chains[0].Label != "sixty_nine" || chains[1].Label != "shout" || chains[2].Label != "sixty_nine" {
		t.Errorf("Unexpected labels: %s, %s, %s", chains[0].Label, chains[1].Label, chains[2].Label)
	}

	// 3. Verify positions
	shout := chains[1].Positions
	if len(shout) != 3 {
		t.Fatalf("Expected 3 positions for shout, got %d", len(shout))
	}
	if shout[0].Kind != domain.PositionKey || shout[0].Keys[0] != "KC_LSFT" {
		t.Errorf("Expected first position KC_LSFT, got %v", shout[0])
	}
	if shout[1].Kind != domain.PositionAnyOf || len(shout[1].Keys) != 2 {
		t.Errorf("Expected two alternatives, got %v", shout[1])
	}
	if shout[2].Kind != domain.PositionSymbols || shout[2].Symbols != "go" {
		t.Errorf("Expected symbols \"go\", got %v", shout[2])
	}
}

func TestBuilder_Errors(t *testing.T) {
	b := New()
	b.Chain("empty")
	if _, err := b.Build(); err == nil {
		t.Error("Expected error for chain without positions")
	}

	b = New()
	b.Chain("").Symbols("12")
	if _, err := b.Build(); err == nil {
		t.Error("Expected error for chain without label")
	}
}

func TestChainBuilder_BuildCopies(t *testing.T) {
	cb := New().Chain("x").Symbols("12")
	first := cb.Build()
	cb.Key("KC_3")
	if len(first.Positions) != 1 {
		t.Errorf("Build() result changed after further edits: %v", first.Positions)
	}
}
