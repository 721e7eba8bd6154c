/*
Package combogen compiles combo key sequences into a deterministic finite
automaton and renders it as C source for QMK keyboard firmware.

A combo is a chain of key positions ending in a label: pressing the keys in
order fires the label's action. Chains that share a prefix share states; where
two chains overlap after diverging, their states are merged into composite
states so the automaton stays deterministic.

# Usage

Declare chains with the DSL (or load them from combos.yaml with the CLI) and
hand them to a Generator:

	package main

	import (
		"log"
		"os"

		"github.com/aretw0/combogen"
		"github.com/aretw0/combogen/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		b.Chain("sixty_nine").Symbols("69")

		chains, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		res, err := combogen.New().Generate(chains)
		if err != nil {
			log.Fatal(err)
		}

		os.WriteFile("state_machine.gen.c", res.Dispatch, 0o644)
		os.WriteFile("state_machine.gen.h", res.Enum, 0o644)
	}

Generation is all-or-nothing: on error no artifact is returned. Symbols missing
from the key alphabet are not fatal; they degrade to KC_NO and are reported in
Result.Diagnostics.
*/
package combogen
