/*
Package dsl provides a Go DSL for declaring combo chains programmatically.

It is the code equivalent of the chains section of combos.yaml: a fluent builder
that produces the []domain.Chain consumed by the generator.

Example usage:

	package main

	import (
		"github.com/aretw0/combogen"
		"github.com/aretw0/combogen/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Chain("sixty_nine").
			Symbols("69")

		b.Chain("shout").
			Key("KC_LSFT").
			AnyOf("KC_1", "KC_EXLM").
			Symbols("go")

		chains, err := b.Build()
		// ... pass chains to combogen.New().Generate(chains)
	}
*/
package dsl
