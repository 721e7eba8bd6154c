/*
Package domain contains the core models shared by the combo generator.

It defines what a user declares (Chains made of Positions), what the generator
reports back (Diagnostics) and the error taxonomy used across the automaton
builder and the emitter. This package is kept pure and free of I/O so that it can
be consumed by the DSL, the config loader and the library facade alike.

# Key Entities

  - Position: one step of a chain. Either a symbolic string, a single literal key or
    an explicit list of literal key alternatives.
  - Chain: an ordered list of Positions plus the terminal label fired on completion.
  - Diagnostic: a non-fatal finding collected while building the automaton.
*/
package domain
