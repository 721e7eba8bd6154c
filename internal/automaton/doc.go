/*
Package automaton grows the combo transition graph.

Chains are submitted one at a time. Each resolved position creates one State per
literal key alternative and links every state of the previous frontier to every
new state. When an edge for the same key already exists the new destination is
merged into the existing one instead of overwriting it.

Merging is union-find style: the absorbed State forwards to the survivor and every
lookup goes through resolve, so references held elsewhere (other frontier states,
earlier edges) see the merged node without being rewritten. The merge itself runs
as an explicit worklist with a visited guard, never as unbounded recursion.
*/
package automaton
