package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/combogen/pkg/domain"
)

func (e *Emitter) renderDispatch(t *Table, ids []string) []byte {
	var buf bytes.Buffer
	var line = func(idt int, format string, args ...interface{}) {
		buf.WriteString(strings.Repeat("\t", idt))
		fmt.Fprintf(&buf, format, args...)
		buf.WriteString("\n")
	}
	var assign = func(idt int, next, terminal string, position int) {
		line(idt, "state_machine->state = (state_t){.current_state_path = %s, .terminal_state = %s, .position = %d, .last_code = keycode, .last_tick = %s()};",
			e.state(next), e.state(terminal), position, e.names.Timer)
	}
	none := e.state(domain.StateNone)

	line(0, generatedBanner)
	line(0, "")
	for _, inc := range e.names.Includes {
		line(0, "#include %s", inc)
	}
	line(0, "")
	line(0, "state_cb_t %s(state_machine_t *state_machine, const state_cb_t action_mapping[%s], uint16_t keycode, uint16_t original_keycode) {",
		e.names.Function, e.state(domain.StateLast))
	line(1, "state_t *state = &state_machine->state;")
	line(1, "%s(state_machine, true);", e.names.Tick)
	line(0, "")
	line(1, "// Modifiers only extend the combo")
	line(1, "if (%s(original_keycode)) {", e.names.IsModifier)
	line(2, "state->last_tick = %s();", e.names.Timer)
	line(2, "return action_mapping[%s];", none)
	line(1, "}")
	line(0, "")
	line(1, "switch (state->current_state_path) {")

	for _, id := range ids {
		keys := t.Keys(id)
		if id == domain.StateNone || len(keys) == 0 {
			continue
		}
		line(1, "case %s:", e.state(id))
		line(2, "switch (keycode) {")
		for _, key := range keys {
			line(2, "case %s:", key)
			for _, position := range t.Positions(id, key) {
				edge, _ := t.Lookup(id, key, position)
				line(3, "if (state->position == %d) {", position)
				switch {
				case edge.Final:
					assign(4, edge.Next, domain.StateNone, position+1)
					line(4, "return action_mapping[%s];", e.state(edge.Terminal))
				case edge.Terminal != "":
					assign(4, edge.Next, edge.Terminal, position+1)
					line(4, "break;")
				default:
					assign(4, edge.Next, domain.StateNone, position+1)
					line(4, "break;")
				}
				line(3, "}")
			}
			line(3, "goto RESET_COMBO;")
		}
		line(2, "default:")
		line(3, "goto RESET_COMBO;")
		line(2, "}")
		line(2, "break;")
	}

	line(1, "default:")
	line(1, "RESET_COMBO:")
	line(2, "%s(state_machine, true);", e.names.BreakCombo)
	line(2, "[[fallthrough]];")
	line(1, "// Combo start")
	line(1, "case %s:", none)
	line(2, "switch (keycode) {")
	for _, key := range t.Keys(domain.StateNone) {
		positions := t.Positions(domain.StateNone, key)
		edge, _ := t.Lookup(domain.StateNone, key, positions[0])
		line(2, "case %s:", key)
		assign(3, edge.Next, domain.StateNone, positions[0]+1)
		line(3, "break;")
	}
	line(2, "default:")
	line(3, "%s(state_machine);", e.names.Init)
	line(3, "break;")
	line(2, "}")
	line(2, "break;")
	line(1, "case %s:", e.state(domain.StateLast))
	line(2, "%s(state_machine);", e.names.Init)
	line(2, "break;")
	line(1, "}")
	line(0, "")
	line(1, "return action_mapping[%s];", none)
	line(0, "}")
	return buf.Bytes()
}
