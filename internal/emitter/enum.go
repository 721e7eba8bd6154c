package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/combogen/pkg/domain"
)

const generatedBanner = "// This file was autogenerated by combogen. Do not edit."

func (e *Emitter) renderEnum(t *Table, ids []string) []byte {
	var buf bytes.Buffer
	var line = func(format string, args ...interface{}) {
		fmt.Fprintf(&buf, format, args...)
		buf.WriteString("\n")
	}
	var value = func(id string) {
		line("%s(%s),", e.names.EnumMacro, e.state(id))
	}

	line(generatedBanner)
	line("/* clang-format off */")
	for _, id := range ids {
		if t.IsComposite(id) {
			names := t.Names(id)
			refs := make([]string, len(names))
			for i, n := range names {
				refs[i] = e.state(strings.ToUpper(n))
			}
			line("")
			line("/* %s */", strings.Join(refs, ", "))
		}
		value(id)
	}
	value(domain.StateLast)
	line("/* clang-format on */")
	return buf.Bytes()
}
