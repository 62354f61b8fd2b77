package goargs

import (
	"fmt"
	"strings"
)

// Help renders the option summary consumed by the auto-help path: one line
// per registered argument, in registration order. The exact layout is a
// display concern, not a wire format.
func (p *Parser) Help() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTIONS]\n\nOptions:\n", p.progName)
	for _, a := range p.args {
		b.WriteString("  ")
		b.WriteString(formatHelpLine(a))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatHelpLine lays out a single option: canonical name, aliases, help
// description, rendered default, choice list and required marker.
func formatHelpLine(a *Argument) string {
	var b strings.Builder
	b.WriteString("--")
	b.WriteString(a.name)
	for _, alias := range a.aliases {
		b.WriteString(", -")
		b.WriteString(alias)
	}
	b.WriteByte('\t')
	b.WriteString(a.help)
	fmt.Fprintf(&b, " [default: %s]", a.def.Render())
	if len(a.choices) != 0 {
		fmt.Fprintf(&b, " (choices: %s)", strings.Join(a.choices, ", "))
	}
	if a.required {
		b.WriteString(" (required)")
	}
	return b.String()
}
