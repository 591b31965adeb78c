package output

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/persona"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	quoteStyle = lipgloss.NewStyle().Italic(true)
)

// RenderPersonas formats personas for terminal display. With colored false
// the same layout is emitted without styling.
func RenderPersonas(personas []persona.Persona, colored bool) string {
	var b strings.Builder
	for i, p := range personas {
		if i > 0 {
			b.WriteString("\n")
		}
		name := p.Name
		if colored {
			name = nameStyle.Render(name)
		}
		b.WriteString(name)
		if p.Age > 0 {
			b.WriteString(fmt.Sprintf(", %d", p.Age))
		}
		b.WriteString("\n")
		writeField(&b, "Occupation", p.Occupation, colored)
		writeField(&b, "Location", p.Location, colored)
		writeField(&b, "Background", p.Background, colored)
		writeField(&b, "Traits", strings.Join(p.Traits, ", "), colored)
		writeField(&b, "Goals", strings.Join(p.Goals, "; "), colored)
		if p.Quote != "" {
			quote := fmt.Sprintf("%q", p.Quote)
			if colored {
				quote = quoteStyle.Render(quote)
			}
			b.WriteString("  " + quote + "\n")
		}
	}
	return b.String()
}

// RenderVars formats derived variables as "key = value" lines in key order.
func RenderVars(vars personakit.Vars, colored bool) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		key := k
		if colored {
			key = labelStyle.Render(key)
		}
		b.WriteString(key + " = " + vars[k].Format() + "\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string, colored bool) {
	if value == "" {
		return
	}
	if colored {
		label = labelStyle.Render(label)
	}
	b.WriteString("  " + label + ": " + value + "\n")
}
