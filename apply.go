package personakit

import (
	"maps"
	"slices"
	"strings"
)

// Apply replaces every literal occurrence of {k} in template with the
// canonical string form of vars[k]. It is pure and never fails.
//
// Substitution is best-effort: placeholders with no matching key survive
// verbatim, and absent values substitute the empty string. An empty template
// yields an empty string. Keys are iterated in sorted order so the result is
// deterministic even when a substituted value contains brace text.
func Apply(template string, vars Vars) string {
	if template == "" {
		return ""
	}
	out := template
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		out = strings.ReplaceAll(out, "{"+k+"}", vars[k].Format())
	}
	return out
}
