package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/filesource"
	"github.com/personakit/personakit/httpsource"
	"github.com/personakit/personakit/internal/output"
)

// buildSource constructs a template Source from the --templates/--url flags.
// At most one of dir and baseURL may be set; with neither, the builtin
// templates embedded in the binary are used.
func buildSource(dir, baseURL, token string) (personakit.Source, error) {
	if dir != "" && baseURL != "" {
		return nil, fmt.Errorf("set at most one of --templates and --url")
	}
	if dir != "" {
		return filesource.New(dir), nil
	}
	if baseURL == "" {
		return builtinSource(), nil
	}
	var opts []httpsource.Option
	if token != "" {
		opts = append(opts, httpsource.WithAuthToken(token))
	}
	return httpsource.New(baseURL, opts...)
}

// parseVarFlags turns repeated --var key=value flags into template variables.
func parseVarFlags(flags []string) (personakit.Vars, error) {
	vars := make(personakit.Vars, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", f)
		}
		vars[key] = personakit.String(value)
	}
	return vars, nil
}

func resolveColor(mode string) bool {
	return output.ResolveColorMode(mode, output.IsTTY(os.Stdout))
}
