package main

import (
	"embed"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/embedsource"
)

// Builtin templates ship inside the binary and are used when neither
// --templates nor --url is given.
//
//go:embed templates/*.md
var builtinFS embed.FS

func builtinSource() personakit.Source {
	return embedsource.New(builtinFS, "templates")
}
