package filesource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/personakit/personakit"
)

// Ensures Source implements personakit.Source.
var _ personakit.Source = (*Source)(nil)

// Source reads template documents from a directory.
type Source struct {
	dir string
}

// New creates a Source that reads documents from dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// Fetch reads {dir}/{name}.md as raw text.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := personakit.ValidateName(name); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	path := filepath.Join(s.dir, personakit.TemplatePath(name))
	data, err := os.ReadFile(path) // #nosec G304 -- name is validated, dir is from config
	if err != nil {
		return nil, fmt.Errorf("filesource: read %s: %w", path, err)
	}
	return data, nil
}
