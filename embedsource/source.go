package embedsource

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/personakit/personakit"
)

// Ensures Source implements personakit.Source.
var _ personakit.Source = (*Source)(nil)

// Source reads template documents from an fs.FS.
type Source struct {
	fsys fs.FS
	root string
}

// New creates a Source that reads documents under root in fsys.
// Pass "." as root to read from the filesystem top level.
func New(fsys fs.FS, root string) *Source {
	return &Source{fsys: fsys, root: root}
}

// Fetch reads {root}/{name}.md as raw text.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := personakit.ValidateName(name); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	p := path.Join(s.root, personakit.TemplatePath(name))
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("embedsource: read %s: %w", p, err)
	}
	return data, nil
}
