package personakit

import (
	"context"
	"fmt"
	"strings"
)

// Ext is the fixed file extension for template documents.
const Ext = ".md"

// Source fetches the raw text of a template document by name.
// Implementations derive the document location from the name via
// TemplatePath; filesource, embedsource and httpsource are the provided
// implementations.
//
// Fetch errors are wrapped by Engine in a LoadError carrying the name, so
// implementations only need to return a descriptive cause.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// TemplatePath returns the conventional document path for a template name:
// {name}.md. Call ValidateName before using the result in filesystem paths.
func TemplatePath(name string) string {
	return name + Ext
}

// ValidateName checks that name is non-empty and safe for use in paths and
// cache keys. All sources share the same rules.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, "/\\:") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
