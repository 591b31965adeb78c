package personakit

import (
	"errors"
	"fmt"
)

// Sentinel errors for template resolution.
// All use prefix "personakit:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrTemplateLoad = errors.New("personakit: template load failed")
	ErrInvalidName  = errors.New("personakit: invalid template name")
)

// LoadError wraps ErrTemplateLoad with the name of the template that failed
// to load. A failed load is never cached, so callers may simply retry.
// Use errors.Is(err, ErrTemplateLoad) and errors.As(err, &loadErr) to inspect.
type LoadError struct {
	Name string
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("personakit: template %q: %v", e.Name, e.Err)
}

// Unwrap returns the wrapped errors for errors.Is/errors.As.
// ErrTemplateLoad is always in the chain alongside the underlying cause.
func (e *LoadError) Unwrap() []error { return []error{ErrTemplateLoad, e.Err} }

// Compile-time check that LoadError implements error.
var _ error = (*LoadError)(nil)
