package personakit

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// detachCancel returns a context that is not cancelled when parent is
// cancelled, but still respects parent's deadline so a shared fetch does not
// hang. The caller should call the returned cancel when done to release the
// deadline timer.
func detachCancel(parent context.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)
	if dl, ok := parent.Deadline(); ok {
		return context.WithDeadline(ctx, dl)
	}
	return context.WithCancel(ctx) // no-op cancel when no deadline, but same signature
}

// Engine resolves template names to bodies through a Source and fills
// placeholders with caller-supplied variables.
//
// Bodies are cached on first successful load and retained for the life of
// the process: a name resolved once never triggers I/O again and always
// returns the identical body. Failed loads are never cached, so callers may
// retry. Concurrent loads for the same uncached name are coalesced into a
// single fetch. Safe for concurrent use.
type Engine struct {
	src   Source
	mu    sync.RWMutex
	cache map[string]string
	sf    singleflight.Group
}

// New creates an Engine that loads template documents via src.
// Each Engine owns its cache; construct a fresh one per test for isolation.
// Panics if src is nil.
func New(src Source) *Engine {
	if src == nil {
		panic("personakit: Source must not be nil")
	}
	return &Engine{
		src:   src,
		cache: make(map[string]string),
	}
}

// Load returns the template body for name, fetching it from the Source on
// first use. On fetch failure it returns a *LoadError carrying the name and
// leaves the cache unchanged.
func (e *Engine) Load(ctx context.Context, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	e.mu.RLock()
	body, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return body, nil
	}

	e.mu.Lock()
	body, ok = e.cache[name]
	if ok {
		e.mu.Unlock()
		return body, nil
	}
	if ctx.Err() != nil {
		e.mu.Unlock()
		return "", ctx.Err()
	}
	e.mu.Unlock()

	v, err, _ := e.sf.Do(name, func() (any, error) {
		fetchCtx, cancel := detachCancel(ctx)
		defer cancel()
		data, err := e.src.Fetch(fetchCtx, name)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	})
	if err != nil {
		return "", &LoadError{Name: name, Err: err}
	}
	body = v.(string)

	e.mu.Lock()
	e.cache[name] = body
	e.mu.Unlock()
	return body, nil
}

// Fill loads the template by name and applies vars to it. Load errors
// propagate unchanged; once the body is resolved, filling cannot fail.
func (e *Engine) Fill(ctx context.Context, name string, vars Vars) (string, error) {
	body, err := e.Load(ctx, name)
	if err != nil {
		return "", err
	}
	return Apply(body, vars), nil
}
