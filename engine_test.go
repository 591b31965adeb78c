package personakit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockSource struct {
	mu     sync.Mutex
	data   map[string][]byte
	fetch  func(ctx context.Context, name string) ([]byte, error)
	called int
}

func (m *mockSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	m.called++
	m.mu.Unlock()
	if m.fetch != nil {
		return m.fetch(ctx, name)
	}
	if d, ok := m.data[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("no document for %q", name)
}

func (m *mockSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.called
}

func TestEngine_Load_CacheStability(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{"greeting": []byte("Hello {name}")}}
	e := New(src)
	ctx := context.Background()

	body, err := e.Load(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello {name}", body)
	assert.Equal(t, 1, src.calls())

	// Second load is served from the cache with no I/O.
	body2, err := e.Load(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, body, body2)
	assert.Equal(t, 1, src.calls())
}

func TestEngine_Load_FailureNotCached(t *testing.T) {
	t.Parallel()
	fail := true
	src := &mockSource{
		fetch: func(context.Context, string) ([]byte, error) {
			if fail {
				return nil, errors.New("transport down")
			}
			return []byte("recovered"), nil
		},
	}
	e := New(src)
	ctx := context.Background()

	_, err := e.Load(ctx, "flaky")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateLoad)

	// The failure did not poison the cache: a retry fetches again and succeeds.
	fail = false
	body, err := e.Load(ctx, "flaky")
	require.NoError(t, err)
	assert.Equal(t, "recovered", body)
	assert.Equal(t, 2, src.calls())

	// And the successful body is now cached.
	_, err = e.Load(ctx, "flaky")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls())
}

func TestEngine_Load_ErrorCarriesName(t *testing.T) {
	t.Parallel()
	cause := errors.New("no such document")
	src := &mockSource{
		fetch: func(context.Context, string) ([]byte, error) { return nil, cause },
	}
	e := New(src)
	_, err := e.Load(context.Background(), "missing_template")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "missing_template", le.Name)
	assert.ErrorIs(t, err, ErrTemplateLoad)
	assert.ErrorIs(t, err, cause)
}

func TestEngine_Load_InvalidName(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{}}
	e := New(src)
	_, err := e.Load(context.Background(), "../etc/passwd")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 0, src.calls(), "invalid names must not reach the source")
}

func TestEngine_Load_ContextCancelled(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{"p": []byte("x")}}
	e := New(src)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Load(ctx, "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Load_CachedHitIgnoresCancelledContext(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{"p": []byte("x")}}
	e := New(src)
	_, err := e.Load(context.Background(), "p")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body, err := e.Load(ctx, "p")
	require.NoError(t, err, "cache hits perform no I/O and need no live context")
	assert.Equal(t, "x", body)
}

func TestEngine_Load_ConcurrentSameName(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{"conc": []byte("body")}}
	e := New(src)
	ctx := context.Background()

	type result struct {
		body string
		err  error
	}
	results := make(chan result, 50)
	for range 50 {
		go func() {
			body, err := e.Load(ctx, "conc")
			results <- result{body: body, err: err}
		}()
	}
	for range 50 {
		r := <-results
		require.NoError(t, r.err)
		assert.Equal(t, "body", r.body)
	}
	// In-flight loads for the same name are coalesced; afterwards the cache
	// serves everything, so another load adds no fetch.
	before := src.calls()
	_, err := e.Load(ctx, "conc")
	require.NoError(t, err)
	assert.Equal(t, before, src.calls())
}

func TestEngine_Load_ConcurrentDistinctNames(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{
		"a": []byte("A"), "b": []byte("B"), "c": []byte("C"),
	}}
	e := New(src)
	ctx := context.Background()
	done := make(chan error, 30)
	for range 10 {
		for _, name := range []string{"a", "b", "c"} {
			go func() {
				_, err := e.Load(ctx, name)
				done <- err
			}()
		}
	}
	for range 30 {
		require.NoError(t, <-done)
	}
}

func TestEngine_Fill(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{
		"persona_base": []byte("Segment {segment}, median age {median_age}."),
	}}
	e := New(src)
	ctx := context.Background()
	got, err := e.Fill(ctx, "persona_base", Vars{
		"segment":    String("power users"),
		"median_age": Int(34),
	})
	require.NoError(t, err)
	assert.Equal(t, "Segment power users, median age 34.", got)
}

func TestEngine_Fill_EquivalentToLoadThenApply(t *testing.T) {
	t.Parallel()
	src := &mockSource{data: map[string][]byte{"p": []byte("{a} and {b} and {missing}")}}
	e := New(src)
	ctx := context.Background()
	vars := Vars{"a": String("one"), "b": Number(2.5)}

	filled, err := e.Fill(ctx, "p", vars)
	require.NoError(t, err)
	body, err := e.Load(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, Apply(body, vars), filled)
}

func TestEngine_Fill_PropagatesLoadError(t *testing.T) {
	t.Parallel()
	src := &mockSource{
		fetch: func(context.Context, string) ([]byte, error) {
			return nil, errors.New("gone")
		},
	}
	e := New(src)
	_, err := e.Fill(context.Background(), "lost", Vars{"x": String("y")})
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le, "Fill must propagate the LoadError unchanged")
	assert.Equal(t, "lost", le.Name)
}

func TestEngine_New_NilSourcePanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { New(nil) })
}
