package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/persona"
)

// Completer produces a text completion for a prompt. llm.Client implements
// it; tests use in-memory fakes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator runs the fill-then-complete-then-parse pipeline.
type Generator struct {
	engine    *personakit.Engine
	completer Completer
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator. Panics if engine or completer is nil.
func New(engine *personakit.Engine, completer Completer, opts ...Option) *Generator {
	if engine == nil {
		panic("generate: engine must not be nil")
	}
	if completer == nil {
		panic("generate: completer must not be nil")
	}
	g := &Generator{
		engine:    engine,
		completer: completer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate fills the named template with vars, sends the prompt to the
// completer, and parses the response into personas.
func (g *Generator) Generate(ctx context.Context, name string, vars personakit.Vars) ([]persona.Persona, error) {
	prompt, err := g.engine.Fill(ctx, name, vars)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("prompt filled", "template", name, "vars", len(vars), "prompt_len", len(prompt))

	resp, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: complete %q: %w", name, err)
	}

	personas, err := persona.ParseResponse([]byte(resp))
	if err != nil {
		return nil, fmt.Errorf("generate: template %q: %w", name, err)
	}
	g.logger.Debug("personas parsed", "template", name, "count", len(personas))
	return personas, nil
}
