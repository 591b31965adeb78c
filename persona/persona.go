package persona

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidResponse indicates the model output could not be parsed as
// persona JSON.
var ErrInvalidResponse = errors.New("persona: response is not valid persona JSON")

// Persona is a generated audience persona.
type Persona struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Age        int      `json:"age,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Location   string   `json:"location,omitempty"`
	Background string   `json:"background,omitempty"`
	Traits     []string `json:"traits,omitempty"`
	Goals      []string `json:"goals,omitempty"`
	Quote      string   `json:"quote,omitempty"`
}

// ParseResponse parses model output into personas. It accepts a JSON array
// or a single object, and tolerates a markdown code fence around the JSON.
// Personas arriving without an ID are assigned a fresh UUID.
func ParseResponse(data []byte) ([]Persona, error) {
	text := stripFence(strings.TrimSpace(string(data)))
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	var personas []Persona
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &personas); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
	} else {
		var p Persona
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		personas = []Persona{p}
	}
	if len(personas) == 0 {
		return nil, fmt.Errorf("%w: no personas in response", ErrInvalidResponse)
	}
	for i := range personas {
		if personas[i].Name == "" {
			return nil, fmt.Errorf("%w: persona %d has no name", ErrInvalidResponse, i)
		}
		if personas[i].ID == "" {
			personas[i].ID = uuid.NewString()
		}
	}
	return personas, nil
}

// stripFence removes a surrounding markdown code fence (``` or ```json).
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:] // drop the language tag line
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
