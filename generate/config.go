package generate

import (
	"errors"
	"fmt"
	"os"

	"github.com/personakit/personakit"
	"github.com/personakit/personakit/filesource"
	"github.com/personakit/personakit/httpsource"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates the configuration file is malformed or
// incomplete.
var ErrInvalidConfig = errors.New("generate: invalid config")

// TemplatesConfig selects where template documents come from: a local
// directory or an HTTP base URL. Exactly one of Dir and BaseURL must be set.
type TemplatesConfig struct {
	Dir       string `yaml:"dir"`
	BaseURL   string `yaml:"base_url"`
	AuthToken string `yaml:"auth_token"`
}

// ModelConfig configures the completion endpoint.
type ModelConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Name        string  `yaml:"name"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Temperature float64 `yaml:"temperature"`
}

// Config is the YAML pipeline configuration.
type Config struct {
	Templates TemplatesConfig   `yaml:"templates"`
	Template  string            `yaml:"template"`
	Model     ModelConfig       `yaml:"model"`
	Vars      map[string]string `yaml:"vars"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("generate: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if (c.Templates.Dir == "") == (c.Templates.BaseURL == "") {
		return fmt.Errorf("%w: set exactly one of templates.dir and templates.base_url", ErrInvalidConfig)
	}
	if c.Template == "" {
		return fmt.Errorf("%w: missing template name", ErrInvalidConfig)
	}
	if err := personakit.ValidateName(c.Template); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Source builds the template Source described by the config.
func (c *Config) Source() (personakit.Source, error) {
	if c.Templates.Dir != "" {
		return filesource.New(c.Templates.Dir), nil
	}
	var opts []httpsource.Option
	if c.Templates.AuthToken != "" {
		opts = append(opts, httpsource.WithAuthToken(c.Templates.AuthToken))
	}
	return httpsource.New(c.Templates.BaseURL, opts...)
}

// APIKey resolves the model API key from the environment variable named in
// the config, falling back to PERSONAKIT_API_KEY.
func (c *Config) APIKey() string {
	if c.Model.APIKeyEnv != "" {
		return os.Getenv(c.Model.APIKeyEnv)
	}
	return os.Getenv("PERSONAKIT_API_KEY")
}

// StringVars converts a plain string mapping (e.g. config vars or --var
// flags) to typed template variables.
func StringVars(m map[string]string) personakit.Vars {
	vars := make(personakit.Vars, len(m))
	for k, v := range m {
		vars[k] = personakit.String(v)
	}
	return vars
}

// MergeVars overlays extra on top of base without mutating either.
func MergeVars(base, extra personakit.Vars) personakit.Vars {
	out := make(personakit.Vars, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
