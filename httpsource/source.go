package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/personakit/personakit"
)

// Ensures Source implements personakit.Source.
var _ personakit.Source = (*Source)(nil)

// maxBodySize limits response body size (1 MB); template documents are small.
const maxBodySize = 1 << 20

// defaultUserAgent is the User-Agent header value for requests.
const defaultUserAgent = "personakit/1.0"

// Source fetches template documents over HTTP from {baseURL}/{name}.md.
type Source struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the HTTP client. Default has 30s timeout. If c is nil, the default client is left unchanged.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithAuthToken sets the Bearer token for the Authorization header.
func WithAuthToken(token string) Option {
	return func(s *Source) {
		s.authToken = token
	}
}

// New creates a Source. baseURL must be a valid URL (e.g. https://cdn.example.com/prompts).
func New(baseURL string, opts ...Option) (*Source, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("httpsource: base URL must not be empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" {
		return nil, fmt.Errorf("httpsource: invalid base URL %q", baseURL)
	}
	s := &Source{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fetch requests {baseURL}/{name}.md. 404 returns ErrNotFound; other
// non-2xx returns ErrHTTPStatus.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := personakit.ValidateName(name); err != nil {
		return nil, err
	}
	u := s.baseURL + "/" + url.PathEscape(personakit.TemplatePath(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}
	resp, err := s.httpClient.Do(req) // #nosec G704 -- URL is from config and path-escaped name
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %w: %s %s", ErrFetchFailed, ErrHTTPStatus, resp.Status, u)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	// Detect truncation: if more data is available, body exceeded maxBodySize.
	probe := make([]byte, 1)
	if n, _ := resp.Body.Read(probe); n > 0 {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrFetchFailed, maxBodySize)
	}
	return data, nil
}
