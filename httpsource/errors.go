package httpsource

import "errors"

// Sentinel errors for HTTP document fetches.
// Callers should use errors.Is to check.
var (
	// ErrFetchFailed indicates the request could not be completed.
	ErrFetchFailed = errors.New("httpsource: fetch failed")
	// ErrHTTPStatus indicates an unexpected HTTP status (e.g. 500).
	ErrHTTPStatus = errors.New("httpsource: unexpected HTTP status")
	// ErrNotFound indicates the server returned 404 for the document.
	ErrNotFound = errors.New("httpsource: document not found")
)
