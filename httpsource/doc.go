// Package httpsource provides an HTTP-backed template Source. Fetch resolves
// name to {baseURL}/{name}.md and supports Bearer token authentication.
// A non-success response is a load failure; nothing is retried here.
package httpsource
