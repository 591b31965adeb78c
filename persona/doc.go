// Package persona defines the persona model and parses generated model
// output into it. Responses are expected to be JSON (a single persona object
// or an array), optionally wrapped in a markdown code fence.
package persona
