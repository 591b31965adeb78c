// Package filesource provides a filesystem-backed template Source.
// Use New with a directory; Fetch resolves name to {dir}/{name}.md.
package filesource
