// Package embedsource provides an fs.FS-backed template Source, typically
// used with embed.FS so templates ship inside the binary. Use New with a
// filesystem and a root directory; Fetch resolves name to {root}/{name}.md.
package embedsource
