// Package generate wires the pipeline together: report variables are filled
// into a prompt template through the resolution engine, the prompt goes to a
// completion model, and the response is parsed into personas.
package generate
