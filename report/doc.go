// Package report parses pre-rendered statistical text reports into template
// variables. A report is plain text with "Label: value" lines, optionally
// grouped under section headers; labels become snake_case variable keys that
// line up with {placeholder} names in prompt templates.
package report
