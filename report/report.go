package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/personakit/personakit"
)

// ErrEmptyReport indicates the report contained no "Label: value" lines.
var ErrEmptyReport = errors.New("report: no statistics found")

// Report is a parsed statistical report.
type Report struct {
	Title string
	Vars  personakit.Vars
}

// Parse reads a statistical text report. Lines of the form "Label: value"
// become variables; a line without a colon followed by a "---"/"===" rule is
// a section header, and keys inside a section are prefixed with it
// ("Devices" + "Mobile" -> "devices_mobile"). The first header is the report
// title. Numeric values become Number/Int variables; everything else stays a
// string.
func Parse(r io.Reader) (*Report, error) {
	rep := &Report{Vars: make(personakit.Vars)}
	var section string
	var prev string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			prev = ""
			continue
		}
		if isRule(line) {
			if prev != "" {
				if rep.Title == "" {
					rep.Title = prev
					section = ""
				} else {
					section = normalizeKey(prev)
				}
			}
			prev = ""
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			prev = line
			continue
		}
		prev = ""
		key := normalizeKey(label)
		if key == "" {
			continue
		}
		if section != "" {
			key = section + "_" + key
		}
		rep.Vars[key] = parseValue(strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}
	if len(rep.Vars) == 0 {
		return nil, ErrEmptyReport
	}
	if rep.Title != "" {
		rep.Vars["report_title"] = personakit.String(rep.Title)
	}
	return rep, nil
}

// ParseFile reads and parses a report file.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("report: open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// isRule reports whether line is a header underline like "----" or "====".
func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '=' {
			return false
		}
	}
	return true
}

// normalizeKey turns a label into a snake_case placeholder identifier:
// "Median Age" -> "median_age".
func normalizeKey(label string) string {
	var b strings.Builder
	lastUnderscore := true // trims leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// parseValue converts a raw value to a typed variable. Thousands separators
// are tolerated in numbers; anything that is not fully numeric (units,
// percentages, ranges) keeps its string form.
func parseValue(raw string) personakit.Value {
	if raw == "" {
		return personakit.Absent
	}
	plain := strings.ReplaceAll(raw, ",", "")
	if n, err := strconv.ParseInt(plain, 10, 64); err == nil {
		return personakit.Int(n)
	}
	if f, err := strconv.ParseFloat(plain, 64); err == nil {
		return personakit.Number(f)
	}
	return personakit.String(raw)
}
