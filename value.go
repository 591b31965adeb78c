package personakit

import "strconv"

// Vars is a caller-supplied variable mapping consumed by Apply and Fill.
// The engine does not retain it between calls.
type Vars map[string]Value

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindString
	kindInt
	kindNumber
)

// Value is a template variable value: a string, an integer, a floating-point
// number, or absent. The zero Value is absent and formats as the empty
// string, so a key can be supplied without a value to blank its placeholder.
type Value struct {
	kind valueKind
	s    string
	f    float64
	n    int64
}

// String returns a string Value.
func String(s string) Value { return Value{kind: kindString, s: s} }

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: kindInt, n: n} }

// Number returns a floating-point Value.
func Number(f float64) Value { return Value{kind: kindNumber, f: f} }

// Absent is the explicit absent Value; its placeholder is replaced by "".
var Absent = Value{}

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// Format returns the canonical string form used in substitution.
// Numbers use plain decimal notation with no locale formatting; absent
// values format as the empty string.
func (v Value) Format() string {
	switch v.kind {
	case kindString:
		return v.s
	case kindInt:
		return strconv.FormatInt(v.n, 10)
	case kindNumber:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return ""
	}
}
