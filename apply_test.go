package personakit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Substitution(t *testing.T) {
	t.Parallel()
	got := Apply("Hello {name}, you are {age}", Vars{
		"name": String("Kim"),
		"age":  Int(30),
	})
	assert.Equal(t, "Hello Kim, you are 30", got)
}

func TestApply_AbsentValueBecomesEmpty(t *testing.T) {
	t.Parallel()
	// "a" is supplied but absent: its placeholder blanks out.
	// "b" is not in the mapping at all: its placeholder survives verbatim.
	got := Apply("A:{a} B:{b}", Vars{"a": Absent})
	assert.Equal(t, "A: B:{b}", got)
}

func TestApply_UnmatchedPlaceholderVerbatim(t *testing.T) {
	t.Parallel()
	got := Apply("Hello {who}", Vars{"name": String("Kim")})
	assert.Equal(t, "Hello {who}", got)
}

func TestApply_RepeatedPlaceholder(t *testing.T) {
	t.Parallel()
	got := Apply("{x}-{x}", Vars{"x": String("Z")})
	assert.Equal(t, "Z-Z", got)
}

func TestApply_EmptyTemplate(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Apply("", Vars{"anything": Int(1)}))
	assert.Empty(t, Apply("", nil))
}

func TestApply_NilVars(t *testing.T) {
	t.Parallel()
	got := Apply("Hello {name}", nil)
	assert.Equal(t, "Hello {name}", got)
}

func TestApply_NumberCanonicalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", Int(42), "42"},
		{"negative integer", Int(-7), "-7"},
		{"whole float", Number(30), "30"},
		{"fraction", Number(3.5), "3.5"},
		{"small fraction", Number(0.25), "0.25"},
		{"negative float", Number(-1.5), "-1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Apply("{v}", Vars{"v": tt.v})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_NoWhitespaceToleranceInsideBraces(t *testing.T) {
	t.Parallel()
	// "{ name }" is not the placeholder "{name}"; it stays untouched.
	got := Apply("Hello { name } and {name}", Vars{"name": String("Kim")})
	assert.Equal(t, "Hello { name } and Kim", got)
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()
	vars := Vars{"name": String("Kim"), "age": Int(30)}
	first := Apply("Hi {name} ({age})", vars)
	second := Apply("Hi {name} ({age})", vars)
	assert.Equal(t, first, second)
}

func TestApply_MultilineTemplate(t *testing.T) {
	t.Parallel()
	tmpl := "Persona for {segment}:\n- median age {median_age}\n- top region {region}"
	got := Apply(tmpl, Vars{
		"segment":    String("returning visitors"),
		"median_age": Number(34.5),
		"region":     String("EMEA"),
	})
	assert.Equal(t, "Persona for returning visitors:\n- median age 34.5\n- top region EMEA", got)
}
