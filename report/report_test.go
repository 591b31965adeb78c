package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/personakit/personakit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `Audience Statistics
===================

Visitors: 10,432
Median Age: 34.5
Top Region: EMEA
Returning Share: 42%

Devices
-------
Mobile: 61%
Desktop: 35
`

func TestParse_Sample(t *testing.T) {
	t.Parallel()
	rep, err := Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)
	assert.Equal(t, "Audience Statistics", rep.Title)

	assert.Equal(t, personakit.Int(10432), rep.Vars["visitors"])
	assert.Equal(t, personakit.Number(34.5), rep.Vars["median_age"])
	assert.Equal(t, personakit.String("EMEA"), rep.Vars["top_region"])
	assert.Equal(t, personakit.String("42%"), rep.Vars["returning_share"])
	assert.Equal(t, personakit.String("61%"), rep.Vars["devices_mobile"])
	assert.Equal(t, personakit.Int(35), rep.Vars["devices_desktop"])
	assert.Equal(t, personakit.String("Audience Statistics"), rep.Vars["report_title"])
}

func TestParse_VarsFillTemplate(t *testing.T) {
	t.Parallel()
	rep, err := Parse(strings.NewReader(sampleReport))
	require.NoError(t, err)
	got := personakit.Apply("Typical visitor: {median_age} years old, {top_region}.", rep.Vars)
	assert.Equal(t, "Typical visitor: 34.5 years old, EMEA.", got)
}

func TestParse_NoSections(t *testing.T) {
	t.Parallel()
	rep, err := Parse(strings.NewReader("Sessions: 12\nBounce Rate: 48%\n"))
	require.NoError(t, err)
	assert.Empty(t, rep.Title)
	assert.Equal(t, personakit.Int(12), rep.Vars["sessions"])
	assert.Equal(t, personakit.String("48%"), rep.Vars["bounce_rate"])
}

func TestParse_EmptyValueIsAbsent(t *testing.T) {
	t.Parallel()
	rep, err := Parse(strings.NewReader("Campaign:\nClicks: 3\n"))
	require.NoError(t, err)
	v, ok := rep.Vars["campaign"]
	require.True(t, ok)
	assert.True(t, v.IsAbsent())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyReport)

	_, err = Parse(strings.NewReader("just prose\nwith no stats\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label string
		want  string
	}{
		{"Median Age", "median_age"},
		{"Top Region", "top_region"},
		{"  Bounce  Rate  ", "bounce_rate"},
		{"Share (%)", "share"},
		{"95th Percentile", "95th_percentile"},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeKey(tt.label))
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0600))
	rep, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, personakit.Int(10432), rep.Vars["visitors"])

	_, err = ParseFile(filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
}
