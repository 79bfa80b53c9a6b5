// Package daytest holds helpers shared by the per-day tests.
package daytest

import (
	"strings"
	"testing"

	"github.com/maisem/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample returns the sample input from the doc comment of the named part
// function of a registered day.
func Sample(t testing.TB, day int, part string) string {
	t.Helper()
	d, err := aoc.Lookup(day)
	require.NoError(t, err)
	for _, p := range d.Parts {
		if p.Name != part {
			continue
		}
		in, _, ok := d.Sample(p)
		require.True(t, ok, "day %d %s has no sample", day, part)
		return in
	}
	require.FailNow(t, "part not registered", "day %d %s", day, part)
	return ""
}

// SameSample asserts that input is the sample in the doc comment of part,
// ignoring surrounding blank lines.
func SameSample(t testing.TB, day int, part, input string) {
	t.Helper()
	want := strings.TrimSpace(Sample(t, day, part))
	assert.Equal(t, want, strings.TrimSpace(input), "day %d %s doc sample", day, part)
}
