package day06

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

const sample = "Time:      7  15   30\nDistance:  9  40  200\n"

func bruteForce(r race) int {
	n := 0
	for h := 0; h <= r.time; h++ {
		if r.beats(h) {
			n++
		}
	}
	return n
}

func TestWays(t *testing.T) {
	tests := []struct {
		r    race
		want int
	}{
		{race{7, 9}, 4},
		{race{15, 40}, 8},
		{race{30, 200}, 9},
		{race{71530, 940200}, 71503},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.ways(), "%+v", tt.r)
	}
	for time := 1; time < 60; time++ {
		for record := 0; record < time*time/4+2; record += 3 {
			r := race{time, record}
			assert.Equal(t, bruteForce(r), r.ways(), "%+v", r)
		}
	}
}

func TestParts(t *testing.T) {
	assert.Equal(t, 288, Part1(sample))
	assert.Equal(t, 71503, Part2(sample))
}

func TestDocSample(t *testing.T) {
	daytest.SameSample(t, 6, "Part1", sample)
	daytest.SameSample(t, 6, "Part2", sample)
}
