package day01

import (
	"testing"

	"github.com/maisem/aoc/internal/daytest"
	"github.com/stretchr/testify/assert"
)

func TestCalibration(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"1abc2", false, 12},
		{"pqr3stu8vwx", false, 38},
		{"a1b2c3d4e5f", false, 15},
		{"treb7uchet", false, 77},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"abcone2threexyz", true, 13},
		{"xtwone3four", true, 24},
		{"4nineeightseven2", true, 42},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"eightwo", true, 82},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calibration(tt.line, tt.spelled), "calibration(%q, %v)", tt.line, tt.spelled)
	}
}

func TestParts(t *testing.T) {
	assert.Equal(t, 142, Part1(daytest.Sample(t, 1, "Part1")))
	assert.Equal(t, 281, Part2(daytest.Sample(t, 1, "Part2")))
}
