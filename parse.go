package aoc

import (
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Fatalf logs the message through the global logger and exits the process.
// Puzzle inputs are trusted, so malformed input is never recovered from.
func Fatalf(format string, args ...any) {
	zap.S().Fatalf(format, args...)
}

// Debugf logs at debug level through the global logger.
func Debugf(format string, args ...any) {
	zap.S().Debugf(format, args...)
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields returns the whitespace separated ints in s.
func Fields(s string) []int {
	return Ints(strings.Fields(s)...)
}

// Lines returns the lines of s without the trailing newline.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Blocks returns the blank-line separated blocks of s.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, b := range strings.Split(strings.TrimSpace(s), "\n\n") {
		if b = strings.Trim(b, "\n"); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// TrimPrefix is like strings.TrimPrefix, but the prefix must be present.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		Fatalf("bad prefix %q: %q", prefix, s)
	}
	return s1
}

// Cut is like strings.Cut, but sep must be present.
func Cut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		Fatalf("missing %q in %q", sep, s)
	}
	return before, after
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}
