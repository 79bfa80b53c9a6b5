// Package aoc are quick & dirty utilities for solving Advent of Code
// problems, plus the harness that runs the registered days.
// (forked from bradfitz/aoc)
package aoc

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

var (
	ErrSampleMismatch = errors.New("sample mismatch")
	ErrNoInput        = errors.New("no puzzle input")
	ErrUnknownDay     = errors.New("unknown day")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// top-level functions in src, keyed by function name.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solution.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Solver solves one part of a puzzle.
type Solver func(input string) int

// Part is one registered half of a day.
type Part struct {
	Name string // function name, e.g. "Part1"
	Part string // part label, e.g. "1"

	fn Solver
}

// Day is a registered puzzle day.
type Day struct {
	Num   int
	Parts []Part

	input   string
	source  []byte
	samples map[string]sample
	once    sync.Once
	err     error
}

// HasInput reports whether the day was built with a non-empty embedded input.
func (d *Day) HasInput() bool {
	return strings.TrimSpace(d.input) != ""
}

func (d *Day) loadSamples() error {
	d.once.Do(func() {
		d.samples, d.err = extractSamples(d.source)
	})
	return d.err
}

// Sample returns the sample attached to the named part, if any.
func (d *Day) Sample(p Part) (input, want string, ok bool) {
	if err := d.loadSamples(); err != nil {
		return "", "", false
	}
	s, ok := d.samples[p.Name]
	if !ok || s.input == "" {
		return "", "", false
	}
	return s.input, s.want, true
}

var (
	regMu    sync.Mutex
	registry = map[int]*Day{}
)

var partRx = regexp.MustCompile(`^Part(\d+.*)$`)

func funcName(fn Solver) string {
	full := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		return full[i+1:]
	}
	return full
}

// Register records the parts of a day. src is the source file holding the
// part functions (for sample extraction) and input is the embedded puzzle
// input. Part functions must be named Part{n}.
//
// It is meant to be called from init and panics on misuse.
func Register(day int, src []byte, input string, parts ...Solver) {
	d := &Day{
		Num:    day,
		input:  input,
		source: src,
	}
	for _, fn := range parts {
		name := funcName(fn)
		m := partRx.FindStringSubmatch(name)
		if m == nil {
			panic(fmt.Sprintf("aoc: day %d: part func %q not named Part{n}", day, name))
		}
		d.Parts = append(d.Parts, Part{Name: name, Part: m[1], fn: fn})
	}
	slices.SortFunc(d.Parts, func(a, b Part) int {
		return strings.Compare(a.Part, b.Part)
	})

	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("aoc: day %d registered twice", day))
	}
	registry[day] = d
}

// Days returns all registered days in order.
func Days() []*Day {
	regMu.Lock()
	defer regMu.Unlock()
	nums := maps.Keys(registry)
	slices.Sort(nums)
	out := make([]*Day, 0, len(nums))
	for _, n := range nums {
		out = append(out, registry[n])
	}
	return out
}

// Lookup returns the registered day.
func Lookup(day int) (*Day, error) {
	regMu.Lock()
	defer regMu.Unlock()
	d, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return d, nil
}

// Runner runs registered days: samples first, then the real input.
type Runner struct {
	Year   int
	Out    io.Writer   // defaults to os.Stdout
	Logger *zap.Logger // defaults to zap.L()
	Inputs *Inputs     // used when a day has no embedded input; may be nil

	Part       string // only run this part label when non-empty
	OnlySample bool
	SkipSample bool
	// Quiet prints only the answers, one per line.
	Quiet bool
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) log() *zap.Logger {
	if r.Logger == nil {
		return zap.L()
	}
	return r.Logger
}

func (r *Runner) printf(format string, args ...any) {
	if !r.Quiet {
		fmt.Fprintf(r.out(), format, args...)
	}
}

// Run runs the given days, or every registered day when none are given.
func (r *Runner) Run(ctx context.Context, days ...int) error {
	var todo []*Day
	if len(days) == 0 {
		todo = Days()
	}
	for _, n := range days {
		d, err := Lookup(n)
		if err != nil {
			return err
		}
		todo = append(todo, d)
	}
	for i, d := range todo {
		if i > 0 {
			r.printf("\n")
		}
		if err := r.RunDay(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) input(ctx context.Context, d *Day) (string, error) {
	if d.HasInput() {
		return d.input, nil
	}
	if r.Inputs == nil {
		return "", fmt.Errorf("day %d: %w", d.Num, ErrNoInput)
	}
	b, err := r.Inputs.Get(ctx, r.Year, d.Num)
	if err != nil {
		return "", fmt.Errorf("day %d: %w", d.Num, err)
	}
	return string(b), nil
}

// RunDay runs every selected part of d.
func (r *Runner) RunDay(ctx context.Context, d *Day) error {
	if err := d.loadSamples(); err != nil {
		return fmt.Errorf("day %d: %w", d.Num, err)
	}
	r.printf("Running day %d\n", d.Num)
	var input string
	for _, p := range d.Parts {
		if r.Part != "" && p.Part != r.Part {
			continue
		}
		if !r.SkipSample {
			if err := r.runSample(d, p); err != nil {
				return err
			}
		}
		if r.OnlySample {
			continue
		}
		if input == "" {
			var err error
			if input, err = r.input(ctx, d); err != nil {
				return err
			}
		}
		t0 := time.Now()
		got := p.fn(input)
		took := time.Since(t0)
		r.log().Debug("solved",
			zap.Int("day", d.Num),
			zap.String("part", p.Part),
			zap.Duration("took", took))
		if r.Quiet {
			fmt.Fprintln(r.out(), got)
			continue
		}
		r.printf("part %s: %v (took %v) \n", p.Part, got, took.Round(time.Microsecond))
	}
	return nil
}

func (r *Runner) runSample(d *Day, p Part) error {
	in, want, ok := d.Sample(p)
	if !ok {
		r.log().Debug("no sample", zap.Int("day", d.Num), zap.String("part", p.Part))
		return nil
	}
	t0 := time.Now()
	got := fmt.Sprint(p.fn(in))
	if got != want {
		r.printf("part %s: %v ❌; want %v\n", p.Part, got, want)
		return fmt.Errorf("day %d part %s: got %s, want %s: %w", d.Num, p.Part, got, want, ErrSampleMismatch)
	}
	r.printf("part %s sample: %v ✅ (%v) \n", p.Part, got, time.Since(t0).Round(time.Microsecond))
	return nil
}
