package aoc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line

after-blank
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line

after-blank
`,
			},
			ok: true,
		},
		{
			comment: "// want=42",
			want:    sample{want: "42"},
			ok:      true,
		},
		{
			comment: "// Part1 solves it.",
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const testSource = `package x

// Part1 sums the lines.
/*
want=3

1
2
*/
func Part1(input string) int { return 0 }

// Part2 multiplies them.
//
// want=2
func Part2(input string) int { return 0 }

// Part3 has no sample.
func Part3(input string) int { return 0 }
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(testSource))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"Part1": {input: "1\n2\n", want: "3"},
		"Part2": {input: "1\n2\n", want: "2"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}

	if _, err := extractSamples([]byte("not go")); err == nil {
		t.Error("extractSamples accepted invalid source")
	}
}

// Part1 and Part2 are registered as test days.
func Part1(input string) int {
	sum := 0
	for _, l := range Lines(input) {
		sum += Int(l)
	}
	return sum
}

func Part2(input string) int {
	p := 1
	for _, l := range Lines(input) {
		p *= Int(l)
	}
	return p
}

const (
	goodDay    = 1001
	badDay     = 1002
	noInputDay = 1003
)

func init() {
	Register(goodDay, []byte(testSource), "3\n4\n", Part2, Part1)
	Register(badDay, []byte(strings.Replace(testSource, "want=3", "want=4", 1)), "3\n4\n", Part1, Part2)
	Register(noInputDay, []byte(testSource), "", Part1)
}

func TestRegister(t *testing.T) {
	d, err := Lookup(goodDay)
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, p := range d.Parts {
		labels = append(labels, p.Name+"="+p.Part)
	}
	if diff := cmp.Diff([]string{"Part1=1", "Part2=2"}, labels); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
	if in, want, ok := d.Sample(d.Parts[1]); !ok || in != "1\n2\n" || want != "2" {
		t.Errorf("Sample = %q, %q, %v", in, want, ok)
	}

	if _, err := Lookup(4242); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Lookup(4242) = %v, want ErrUnknownDay", err)
	}

	days := Days()
	for i := 1; i < len(days); i++ {
		if days[i-1].Num >= days[i].Num {
			t.Fatalf("Days not sorted: %d before %d", days[i-1].Num, days[i].Num)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"duplicate": func() { Register(goodDay, nil, "", Part1) },
		"bad name":  func() { Register(2001, nil, "", Lines2Int) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			f()
		})
	}
}

// Lines2Int is a solver with a name Register rejects.
func Lines2Int(input string) int { return len(Lines(input)) }

func TestRunner(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out}
	if err := r.Run(context.Background(), goodDay); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Running day 1001\n",
		"part 1 sample: 3 ✅",
		"part 1: 7 (took",
		"part 2 sample: 2 ✅",
		"part 2: 12 (took",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunnerQuiet(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Quiet: true, Part: "2"}
	if err := r.Run(context.Background(), goodDay); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "12\n" {
		t.Errorf("quiet output = %q, want %q", got, "12\n")
	}
}

func TestRunnerSampleMismatch(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out}
	err := r.Run(context.Background(), badDay)
	if !errors.Is(err, ErrSampleMismatch) {
		t.Fatalf("Run = %v, want ErrSampleMismatch", err)
	}
	if !strings.Contains(out.String(), "part 1: 3 ❌; want 4") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunnerOnlySample(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, OnlySample: true}
	if err := r.Run(context.Background(), noInputDay); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "took") {
		t.Errorf("ran the real input:\n%s", out.String())
	}
}

func TestRunnerInputs(t *testing.T) {
	r := &Runner{Out: new(bytes.Buffer), SkipSample: true, Year: 2023}
	if err := r.Run(context.Background(), noInputDay); !errors.Is(err, ErrNoInput) {
		t.Fatalf("Run without inputs = %v, want ErrNoInput", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "2023", "1003.input")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("5\n6\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r = &Runner{Out: &out, Quiet: true, Year: 2023, Inputs: &Inputs{CacheDir: dir}}
	if err := r.Run(context.Background(), noInputDay); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "11\n" {
		t.Errorf("output = %q, want %q", got, "11\n")
	}
}
