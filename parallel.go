package aoc

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var parallelism atomic.Int64

// SetParallelism bounds the number of goroutines Parallel uses. n <= 0
// restores the default of GOMAXPROCS.
func SetParallelism(n int) {
	parallelism.Store(int64(n))
}

func workers() int {
	if n := parallelism.Load(); n > 0 {
		return int(n)
	}
	return runtime.GOMAXPROCS(0)
}

// Parallel maps f over in concurrently. Results are in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var g errgroup.Group
	g.SetLimit(workers())
	for i, v := range in {
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps f over in concurrently, then folds the results in
// order with f2.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

// ParallelSum maps f over in concurrently and sums the results.
func ParallelSum[A any, N Number](in []A, f func(A) N) N {
	return Fold(Parallel(in, f), func(acc, v N) N { return acc + v }, 0)
}

// ParallelMax maps f over in concurrently and returns the largest result.
func ParallelMax[A any, N Number](in []A, f func(A) N) N {
	out := Parallel(in, f)
	var best N
	for i, v := range out {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}
