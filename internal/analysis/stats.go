package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRegression indicates the x values have zero spread, so no
// least-squares slope exists. This covers single-sample datasets.
var ErrDegenerateRegression = errors.New("regression undefined: all x values are equal")

// ErrNonFinite indicates an infinite or NaN value made the regression
// coefficients non-finite.
var ErrNonFinite = errors.New("regression undefined: non-finite input")

// ErrLengthMismatch indicates paired slices of different lengths.
var ErrLengthMismatch = errors.New("x and y lengths differ")

// ModeResult is the outcome of mode detection. OK is false when the data has
// no unique most frequent value.
type ModeResult struct {
	Value     float64 `json:"value" yaml:"value"`
	Frequency int     `json:"frequency" yaml:"frequency"`
	OK        bool    `json:"ok" yaml:"ok"`
}

// Line is a least-squares regression line y = A + B·x.
type Line struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// Predict evaluates the line at x.
func (l Line) Predict(x float64) float64 {
	return l.A + l.B*x
}

// Min returns the smallest value. values must be non-empty.
func Min(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value. values must be non-empty.
func Max(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Mean returns the arithmetic mean.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle of sorted values, averaging the two middle
// elements when the length is even.
func Median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[(n-1)/2] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// Variance returns the population variance (divisor n).
func Variance(values []float64) float64 {
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// MeanAbsDev returns the mean absolute deviation of values about center.
func MeanAbsDev(values []float64, center float64) float64 {
	var sum float64
	for _, v := range values {
		sum += math.Abs(v - center)
	}
	return sum / float64(len(values))
}

// Mode scans runs of equal values in sorted input for the longest one.
//
// A later run that only ties the longest run invalidates the mode, even
// though a value was already chosen; a strictly longer run restores it.
// If the winning run has length one and there is more than one value,
// every value is unique and there is no mode.
func Mode(sorted []float64) ModeResult {
	var value float64
	var freq, longest, j int
	n := len(sorted)
	for i := 0; i < n; i = j {
		run := 0
		for j = i; j < n && sorted[j] == sorted[i]; j++ {
			run++
		}
		switch {
		case run > longest:
			longest = run
			freq = run
			value = sorted[i]
		case run == longest:
			freq = 0
		}
	}
	if freq == 0 || (freq == 1 && n > 1) {
		return ModeResult{}
	}
	return ModeResult{Value: value, Frequency: freq, OK: true}
}

// Regress fits y = a + b·x by ordinary least squares. Sample order does not
// matter.
func Regress(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("regress: %w (%d vs %d)", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Line{}, fmt.Errorf("regress: %w", ErrDegenerateRegression)
	}
	mx, my := Mean(xs), Mean(ys)
	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - mx
		sxx += dx * dx
		sxy += dx * (ys[i] - my)
	}
	if isNonFinite(sxx) || isNonFinite(sxy) {
		return Line{}, fmt.Errorf("regress: %w", ErrNonFinite)
	}
	if sxx == 0 {
		return Line{}, fmt.Errorf("regress: %w", ErrDegenerateRegression)
	}
	b := sxy / sxx
	a := my - b*mx
	if isNonFinite(a) || isNonFinite(b) {
		return Line{}, fmt.Errorf("regress: %w", ErrNonFinite)
	}
	return Line{A: a, B: b}, nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Midpoint returns the point halfway between the first and last of sorted
// values. sorted must be non-empty and ascending.
func Midpoint(sorted []float64) float64 {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	return lo + (hi-lo)/2
}
