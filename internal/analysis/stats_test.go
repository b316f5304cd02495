package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/pairstats/internal/dataset"
)

func TestMinMaxMean(t *testing.T) {
	v := []float64{3, -1.5, 8, 2}
	require.Equal(t, -1.5, Min(v))
	require.Equal(t, 8.0, Max(v))
	require.InDelta(t, 2.875, Mean(v), 1e-12)
}

func TestMedian(t *testing.T) {
	require.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	require.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	require.Equal(t, 7.0, Median([]float64{7}))
}

func TestVarianceIsPopulation(t *testing.T) {
	v := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	require.Equal(t, 5.0, Mean(v))
	require.Equal(t, 4.0, Variance(v))
	require.Equal(t, 2.0, StdDev(v))
	require.Equal(t, 0.0, Variance([]float64{42}))
}

func TestAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	xs := make([]float64, 200)
	ys := make([]float64, 200)
	for i := range xs {
		xs[i] = rng.Float64() * 50
		ys[i] = 3*xs[i] - 7 + rng.NormFloat64()
	}
	require.InDelta(t, stat.Mean(xs, nil), Mean(xs), 1e-9)
	require.InDelta(t, stat.PopVariance(xs, nil), Variance(xs), 1e-9)
	require.InDelta(t, stat.PopStdDev(ys, nil), StdDev(ys), 1e-9)

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	line, err := Regress(xs, ys)
	require.NoError(t, err)
	require.InDelta(t, alpha, line.A, 1e-9)
	require.InDelta(t, beta, line.B, 1e-9)
}

func TestMeanAbsDev(t *testing.T) {
	v := []float64{1, 2, 3, 4, 10}
	require.InDelta(t, 2.4, MeanAbsDev(v, Mean(v)), 1e-12)
	require.InDelta(t, 2.2, MeanAbsDev(v, Median(v)), 1e-12)
	require.InDelta(t, 3.0, MeanAbsDev(v, 1), 1e-12)
}

func TestMode(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want ModeResult
	}{
		{"tie for most frequent", []float64{1, 1, 2, 2, 3}, ModeResult{}},
		{"clear mode", []float64{1, 1, 1, 2, 3}, ModeResult{Value: 1, Frequency: 3, OK: true}},
		{"all unique", []float64{1, 2, 3}, ModeResult{}},
		{"two unique", []float64{1, 2}, ModeResult{}},
		{"single value", []float64{5}, ModeResult{Value: 5, Frequency: 1, OK: true}},
		{"empty", nil, ModeResult{}},
		{"all equal", []float64{4, 4}, ModeResult{Value: 4, Frequency: 2, OK: true}},
		{"mode at end", []float64{2, 3, 3}, ModeResult{Value: 3, Frequency: 2, OK: true}},
		{"later tie invalidates", []float64{1, 2, 2, 3, 3}, ModeResult{}},
		{"longer run restores", []float64{1, 1, 2, 2, 5, 5, 5}, ModeResult{Value: 5, Frequency: 3, OK: true}},
		{"tie after longest", []float64{1, 1, 1, 2, 3, 3, 3}, ModeResult{}},
		{"shorter runs after", []float64{0, 0, 0, 1, 1, 2}, ModeResult{Value: 0, Frequency: 3, OK: true}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Mode(c.in), c.name)
	}
}

func TestRegress(t *testing.T) {
	line, err := Regress([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	require.Equal(t, Line{A: 0, B: 2}, line)
	require.Equal(t, 10.0, line.Predict(5))

	// Order independent.
	shuffled, err := Regress([]float64{3, 1, 2}, []float64{6, 2, 4})
	require.NoError(t, err)
	require.Equal(t, line, shuffled)
}

func TestRegressDegenerate(t *testing.T) {
	_, err := Regress([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDegenerateRegression)

	_, err = Regress([]float64{1}, []float64{9})
	require.ErrorIs(t, err, ErrDegenerateRegression)

	_, err = Regress(nil, nil)
	require.ErrorIs(t, err, ErrDegenerateRegression)

	_, err = Regress([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRegressNonFinite(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
	}{
		{"infinite x", []float64{math.Inf(1), 2, 4}, []float64{1, 3, 5}},
		{"negative infinite x", []float64{1, math.Inf(-1), 4}, []float64{1, 3, 5}},
		{"infinite y", []float64{1, 2, 4}, []float64{1, math.Inf(1), 5}},
		{"nan y", []float64{1, 2, 4}, []float64{1, math.NaN(), 5}},
		{"overflowing products", []float64{-1e200, 0, 1e200}, []float64{-1e200, 0, 1e200}},
	}
	for _, c := range cases {
		line, err := Regress(c.xs, c.ys)
		require.ErrorIs(t, err, ErrNonFinite, c.name)
		require.Equal(t, Line{}, line, c.name)
	}
}

func TestMidpoint(t *testing.T) {
	require.Equal(t, 2.5, Midpoint([]float64{-1, 0, 6}))
	require.Equal(t, 4.0, Midpoint([]float64{4}))
}

func samplesWithY(ys ...float64) []dataset.Sample {
	out := make([]dataset.Sample, len(ys))
	for i, y := range ys {
		out[i] = dataset.Sample{X: float64(i), Y: y}
	}
	return out
}

func outliersFor(s []dataset.Sample) Outliers {
	ys := make([]float64, len(s))
	for i := range s {
		ys[i] = s[i].Y
	}
	return FindOutliers(s, Mean(ys), StdDev(ys))
}

func TestFindOutliersThreeSigmaCountsTwice(t *testing.T) {
	// Ten zeros and one 100: the 100 sits about 3.16 sd from the mean.
	ys := make([]float64, 11)
	ys[10] = 100
	got := outliersFor(samplesWithY(ys...))
	require.Equal(t, []dataset.Sample{{X: 10, Y: 100}}, got.ThreeSigma)
	require.Equal(t, []dataset.Sample{{X: 10, Y: 100}}, got.TwoSigma)
}

func TestFindOutliersTwoSigmaOnly(t *testing.T) {
	// Five zeros and one 10: about 2.24 sd from the mean.
	got := outliersFor(samplesWithY(0, 0, 0, 0, 0, 10))
	require.Empty(t, got.ThreeSigma)
	require.Equal(t, []dataset.Sample{{X: 5, Y: 10}}, got.TwoSigma)
}

func TestFindOutliersExactThresholds(t *testing.T) {
	// Nine zeros and a 10: mean 1, sd 3, the 10 sits exactly 3 sd out.
	got := outliersFor(samplesWithY(0, 0, 0, 0, 0, 0, 0, 0, 0, 10))
	require.Empty(t, got.ThreeSigma)
	require.Equal(t, []dataset.Sample{{X: 9, Y: 10}}, got.TwoSigma)

	// Four zeros and a 5: mean 1, sd 2, the 5 sits exactly 2 sd out.
	got = outliersFor(samplesWithY(0, 0, 0, 0, 5))
	require.Empty(t, got.TwoSigma)
	require.Empty(t, got.ThreeSigma)
}

func TestFindOutliersNone(t *testing.T) {
	got := outliersFor(samplesWithY(1, 2, 3, 4))
	require.Empty(t, got.TwoSigma)
	require.Empty(t, got.ThreeSigma)

	// Zero spread never flags anything.
	got = outliersFor(samplesWithY(5, 5, 5))
	require.Empty(t, got.TwoSigma)
}

func TestFindOutliersSubset(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ys := make([]float64, 300)
	for i := range ys {
		ys[i] = rng.NormFloat64()
		if i%50 == 0 {
			ys[i] = 12
		}
	}
	s := samplesWithY(ys...)
	got := outliersFor(s)
	mean, sd := Mean(ys), StdDev(ys)
	in2 := map[float64]bool{}
	for _, o := range got.TwoSigma {
		require.Greater(t, math.Abs(o.Y-mean), 2*sd)
		in2[o.X] = true
	}
	for _, o := range got.ThreeSigma {
		require.Greater(t, math.Abs(o.Y-mean), 3*sd)
		require.True(t, in2[o.X], "3x outlier %v missing from 2x list", o)
	}
	require.NotEmpty(t, got.ThreeSigma)
}
