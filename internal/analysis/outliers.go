package analysis

import (
	"math"

	"github.com/KaramelBytes/pairstats/internal/dataset"
)

// Outliers lists samples whose y deviates from the y mean by more than two
// and three standard deviations. ThreeSigma is always a subset of TwoSigma.
type Outliers struct {
	TwoSigma   []dataset.Sample `json:"two_sigma" yaml:"two_sigma"`
	ThreeSigma []dataset.Sample `json:"three_sigma" yaml:"three_sigma"`
}

// FindOutliers classifies each sample by |y - meanY| against 2·sd and 3·sd.
// Samples keep their input order in both lists.
func FindOutliers(samples []dataset.Sample, meanY, sd float64) Outliers {
	var out Outliers
	for _, s := range samples {
		d := math.Abs(s.Y - meanY)
		if d > 3*sd {
			out.ThreeSigma = append(out.ThreeSigma, s)
		}
		if d > 2*sd {
			out.TwoSigma = append(out.TwoSigma, s)
		}
	}
	return out
}
