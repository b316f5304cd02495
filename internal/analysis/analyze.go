package analysis

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/KaramelBytes/pairstats/internal/dataset"
)

// AxisSummary holds the descriptive statistics of one coordinate.
type AxisSummary struct {
	Min       float64    `json:"min" yaml:"min"`
	Max       float64    `json:"max" yaml:"max"`
	Mean      float64    `json:"mean" yaml:"mean"`
	Median    float64    `json:"median" yaml:"median"`
	Mode      ModeResult `json:"mode" yaml:"mode"`
	Variance  float64    `json:"variance" yaml:"variance"`
	StdDev    float64    `json:"std_dev" yaml:"std_dev"`
	MADMean   float64    `json:"mad_mean" yaml:"mad_mean"`
	MADMedian float64    `json:"mad_median" yaml:"mad_median"`
	// MADMode is nil when the axis has no mode.
	MADMode *float64 `json:"mad_mode,omitempty" yaml:"mad_mode,omitempty"`
}

// Report is the full result of one run.
type Report struct {
	ID       string      `json:"id" yaml:"id"`
	Elements int         `json:"elements" yaml:"elements"`
	Empty    bool        `json:"empty" yaml:"empty"`
	X        AxisSummary `json:"x" yaml:"x"`
	Y        AxisSummary `json:"y" yaml:"y"`
	Line     Line        `json:"regression" yaml:"regression"`
	MidX     float64     `json:"mid_x" yaml:"mid_x"`
	MidY     float64     `json:"mid_y" yaml:"mid_y"`
	Outliers Outliers    `json:"outliers" yaml:"outliers"`
}

// Analyze computes every statistic for ds. The dataset is left sorted by x.
// An empty dataset yields a report with Empty set. On error no report is
// returned.
func Analyze(ds *dataset.Dataset, log logrus.FieldLogger) (*Report, error) {
	if log == nil {
		log = logrus.New()
	}
	rep := &Report{ID: uuid.NewString(), Elements: ds.Len()}
	if ds.Len() == 0 {
		rep.Empty = true
		log.WithField("stage", "analyze").Debug("no samples")
		return rep, nil
	}

	line, err := Regress(ds.X(), ds.Y())
	if err != nil {
		return nil, err
	}
	rep.Line = line
	log.WithFields(logrus.Fields{"stage": "regression", "a": line.A, "b": line.B}).Debug("fitted line")

	ds.SortBy(dataset.AxisY)
	rep.Y = summarize(ds.Y())
	log.WithFields(logrus.Fields{"stage": "summary", "axis": dataset.AxisY, "samples": ds.Len()}).Debug("axis done")

	ds.SortBy(dataset.AxisX)
	xs := ds.X()
	rep.X = summarize(xs)
	rep.MidX = Midpoint(xs)
	rep.MidY = line.Predict(rep.MidX)
	log.WithFields(logrus.Fields{"stage": "summary", "axis": dataset.AxisX, "samples": ds.Len()}).Debug("axis done")

	rep.Outliers = FindOutliers(ds.Samples, rep.Y.Mean, rep.Y.StdDev)
	log.WithFields(logrus.Fields{
		"stage": "outliers",
		"2x":    len(rep.Outliers.TwoSigma),
		"3x":    len(rep.Outliers.ThreeSigma),
	}).Debug("outlier pass done")
	return rep, nil
}

// summarize expects values sorted ascending.
func summarize(values []float64) AxisSummary {
	s := AxisSummary{
		Min:      Min(values),
		Max:      Max(values),
		Mean:     Mean(values),
		Median:   Median(values),
		Mode:     Mode(values),
		Variance: Variance(values),
	}
	s.StdDev = StdDev(values)
	s.MADMean = MeanAbsDev(values, s.Mean)
	s.MADMedian = MeanAbsDev(values, s.Median)
	if s.Mode.OK {
		d := MeanAbsDev(values, s.Mode.Value)
		s.MADMode = &d
	}
	return s
}
