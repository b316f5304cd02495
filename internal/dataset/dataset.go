package dataset

// Axis selects one coordinate of a sample.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Sample is one observed (x, y) pair.
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Get returns the coordinate on the given axis.
func (s Sample) Get(a Axis) float64 {
	if a == AxisY {
		return s.Y
	}
	return s.X
}

// Dataset holds the paired samples under analysis. Samples are only ever
// reordered, never edited, so X()[i] and Y()[i] always belong together.
type Dataset struct {
	Samples []Sample
}

// New builds a dataset from equal-length coordinate slices. Extra values in
// the longer slice are ignored.
func New(xs, ys []float64) *Dataset {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	d := &Dataset{Samples: make([]Sample, n)}
	for i := 0; i < n; i++ {
		d.Samples[i] = Sample{X: xs[i], Y: ys[i]}
	}
	return d
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Samples)
}

// X returns the x coordinates in the current order.
func (d *Dataset) X() []float64 { return d.Values(AxisX) }

// Y returns the y coordinates in the current order.
func (d *Dataset) Y() []float64 { return d.Values(AxisY) }

// Values returns a fresh slice of the coordinates on one axis.
func (d *Dataset) Values(a Axis) []float64 {
	out := make([]float64, d.Len())
	for i, s := range d.Samples {
		out[i] = s.Get(a)
	}
	return out
}
