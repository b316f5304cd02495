package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/pairstats/internal/dataset"
	"github.com/KaramelBytes/pairstats/internal/utils"
	"gopkg.in/yaml.v3"
)

const rule = "-------------------------------------------------------------------"

// Text renders the report as the fixed two-column table, x first then y.
// precision is the number of decimals printed for every quantity.
func (r *Report) Text(precision int) string {
	if precision < 0 {
		precision = 3
	}
	var b strings.Builder
	num := func(v float64) string { return fmt.Sprintf("%10.*f", precision, v) }
	row := func(label, x, y string) {
		fmt.Fprintf(&b, "%-24s%14s\t\t%10s\n", label, x, y)
	}

	b.WriteString("Results:\n")
	b.WriteString(rule + "\n")
	if r.Empty {
		fmt.Fprintf(&b, "%-24s%14s\n", "# elements", "no samples")
		return b.String()
	}
	row("# elements", fmt.Sprint(r.Elements), fmt.Sprint(r.Elements))
	row("minimum", num(r.X.Min), num(r.Y.Min))
	row("maximum", num(r.X.Max), num(r.Y.Max))
	row("mean", num(r.X.Mean), num(r.Y.Mean))
	row("median", num(r.X.Median), num(r.Y.Median))

	freq := func(m ModeResult) string {
		if !m.OK {
			return "no mode"
		}
		return fmt.Sprintf("freq.= %3d", m.Frequency)
	}
	modeVal := func(m ModeResult) string {
		if !m.OK {
			return ""
		}
		return num(m.Value)
	}
	row("mode", freq(r.X.Mode), freq(r.Y.Mode))
	if r.X.Mode.OK || r.Y.Mode.OK {
		row("", modeVal(r.X.Mode), modeVal(r.Y.Mode))
	}

	row("variance", num(r.X.Variance), num(r.Y.Variance))
	row("std. dev.", num(r.X.StdDev), num(r.Y.StdDev))
	b.WriteString("mean absolute deviations:\n")
	row("-> about the mean", num(r.X.MADMean), num(r.Y.MADMean))
	row("-> about the median", num(r.X.MADMedian), num(r.Y.MADMedian))
	madMode := func(d *float64) string {
		if d == nil {
			return "no mode"
		}
		return num(*d)
	}
	row("-> about the mode", madMode(r.X.MADMode), madMode(r.Y.MADMode))

	fmt.Fprintf(&b, "%-24s%6s%8.*f\t\t%4s%8.*f\n", "regression line", "a = ", precision, r.Line.A, "b = ", precision, r.Line.B)
	fmt.Fprintf(&b, "%-24s%6s%8.*f\t\t%4s%8.*f\n", "Y at mid(X)", "x = ", precision, r.MidX, "y = ", precision, r.MidY)

	writeOutliers(&b, "Outliers(2x)", r.Outliers.TwoSigma, num)
	writeOutliers(&b, "Outliers(3x)", r.Outliers.ThreeSigma, num)
	return b.String()
}

func writeOutliers(b *strings.Builder, title string, samples []dataset.Sample, num func(float64) string) {
	if len(samples) == 0 {
		fmt.Fprintf(b, "%-24s%14s\n", title, "no outliers")
		return
	}
	fmt.Fprintf(b, "%-24s%s%3d\n", title, "# outliers = ", len(samples))
	for _, s := range samples {
		fmt.Fprintf(b, "%-24s%14s\t\t%10s\n", "", num(s.X), num(s.Y))
	}
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := utils.PrettyJSON(r)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}

// Render formats the report in one of "text", "json" or "yaml".
func (r *Report) Render(format string, precision int) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return []byte(r.Text(precision)), nil
	case "json":
		return r.JSON()
	case "yaml", "yml":
		return r.YAML()
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text|json|yaml)", format)
	}
}
