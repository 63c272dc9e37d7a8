// Package report renders a classification as text tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/TrevorS/classbreaks"
	"github.com/TrevorS/classbreaks/stats"
)

// Summary describes the sample behind a classification.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // sample standard deviation, n-1 denominator

	// GVF is the goodness of variance fit; HasGVF is false when it is
	// undefined, as for a constant sample.
	GVF    float64
	HasGVF bool
}

// Summarize computes the summary of values against res.
func Summarize(res *classbreaks.Result[float64], values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("report: no values")
	}

	s := Summary{
		N:      len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   stat.Mean(values, nil),
		Median: stats.Median(values),
		StdDev: stat.StdDev(values, nil),
	}

	gvf, err := res.GoodnessOfVarianceFit(values)
	switch {
	case err == nil:
		s.GVF, s.HasGVF = gvf, true
	case errors.Is(err, stats.ErrZeroVariance):
	default:
		return Summary{}, err
	}
	return s, nil
}

// Render writes the class table followed by the summary table. Numbers are
// printed with precision decimals.
func Render(w io.Writer, res *classbreaks.Result[float64], values []float64, precision int) error {
	summary, err := Summarize(res, values)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, %d classes\n", res.Method, res.ClassCount)

	counts := res.Counts(values)
	classes := tablewriter.NewWriter(w)
	classes.SetHeader([]string{"class", "lower", "upper", "count"})
	classes.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := 0; i < res.ClassCount; i++ {
		classes.Append([]string{
			strconv.Itoa(i),
			formatFloat(res.Bounds[i], precision),
			formatFloat(res.Bounds[i+1], precision),
			strconv.Itoa(counts[i]),
		})
	}
	classes.Render()

	gvf := "n/a"
	if summary.HasGVF {
		gvf = formatFloat(summary.GVF, precision)
	}

	totals := tablewriter.NewWriter(w)
	totals.SetHeader([]string{"n", "min", "max", "mean", "median", "stddev", "gvf"})
	totals.SetAlignment(tablewriter.ALIGN_RIGHT)
	totals.Append([]string{
		strconv.Itoa(summary.N),
		formatFloat(summary.Min, precision),
		formatFloat(summary.Max, precision),
		formatFloat(summary.Mean, precision),
		formatFloat(summary.Median, precision),
		formatFloat(summary.StdDev, precision),
		gvf,
	})
	totals.Render()
	return nil
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
