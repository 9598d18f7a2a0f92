// Package reporting writes the tab separated similarity reports and the benchmark plots.
package reporting

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/will-rowe/anise/src/ani"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Row is a single line of a similarity report
type Row interface {
	Header() string
	String() string
}

// JaccardRow is the report for a comparison of full k-mer sets
type JaccardRow struct {
	FileA, FileB string
	ani.Estimate
}

// Header returns the column names for a JaccardRow
func (row *JaccardRow) Header() string {
	return "filename_a\tfilename_b\tjaccard\tani_exact\tani_approx"
}

func (row *JaccardRow) String() string {
	return fmt.Sprintf("%v\t%v\t%.6f\t%.6f\t%.6f", row.FileA, row.FileB, row.Jaccard, row.Exact, row.Approx)
}

// ModimizerRow is the report for a comparison of modimizer sketches
type ModimizerRow struct {
	FileA, FileB string
	ModValue     int
	CountA       int
	CountB       int
	ani.Estimate
}

// Header returns the column names for a ModimizerRow
func (row *ModimizerRow) Header() string {
	return "filename_a\tfilename_b\tmod_value\tmodimizers_a\tmodimizers_b\tjaccard\tani_exact\tani_approx"
}

func (row *ModimizerRow) String() string {
	return fmt.Sprintf("%v\t%v\t%d\t%d\t%d\t%.6f\t%.6f\t%.6f", row.FileA, row.FileB, row.ModValue, row.CountA, row.CountB, row.Jaccard, row.Exact, row.Approx)
}

// MinHashRow is the report for a comparison of bottom-k MinHash sketches
type MinHashRow struct {
	FileA, FileB string
	SketchSize   int
	ani.Estimate
}

// Header returns the column names for a MinHashRow
func (row *MinHashRow) Header() string {
	return "filename_a\tfilename_b\tsketch_size\tjaccard\tani_exact\tani_approx"
}

func (row *MinHashRow) String() string {
	return fmt.Sprintf("%v\t%v\t%d\t%.6f\t%.6f\t%.6f", row.FileA, row.FileB, row.SketchSize, row.Jaccard, row.Exact, row.Approx)
}

// BenchmarkRow holds the estimates for a reference compared with one mutated copy of itself
type BenchmarkRow struct {
	Rate      float64
	Applied   int
	Full      ani.Estimate
	Modimizer ani.Estimate
	MinHash   ani.Estimate
}

// TrueANI is the identity implied by the substitutions that were applied
func (row *BenchmarkRow) TrueANI(length int) float64 {
	if length == 0 {
		return 0.0
	}
	return 1.0 - float64(row.Applied)/float64(length)
}

// Header returns the column names for a BenchmarkRow
func (row *BenchmarkRow) Header() string {
	return "mutation_rate\tmutations\tjaccard\tani_exact\tani_approx\tmod_jaccard\tmod_ani_exact\tmod_ani_approx\tmh_jaccard\tmh_ani_exact\tmh_ani_approx"
}

func (row *BenchmarkRow) String() string {
	return fmt.Sprintf("%g\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f", row.Rate, row.Applied,
		row.Full.Jaccard, row.Full.Exact, row.Full.Approx,
		row.Modimizer.Jaccard, row.Modimizer.Exact, row.Modimizer.Approx,
		row.MinHash.Jaccard, row.MinHash.Exact, row.MinHash.Approx)
}

// Write is a function to write a header line followed by each row, all rows should be of the same type
func Write(w io.Writer, rows ...Row) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, rows[0].Header()); err != nil {
		return errors.Wrap(err, "could not write report header")
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return errors.Wrap(err, "could not write report row")
		}
	}
	return nil
}

// PlotBenchmark is a function to plot the ANI estimates against the mutation rate and save the plot as an image
func PlotBenchmark(rows []*BenchmarkRow, length int, fileName string) error {
	truth := make(plotter.XYs, len(rows))
	exact := make(plotter.XYs, len(rows))
	approx := make(plotter.XYs, len(rows))
	mods := make(plotter.XYs, len(rows))
	mh := make(plotter.XYs, len(rows))
	for i, row := range rows {
		truth[i].X, truth[i].Y = row.Rate, row.TrueANI(length)
		exact[i].X, exact[i].Y = row.Rate, row.Full.Exact
		approx[i].X, approx[i].Y = row.Rate, row.Full.Approx
		mods[i].X, mods[i].Y = row.Rate, row.Modimizer.Exact
		mh[i].X, mh[i].Y = row.Rate, row.MinHash.Exact
	}
	aniPlot, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "could not create plot")
	}
	aniPlot.Title.Text = "ANI estimates for mutated copies of the reference"
	aniPlot.X.Label.Text = "mutation rate"
	aniPlot.Y.Label.Text = "ANI"
	err = plotutil.AddLinePoints(aniPlot,
		"true", truth,
		"exact", exact,
		"approx", approx,
		"modimizer", mods,
		"minhash", mh)
	if err != nil {
		return errors.Wrap(err, "could not add points to plot")
	}
	return errors.Wrapf(aniPlot.Save(8*vg.Inch, 6*vg.Inch, fileName), "could not save plot to %v", fileName)
}
