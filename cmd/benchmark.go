// Copyright © 2017 Will Rowe <will.rowe@stfc.ac.uk>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/will-rowe/anise/src/fastx"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/pipeline"
	"github.com/will-rowe/anise/src/reporting"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	benchRef        *string    // the reference FASTA
	benchK          *int       // size of k-mer
	benchModValue   *int       // modimizer sampling factor
	benchSketchSize *int       // size of the MinHash sketches
	benchRates      *[]string  // the mutation rates to test
	benchSeed       *int64     // the base random seed
	benchOutPrefix  *string    // prefix for the report and plot
	benchNoPlot     *bool      // skip the plot
)

// the benchmark command (used by cobra)
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare the ANI estimators against mutated copies of a reference",
	Long: `Compare the ANI estimators against mutated copies of a reference.

A mutated copy of the reference is made for each requested rate (seed + rate index is used
as the seed) and is compared to the reference using the full k-mer sets, modimizers and
MinHash sketches. The estimates are written to <outPrefix>.tsv and plotted to <outPrefix>.png.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmark()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	benchRef = benchmarkCmd.Flags().StringP("input", "i", "", "reference FASTA file - required")
	benchK = benchmarkCmd.Flags().IntP("kmerSize", "k", 21, "size of k-mer")
	benchModValue = benchmarkCmd.Flags().IntP("modValue", "m", 8, "modimizer sampling factor")
	benchSketchSize = benchmarkCmd.Flags().IntP("sketchSize", "s", 1000, "size of the MinHash sketches")
	benchRates = benchmarkCmd.Flags().StringSliceP("rates", "r", []string{"0.0", "0.001", "0.005", "0.01", "0.02", "0.05", "0.1"}, "comma separated mutation rates to benchmark")
	benchSeed = benchmarkCmd.Flags().Int64("seed", 42, "base random seed")
	benchOutPrefix = benchmarkCmd.Flags().StringP("outPrefix", "o", "./anise-benchmark", "prefix for the output report and plot")
	benchNoPlot = benchmarkCmd.Flags().Bool("noPlot", false, "do not plot the benchmark")
	benchmarkCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(benchmarkCmd)
}

// benchmarkParamCheck is a function to check user supplied parameters and parse the mutation rates
func benchmarkParamCheck() ([]float64, error) {
	if err := misc.CheckFASTA(*benchRef); err != nil {
		return nil, err
	}
	if len(*benchRates) == 0 {
		return nil, fmt.Errorf("no mutation rates supplied")
	}
	rates := make([]float64, len(*benchRates))
	for i, rate := range *benchRates {
		parsed, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse mutation rate: %v", rate)
		}
		rates[i] = parsed
	}
	return rates, misc.CheckOutDir(*benchOutPrefix)
}

// runBenchmark is the main function for the benchmark sub-command
func runBenchmark() {

	// set up profiling
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}

	// start logging
	closeLog := startLogging()
	defer closeLog()

	// start sub command
	start := time.Now()
	log.Printf("i am anise (version %s)", version.GetVersion())
	log.Printf("starting the benchmark subcommand")
	log.Printf("checking parameters...")
	rates, err := benchmarkParamCheck()
	misc.ErrorCheck(err)
	log.Printf("\treference: %v", *benchRef)
	log.Printf("\tk-mer size: %d", *benchK)
	log.Printf("\tmodimizer sampling factor: %d", *benchModValue)
	log.Printf("\tsketch size: %d", *benchSketchSize)
	log.Printf("\tmutation rates: %v", rates)
	log.Printf("\tseed: %d", *benchSeed)

	// load the reference
	log.Printf("loading the reference...")
	ref, err := fastx.LoadGenome(fastx.NewBiogoFASTA(), *benchRef)
	misc.ErrorCheck(err)
	log.Printf("\tlength: %d", ref.Len())

	// run the benchmark pipeline
	log.Printf("running the benchmark pipeline...")
	info := &pipeline.Info{
		Version:    version.GetVersion(),
		KmerSize:   *benchK,
		ModValue:   *benchModValue,
		SketchSize: *benchSketchSize,
		Seed:       *benchSeed,
		Rates:      rates,
		Reference:  ref,
	}
	rows, err := pipeline.RunBenchmark(info)
	misc.ErrorCheck(err)
	log.Printf("\tbenchmarked %d mutation rates", len(rows))
	log.Printf("\t%v", misc.PrintMemUsage())

	// write the report
	reportFile := *benchOutPrefix + ".tsv"
	fh, err := os.Create(reportFile)
	misc.ErrorCheck(err)
	report := make([]reporting.Row, len(rows))
	for i, row := range rows {
		report[i] = row
	}
	misc.ErrorCheck(reporting.Write(fh, report...))
	misc.ErrorCheck(fh.Close())
	log.Printf("\twrote report: %v", reportFile)

	// plot it
	if !*benchNoPlot {
		plotFile := *benchOutPrefix + ".png"
		misc.ErrorCheck(reporting.PlotBenchmark(rows, ref.Len(), plotFile))
		log.Printf("\twrote plot: %v", plotFile)
	}
	log.Printf("finished in %s", time.Since(start))
}
