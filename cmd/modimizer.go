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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/will-rowe/anise/src/ani"
	"github.com/will-rowe/anise/src/kmer"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/reporting"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	modA         *string // the reference FASTA
	modB         *string // the query FASTA
	modK         *int    // size of k-mer
	modM         *int    // the modimizer sampling factor
	modSketchOut *string // prefix for dumping the modimizer sets
)

// the modimizer command (used by cobra)
var modimizerCmd = &cobra.Command{
	Use:   "modimizer",
	Short: "Estimate ANI from modimizer sketches of two genomes",
	Long: `Estimate ANI from modimizer sketches of two genomes.

A k-mer is a modimizer if its CRC-32 checksum is divisible by the mod value (-m),
which keeps roughly 1/m of the k-mers in a way that is identical for every genome.`,
	Run: func(cmd *cobra.Command, args []string) {
		runModimizer()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	modA = modimizerCmd.Flags().StringP("ref", "a", "", "reference FASTA file - required")
	modB = modimizerCmd.Flags().StringP("query", "b", "", "query (e.g. mutated) FASTA file - required")
	modK = modimizerCmd.Flags().IntP("kmerSize", "k", 0, "size of k-mer - required")
	modM = modimizerCmd.Flags().IntP("modValue", "m", 0, "mod value for modimizer sampling - required")
	modSketchOut = modimizerCmd.Flags().String("sketchOut", "", "if set, dump the modimizer sets to <sketchOut>.a.sketch and <sketchOut>.b.sketch")
	modimizerCmd.MarkFlagRequired("ref")
	modimizerCmd.MarkFlagRequired("query")
	modimizerCmd.MarkFlagRequired("kmerSize")
	modimizerCmd.MarkFlagRequired("modValue")
	RootCmd.AddCommand(modimizerCmd)
}

// modimizerParamCheck is a function to check user supplied parameters
func modimizerParamCheck() error {
	if err := comparisonParamCheck(*modA, *modB, *modK); err != nil {
		return err
	}
	if *modM < 1 {
		return fmt.Errorf("mod value must be >= 1, got %d", *modM)
	}
	return nil
}

// runModimizer is the main function for the modimizer sub-command
func runModimizer() {

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
	log.Printf("starting the modimizer subcommand")
	log.Printf("checking parameters...")
	misc.ErrorCheck(modimizerParamCheck())
	log.Printf("\tk-mer size: %d", *modK)
	log.Printf("\tmod value: %d", *modM)
	seqA, seqB := loadGenomes(*modA, *modB)

	// sketch and compare
	log.Printf("sampling modimizers...")
	modsA, err := kmer.Modimizers(seqA.Seq, *modK, *modM)
	misc.ErrorCheck(err)
	modsB, err := kmer.Modimizers(seqB.Seq, *modK, *modM)
	misc.ErrorCheck(err)
	log.Printf("\tmodimizers: %d vs. %d", modsA.Len(), modsB.Len())
	row := &reporting.ModimizerRow{
		FileA:    *modA,
		FileB:    *modB,
		ModValue: *modM,
		CountA:   modsA.Len(),
		CountB:   modsB.Len(),
		Estimate: ani.NewEstimate(kmer.Jaccard(modsA, modsB), *modK),
	}
	misc.ErrorCheck(reporting.Write(os.Stdout, row))
	if *modSketchOut != "" {
		dumpSketches(*modSketchOut,
			kmer.NewSketch(kmer.MODIMIZER, *modA, *modK, *modM, modsA),
			kmer.NewSketch(kmer.MODIMIZER, *modB, *modK, *modM, modsB))
	}
	log.Printf("finished in %s", time.Since(start))
}
