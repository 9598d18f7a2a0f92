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
	"github.com/will-rowe/anise/src/fastx"
	"github.com/will-rowe/anise/src/kmer"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/reporting"
	"github.com/will-rowe/anise/src/seqio"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	jaccardA         *string // the reference FASTA
	jaccardB         *string // the query FASTA
	jaccardK         *int    // size of k-mer
	jaccardSketchOut *string // prefix for dumping the k-mer sets
)

// the jaccard command (used by cobra)
var jaccardCmd = &cobra.Command{
	Use:   "jaccard",
	Short: "Estimate ANI from the full k-mer sets of two genomes",
	Long:  `Estimate ANI from the full k-mer sets of two genomes`,
	Run: func(cmd *cobra.Command, args []string) {
		runJaccard()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	jaccardA = jaccardCmd.Flags().StringP("ref", "a", "", "reference FASTA file - required")
	jaccardB = jaccardCmd.Flags().StringP("query", "b", "", "query (e.g. mutated) FASTA file - required")
	jaccardK = jaccardCmd.Flags().IntP("kmerSize", "k", 0, "size of k-mer - required")
	jaccardSketchOut = jaccardCmd.Flags().String("sketchOut", "", "if set, dump the k-mer sets to <sketchOut>.a.sketch and <sketchOut>.b.sketch")
	jaccardCmd.MarkFlagRequired("ref")
	jaccardCmd.MarkFlagRequired("query")
	jaccardCmd.MarkFlagRequired("kmerSize")
	RootCmd.AddCommand(jaccardCmd)
}

// comparisonParamCheck is a function to check the parameters shared by the genome comparison commands
func comparisonParamCheck(fileA, fileB string, k int) error {
	if err := misc.CheckFASTA(fileA); err != nil {
		return err
	}
	if err := misc.CheckFASTA(fileB); err != nil {
		return err
	}
	if k < 1 {
		return fmt.Errorf("k-mer size must be >= 1, got %d", k)
	}
	return nil
}

// loadGenomes is a function to read the two genomes being compared
func loadGenomes(fileA, fileB string) (*seqio.Sequence, *seqio.Sequence) {
	log.Printf("loading genomes...")
	parser := fastx.NewBiogoFASTA()
	seqA, err := fastx.LoadGenome(parser, fileA)
	misc.ErrorCheck(err)
	log.Printf("\tlength of %v: %d", fileA, seqA.Len())
	seqB, err := fastx.LoadGenome(parser, fileB)
	misc.ErrorCheck(err)
	log.Printf("\tlength of %v: %d", fileB, seqB.Len())
	return seqA, seqB
}

// dumpSketches is a function to write a pair of k-mer sets to disk
func dumpSketches(prefix string, a, b *kmer.Sketch) {
	misc.ErrorCheck(misc.CheckOutDir(prefix))
	misc.ErrorCheck(a.Dump(prefix + ".a.sketch"))
	misc.ErrorCheck(b.Dump(prefix + ".b.sketch"))
	log.Printf("\tsaved sketches to %v.a.sketch and %v.b.sketch", prefix, prefix)
}

// runJaccard is the main function for the jaccard sub-command
func runJaccard() {

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
	log.Printf("starting the jaccard subcommand")
	log.Printf("checking parameters...")
	misc.ErrorCheck(comparisonParamCheck(*jaccardA, *jaccardB, *jaccardK))
	log.Printf("\tk-mer size: %d", *jaccardK)
	seqA, seqB := loadGenomes(*jaccardA, *jaccardB)

	// sketch and compare
	log.Printf("extracting k-mers...")
	kmersA := kmer.Extract(seqA.Seq, *jaccardK)
	kmersB := kmer.Extract(seqB.Seq, *jaccardK)
	log.Printf("\tdistinct k-mers: %d vs. %d", kmersA.Len(), kmersB.Len())
	row := &reporting.JaccardRow{
		FileA:    *jaccardA,
		FileB:    *jaccardB,
		Estimate: ani.NewEstimate(kmer.Jaccard(kmersA, kmersB), *jaccardK),
	}
	misc.ErrorCheck(reporting.Write(os.Stdout, row))
	if *jaccardSketchOut != "" {
		dumpSketches(*jaccardSketchOut,
			kmer.NewSketch(kmer.FULL, *jaccardA, *jaccardK, 1, kmersA),
			kmer.NewSketch(kmer.FULL, *jaccardB, *jaccardK, 1, kmersB))
	}
	log.Printf("finished in %s", time.Since(start))
}
