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
	"github.com/will-rowe/anise/src/minhash"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/reporting"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	mhA          *string // the reference FASTA
	mhB          *string // the query FASTA
	mhK          *int    // size of k-mer
	mhSketchSize *int    // number of minimums kept in each sketch
)

// the minhash command (used by cobra)
var minhashCmd = &cobra.Command{
	Use:   "minhash",
	Short: "Estimate ANI from bottom-k MinHash sketches of two genomes",
	Long:  `Estimate ANI from bottom-k MinHash sketches of two genomes`,
	Run: func(cmd *cobra.Command, args []string) {
		runMinHash()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	mhA = minhashCmd.Flags().StringP("ref", "a", "", "reference FASTA file - required")
	mhB = minhashCmd.Flags().StringP("query", "b", "", "query (e.g. mutated) FASTA file - required")
	mhK = minhashCmd.Flags().IntP("kmerSize", "k", 21, "size of k-mer")
	mhSketchSize = minhashCmd.Flags().IntP("sketchSize", "s", 1000, "size of MinHash sketch")
	minhashCmd.MarkFlagRequired("ref")
	minhashCmd.MarkFlagRequired("query")
	RootCmd.AddCommand(minhashCmd)
}

// minhashParamCheck is a function to check user supplied parameters
func minhashParamCheck() error {
	if err := comparisonParamCheck(*mhA, *mhB, *mhK); err != nil {
		return err
	}
	if *mhSketchSize < 1 {
		return fmt.Errorf("sketch size must be >= 1, got %d", *mhSketchSize)
	}
	return nil
}

// runMinHash is the main function for the minhash sub-command
func runMinHash() {

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
	log.Printf("starting the minhash subcommand")
	log.Printf("checking parameters...")
	misc.ErrorCheck(minhashParamCheck())
	log.Printf("\tk-mer size: %d", *mhK)
	log.Printf("\tsketch size: %d", *mhSketchSize)
	seqA, seqB := loadGenomes(*mhA, *mhB)

	// sketch and compare
	log.Printf("sketching genomes...")
	sketchA := minhash.NewKMVsketch(uint(*mhK), uint(*mhSketchSize))
	misc.ErrorCheck(sketchA.AddSequence(seqA.Seq))
	sketchB := minhash.NewKMVsketch(uint(*mhK), uint(*mhSketchSize))
	misc.ErrorCheck(sketchB.AddSequence(seqB.Seq))
	js, err := sketchA.GetSimilarity(sketchB)
	misc.ErrorCheck(err)
	row := &reporting.MinHashRow{
		FileA:      seqA.ID,
		FileB:      seqB.ID,
		SketchSize: *mhSketchSize,
		Estimate:   ani.NewEstimate(js, *mhK),
	}
	misc.ErrorCheck(reporting.Write(os.Stdout, row))
	log.Printf("finished in %s", time.Since(start))
}
