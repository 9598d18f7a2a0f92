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
	"github.com/will-rowe/anise/src/fastx"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/mutate"
	"github.com/will-rowe/anise/src/seqio"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	mutateIn   *string  // the input FASTA
	mutateOut  *string  // the output FASTA
	mutateRate *float64 // the mutation rate
	mutateSeed *int64   // the random seed
)

// the mutate command (used by cobra)
var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Introduce random substitutions into a FASTA sequence",
	Long: `Introduce random substitutions into a FASTA sequence.

floor(length x rate) distinct positions are drawn for each record and each A/C/G/T base
drawn is replaced by one of the other three bases. Draws that land on any other base
are spent without a substitution. The same seed always gives the same output.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMutate()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	mutateIn = mutateCmd.Flags().StringP("input", "i", "", "input FASTA file - required")
	mutateOut = mutateCmd.Flags().StringP("output", "o", "", "output FASTA file with mutations - required")
	mutateRate = mutateCmd.Flags().Float64P("mutation_rate", "m", 0.0, "mutation rate (e.g., 0.015 for 1.5%) - required")
	mutateSeed = mutateCmd.Flags().Int64P("seed", "s", 0, "random seed for reproducibility - required")
	mutateCmd.MarkFlagRequired("input")
	mutateCmd.MarkFlagRequired("output")
	mutateCmd.MarkFlagRequired("mutation_rate")
	mutateCmd.MarkFlagRequired("seed")
	RootCmd.AddCommand(mutateCmd)
}

// mutateParamCheck is a function to check user supplied parameters
func mutateParamCheck() error {
	if err := misc.CheckFASTA(*mutateIn); err != nil {
		return err
	}
	if *mutateRate < 0.0 || *mutateRate > 1.0 {
		return fmt.Errorf("mutation rate must be between 0.0 and 1.0, got %v", *mutateRate)
	}
	return misc.CheckOutDir(*mutateOut)
}

// runMutate is the main function for the mutate sub-command
func runMutate() {

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
	log.Printf("starting the mutate subcommand")
	log.Printf("checking parameters...")
	misc.ErrorCheck(mutateParamCheck())
	log.Printf("\tinput file: %v", *mutateIn)
	log.Printf("\toutput file: %v", *mutateOut)
	log.Printf("\tmutation rate: %v", *mutateRate)
	log.Printf("\tseed: %d", *mutateSeed)

	// mutate each record, the summary and progress lines go to STDOUT
	fasta := fastx.NewBiogoFASTA()
	records, err := fastx.ReadFile(fasta, *mutateIn)
	misc.ErrorCheck(err)
	mutator, err := mutate.NewMutator(*mutateRate, *mutateSeed, os.Stdout)
	misc.ErrorCheck(err)
	mutated := make([]*seqio.Sequence, len(records))
	for i, record := range records {
		seq, summary := mutator.Mutate(record.Seq)
		mutated[i] = &seqio.Sequence{ID: record.ID, Desc: record.Desc, Seq: seq}
		fmt.Printf("mutated %v: %d of %d drawn positions substituted\n", record.ID, summary.Applied, summary.Requested)
	}
	misc.ErrorCheck(fastx.WriteFile(fasta, *mutateOut, mutated))
	log.Printf("\twrote %d records", len(mutated))
	log.Printf("finished in %s", time.Since(start))
}
