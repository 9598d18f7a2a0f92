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
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/will-rowe/anise/src/debruijn"
	"github.com/will-rowe/anise/src/fastx"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/version"
)

// the command line arguments
var (
	dbgIn     *string // the input FASTA of reads
	dbgK      *int    // size of k-mer
	dbgFormat *string // output format
	dbgOut    *string // output file
)

// the debruijn command (used by cobra)
var debruijnCmd = &cobra.Command{
	Use:   "debruijn",
	Short: "Build a de Bruijn graph from a set of reads",
	Long: `Build a de Bruijn graph from a set of reads.

Nodes are (k-1)-mers and each k-mer in a read adds an edge from its prefix to its suffix.
The graph is written as DOT or GFA (v1).`,
	Run: func(cmd *cobra.Command, args []string) {
		runDebruijn()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	dbgIn = debruijnCmd.Flags().StringP("input", "i", "", "FASTA file of reads - required")
	dbgK = debruijnCmd.Flags().IntP("kmerSize", "k", 3, "size of k-mer (nodes are k-1)")
	dbgFormat = debruijnCmd.Flags().StringP("format", "f", "dot", "output format (dot or gfa)")
	dbgOut = debruijnCmd.Flags().StringP("output", "o", "", "output file, default = STDOUT")
	debruijnCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(debruijnCmd)
}

// debruijnParamCheck is a function to check user supplied parameters
func debruijnParamCheck() error {
	if err := misc.CheckFASTA(*dbgIn); err != nil {
		return err
	}
	if *dbgK < 2 {
		return fmt.Errorf("k-mer size must be >= 2, got %d", *dbgK)
	}
	if *dbgFormat != "dot" && *dbgFormat != "gfa" {
		return fmt.Errorf("unsupported output format: %v", *dbgFormat)
	}
	if *dbgOut != "" {
		return misc.CheckOutDir(*dbgOut)
	}
	return nil
}

// runDebruijn is the main function for the debruijn sub-command
func runDebruijn() {

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
	log.Printf("starting the debruijn subcommand")
	log.Printf("checking parameters...")
	misc.ErrorCheck(debruijnParamCheck())
	log.Printf("\tinput file: %v", *dbgIn)
	log.Printf("\tk-mer size: %d", *dbgK)
	log.Printf("\toutput format: %v", *dbgFormat)

	// build the graph
	reads, err := fastx.ReadFile(fastx.NewBiogoFASTA(), *dbgIn)
	misc.ErrorCheck(err)
	graph, err := debruijn.NewGraph(*dbgK)
	misc.ErrorCheck(err)
	for _, read := range reads {
		read.Normalise()
		graph.AddRead(read.Seq)
	}
	log.Printf("\tadded %d reads to the graph", len(reads))
	log.Printf("\tnodes: %d, edges: %d", len(graph.Nodes()), len(graph.Edges()))

	// write the graph
	var w io.Writer = os.Stdout
	if *dbgOut != "" {
		fh, err := os.Create(*dbgOut)
		misc.ErrorCheck(err)
		defer fh.Close()
		w = fh
	}
	switch *dbgFormat {
	case "gfa":
		misc.ErrorCheck(graph.WriteGFA(w))
	default:
		misc.ErrorCheck(graph.WriteDOT(w))
	}
	log.Printf("finished in %s", time.Since(start))
}
