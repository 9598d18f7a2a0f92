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

	"github.com/spf13/cobra"
	"github.com/will-rowe/anise/src/misc"
)

// the command line arguments
var (
	logFile   *string // filename for log file, if not provided then the log goes to STDERR
	profiling *bool   // create profile for go pprof
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "anise",
	Short: "estimate Average Nucleotide Identity (ANI) from k-mer sketches",
	Long: `
#####################################################################################
		ANISE: ANI from SkEtches
#####################################################################################

 ANISE estimates the similarity of two genomes from their k-mer content.

 It compares either the full k-mer sets of two genomes, a deterministic sub-sample of
 them (modimizers: k-mers whose CRC-32 checksum is divisible by a sampling factor),
 or bottom-k MinHash sketches. The Jaccard similarity of the sketches is converted to
 an ANI estimate using both the exact root formula and its log approximation.

 ANISE also includes a seeded mutation simulator and a benchmark command to check the
 estimators against mutated copies of a reference.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

/*
  A function to initalise the command line arguments
*/
func init() {
	logFile = RootCmd.PersistentFlags().String("logFile", "", "filename for log file, default = STDERR")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile anise using the go tool pprof")
}

// startLogging sends the log to the log file, if one was requested, and returns a function to close it
func startLogging() func() {
	if *logFile == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	logFH := misc.StartLogging(*logFile)
	log.SetOutput(logFH)
	return func() { logFH.Close() }
}
