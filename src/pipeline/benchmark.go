package pipeline

/*
 this part of the pipeline mutates the reference at each requested rate, sketches the mutants and estimates ANI against the reference
*/

import (
	"sort"

	"github.com/will-rowe/anise/src/ani"
	"github.com/will-rowe/anise/src/kmer"
	"github.com/will-rowe/anise/src/minhash"
	"github.com/will-rowe/anise/src/misc"
	"github.com/will-rowe/anise/src/mutate"
	"github.com/will-rowe/anise/src/reporting"
)

// mutant is a mutated copy of the reference, passed between the benchmark processes
type mutant struct {
	index   int
	rate    float64
	seq     []byte
	applied int
}

// result is a benchmark row along with its position in the requested rates
type result struct {
	index int
	row   *reporting.BenchmarkRow
}

// RateStreamer is a pipeline process that streams the requested mutation rates
type RateStreamer struct {
	info   *Info
	output chan *mutant
}

// NewRateStreamer is the constructor
func NewRateStreamer(info *Info) *RateStreamer {
	return &RateStreamer{info: info, output: make(chan *mutant, BUFFERSIZE)}
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *RateStreamer) Run() {
	defer close(proc.output)
	for i, rate := range proc.info.Rates {
		proc.output <- &mutant{index: i, rate: rate}
	}
}

// Mutator is a pipeline process that creates a mutated copy of the reference for each rate
type Mutator struct {
	info   *Info
	input  chan *mutant
	output chan *mutant
}

// NewMutator is the constructor
func NewMutator(info *Info) *Mutator {
	return &Mutator{info: info, output: make(chan *mutant, BUFFERSIZE)}
}

// Connect is the method to connect the Mutator to the output of a RateStreamer
func (proc *Mutator) Connect(previous *RateStreamer) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *Mutator) Run() {
	defer close(proc.output)
	for m := range proc.input {

		// each rate gets its own seed so that mutants are independent but reproducible
		seq, summary, err := mutate.Mutate(proc.info.Reference.Seq, m.rate, proc.info.Seed+int64(m.index), nil)
		misc.ErrorCheck(err)
		m.seq = seq
		m.applied = summary.Applied
		proc.output <- m
	}
}

// Estimator is a pipeline process that sketches each mutant and compares it to the reference sketches
type Estimator struct {
	info   *Info
	input  chan *mutant
	output chan *result
}

// NewEstimator is the constructor
func NewEstimator(info *Info) *Estimator {
	return &Estimator{info: info, output: make(chan *result, BUFFERSIZE)}
}

// Connect is the method to connect the Estimator to the output of a Mutator
func (proc *Estimator) Connect(previous *Mutator) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *Estimator) Run() {
	defer close(proc.output)
	k := proc.info.KmerSize
	for m := range proc.input {
		row := &reporting.BenchmarkRow{Rate: m.rate, Applied: m.applied}
		row.Full = ani.NewEstimate(kmer.Jaccard(proc.info.refFull, kmer.Extract(m.seq, k)), k)
		mods, err := kmer.Modimizers(m.seq, k, proc.info.ModValue)
		misc.ErrorCheck(err)
		row.Modimizer = ani.NewEstimate(kmer.Jaccard(proc.info.refMods, mods), k)
		kmv := minhash.NewKMVsketch(uint(k), uint(proc.info.SketchSize))
		misc.ErrorCheck(kmv.AddSequence(m.seq))
		js, err := proc.info.refKMV.GetSimilarity(kmv)
		misc.ErrorCheck(err)
		row.MinHash = ani.NewEstimate(js, k)
		proc.output <- &result{index: m.index, row: row}
	}
}

// Collector is a pipeline process that gathers the benchmark rows in the order the rates were requested
type Collector struct {
	input   chan *result
	results []*result
}

// NewCollector is the constructor
func NewCollector() *Collector {
	return &Collector{}
}

// Connect is the method to connect the Collector to the output of an Estimator
func (proc *Collector) Connect(previous *Estimator) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *Collector) Run() {
	for r := range proc.input {
		proc.results = append(proc.results, r)
	}
	sort.Slice(proc.results, func(i, j int) bool { return proc.results[i].index < proc.results[j].index })
}

// CollectOutput is a method to return the benchmark rows once the pipeline has finished
func (proc *Collector) CollectOutput() []*reporting.BenchmarkRow {
	rows := make([]*reporting.BenchmarkRow, len(proc.results))
	for i, r := range proc.results {
		rows[i] = r.row
	}
	return rows
}

// RunBenchmark is a convenience function to prepare the runtime info, build the benchmark pipeline, run it and return the rows
func RunBenchmark(info *Info) ([]*reporting.BenchmarkRow, error) {
	if err := info.Prepare(); err != nil {
		return nil, err
	}
	benchmarkPipeline := NewPipeline()
	rateStreamer := NewRateStreamer(info)
	mutator := NewMutator(info)
	estimator := NewEstimator(info)
	collector := NewCollector()
	mutator.Connect(rateStreamer)
	estimator.Connect(mutator)
	collector.Connect(estimator)
	benchmarkPipeline.AddProcesses(rateStreamer, mutator, estimator, collector)
	benchmarkPipeline.Run()
	return collector.CollectOutput(), nil
}
