package pipeline

import (
	"math/rand"
	"testing"

	"github.com/will-rowe/anise/src/seqio"
	"github.com/will-rowe/anise/src/version"
)

///////////////////////////////////////////////////////////////////////////////////////////////

/*
TEST DATA
*/
// a random 5kb reference
func testReference() *seqio.Sequence {
	r := rand.New(rand.NewSource(1))
	seq := make([]byte, 5000)
	for i := range seq {
		seq[i] = "ACGT"[r.Intn(4)]
	}
	return seqio.NewSequence("reference", "", seq)
}

/*
TEST PARAMETERS
*/
func testParameters() *Info {
	return &Info{
		Version:    version.GetVersion(),
		KmerSize:   15,
		ModValue:   4,
		SketchSize: 500,
		Seed:       42,
		Rates:      []float64{0.0, 0.001, 0.01, 0.05},
		Reference:  testReference(),
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////

/*
DUMMY PIPELINE
*/

type ComponentA struct {
	input  []int
	output chan int
}

func NewComponentA(i []int) *ComponentA {
	return &ComponentA{input: i, output: make(chan int)}
}

func (ComponentA *ComponentA) Run() {
	defer close(ComponentA.output)
	for _, input := range ComponentA.input {
		ComponentA.output <- input
	}
}

type ComponentB struct {
	input    chan int
	addition int
	results  []int
}

func NewComponentB(i int) *ComponentB {
	return &ComponentB{addition: i}
}

func (ComponentB *ComponentB) Connect(previous *ComponentA) {
	ComponentB.input = previous.output
}

func (ComponentB *ComponentB) Run() {
	for input := range ComponentB.input {
		ComponentB.results = append(ComponentB.results, input+ComponentB.addition)
	}
}

func TestPipeline(t *testing.T) {
	inputValues := []int{1, 2, 3, 4}
	expectedOutput := []int{11, 12, 13, 14}
	a := NewComponentA(inputValues)
	b := NewComponentB(10)
	newPipeline := NewPipeline()
	newPipeline.AddProcesses(a, b)
	b.Connect(a)
	if newPipeline.GetNumProcesses() != 2 {
		t.Fatal("did not add correct number of processes to pipeline")
	}
	newPipeline.Run()
	if len(expectedOutput) != len(b.results) {
		t.Fatal("pipeline did not produce expected output")
	}
	for i, val := range b.results {
		if val != expectedOutput[i] {
			t.Fatal("pipeline did not produce expected output")
		}
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////

/*
BENCHMARK PIPELINE
*/

func TestPrepare(t *testing.T) {
	info := testParameters()
	if err := info.Prepare(); err != nil {
		t.Fatal(err)
	}
	if info.refFull.Len() == 0 || info.refKMV.Len() != info.SketchSize {
		t.Fatal("reference was not sketched")
	}
	if !info.refMods.IsSubset(info.refFull) {
		t.Fatal("reference modimizers should be a subset of the reference k-mers")
	}
	bad := testParameters()
	bad.Rates = []float64{1.5}
	if err := bad.Prepare(); err == nil {
		t.Fatal("rates above 1.0 should fault")
	}
	bad = testParameters()
	bad.KmerSize = 6000
	if err := bad.Prepare(); err == nil {
		t.Fatal("k-mer sizes longer than the reference should fault")
	}
	bad = testParameters()
	bad.ModValue = 0
	if err := bad.Prepare(); err == nil {
		t.Fatal("a mod value of 0 should fault")
	}
	bad = testParameters()
	bad.Reference = nil
	if err := bad.Prepare(); err == nil {
		t.Fatal("a missing reference should fault")
	}
}

func TestRunBenchmark(t *testing.T) {
	info := testParameters()
	rows, err := RunBenchmark(info)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(info.Rates) {
		t.Fatalf("expected %d rows, got %d", len(info.Rates), len(rows))
	}
	for i, row := range rows {
		if row.Rate != info.Rates[i] {
			t.Fatalf("rows are not in rate order: %v at position %d", row.Rate, i)
		}
	}

	// an unmutated copy is identical to the reference
	if rows[0].Applied != 0 || rows[0].Full.Jaccard != 1.0 || rows[0].Full.Exact != 1.0 || rows[0].MinHash.Jaccard != 1.0 {
		t.Fatalf("unmutated copy should have a Jaccard of 1.0: %+v", rows[0])
	}

	// the full k-mer estimate drops as the mutation rate increases
	for i := 1; i < len(rows); i++ {
		if rows[i].Full.Exact > rows[i-1].Full.Exact {
			t.Fatalf("ANI estimate increased with mutation rate: %+v vs %+v", rows[i-1].Full, rows[i].Full)
		}
	}
	if last := rows[len(rows)-1]; last.Full.Exact < 0.9 || last.Full.Exact > 0.99 {
		t.Fatalf("ANI estimate for a 5%% mutation rate is out of range: %f", last.Full.Exact)
	}

	// the same seed gives the same benchmark
	again, err := RunBenchmark(testParameters())
	if err != nil {
		t.Fatal(err)
	}
	for i := range rows {
		if *rows[i] != *again[i] {
			t.Fatalf("benchmark is not reproducible at rate %v", rows[i].Rate)
		}
	}
}
