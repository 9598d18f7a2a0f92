// Package mutate introduces seeded random substitutions into sequences, for benchmarking the ANI estimators.
package mutate

import (
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/will-rowe/anise/src/seqio"
)

// bases are the substitution alphabet
var bases = [4]byte{'A', 'C', 'G', 'T'}

// Summary describes a single mutation run
type Summary struct {
	Total     int   // number of bases in the sequence
	Requested int   // number of positions drawn (floor(Total * rate))
	Applied   int   // number of positions actually substituted
	Positions []int // the drawn positions, in draw order
}

// Mutator applies a substitution process using its own random number generator
type Mutator struct {
	rate float64
	seed int64
	rng  *rand.Rand
	log  io.Writer
}

// NewMutator is the Mutator constructor, the summary for each run is written to w (which can be nil)
func NewMutator(rate float64, seed int64, w io.Writer) (*Mutator, error) {
	if rate < 0.0 || rate > 1.0 {
		return nil, errors.Errorf("mutation rate must be between 0.0 and 1.0, got %v", rate)
	}
	if w == nil {
		w = ioutil.Discard
	}
	return &Mutator{
		rate: rate,
		seed: seed,
		log:  w,
	}, nil
}

// Mutate returns a mutated copy of seq, the generator is reseeded for every call so the same input always gives the same output
func (Mutator *Mutator) Mutate(seq []byte) ([]byte, *Summary) {
	Mutator.rng = rand.New(rand.NewSource(Mutator.seed))
	mutated := append([]byte(nil), seq...)
	summary := &Summary{
		Total:     len(seq),
		Requested: int(float64(len(seq)) * Mutator.rate),
	}
	fmt.Fprintf(Mutator.log, "Total bases: %d, Mutating %d bases (%g%%)\n", summary.Total, summary.Requested, Mutator.rate*100)
	summary.Positions = Mutator.samplePositions(len(seq), summary.Requested)
	for _, pos := range summary.Positions {
		original := upper(mutated[pos])

		// draws on anything other than A/C/G/T are spent without a substitution
		if !seqio.IsBase(original) {
			continue
		}
		mutated[pos] = Mutator.substitute(original)
		summary.Applied++
	}
	return mutated, summary
}

// samplePositions draws count distinct positions from [0, n) using a partial Fisher-Yates shuffle
func (Mutator *Mutator) samplePositions(n, count int) []int {
	positions := make([]int, count)
	swapped := make(map[int]int, count)
	lookup := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	for i := 0; i < count; i++ {
		j := i + Mutator.rng.Intn(n-i)
		positions[i] = lookup(j)
		swapped[j] = lookup(i)
	}
	return positions
}

// substitute returns a base chosen uniformly from the three bases that differ from original
func (Mutator *Mutator) substitute(original byte) byte {
	choices := make([]byte, 0, 3)
	for _, base := range bases {
		if base != original {
			choices = append(choices, base)
		}
	}
	return choices[Mutator.rng.Intn(len(choices))]
}

// upper converts a lower case ASCII letter to upper case
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// Mutate is a convenience function that runs a single seeded mutation
func Mutate(seq []byte, rate float64, seed int64, w io.Writer) ([]byte, *Summary, error) {
	mutator, err := NewMutator(rate, seed, w)
	if err != nil {
		return nil, nil, err
	}
	mutated, summary := mutator.Mutate(seq)
	return mutated, summary, nil
}

// Sorted returns the drawn positions in ascending order
func (Summary *Summary) Sorted() []int {
	positions := append([]int(nil), Summary.Positions...)
	sort.Ints(positions)
	return positions
}
