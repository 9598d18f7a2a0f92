package mutate

import (
	"bytes"
	"strings"
	"testing"
)

var (
	testSeq  = []byte(strings.Repeat("ACGTTGCAAGGCTTACGATC", 50))
	testRate = 0.05
	testSeed = int64(42)
)

func TestMutatorConstructor(t *testing.T) {
	if _, err := NewMutator(-0.1, testSeed, nil); err == nil {
		t.Fatal("negative mutation rates should fault")
	}
	if _, err := NewMutator(1.1, testSeed, nil); err == nil {
		t.Fatal("mutation rates above 1.0 should fault")
	}
	if _, err := NewMutator(testRate, testSeed, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMutate(t *testing.T) {
	var summaryLine bytes.Buffer
	mutated, summary, err := Mutate(testSeq, testRate, testSeed, &summaryLine)
	if err != nil {
		t.Fatal(err)
	}
	if len(mutated) != len(testSeq) {
		t.Fatalf("mutated sequence length changed: %d vs %d", len(mutated), len(testSeq))
	}
	if summary.Total != 1000 || summary.Requested != 50 || len(summary.Positions) != 50 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summaryLine.String() != "Total bases: 1000, Mutating 50 bases (5%)\n" {
		t.Fatalf("unexpected summary line: %q", summaryLine.String())
	}

	// every drawn position is distinct and every applied substitution changed the base
	seen := make(map[int]bool)
	for _, pos := range summary.Positions {
		if seen[pos] {
			t.Fatalf("position %d was drawn twice", pos)
		}
		seen[pos] = true
		if mutated[pos] == testSeq[pos] {
			t.Fatalf("position %d was drawn but not substituted", pos)
		}
	}
	diffs := 0
	for i := range testSeq {
		if mutated[i] != testSeq[i] {
			diffs++
			if !seen[i] {
				t.Fatalf("position %d changed without being drawn", i)
			}
		}
	}
	if diffs != summary.Applied || summary.Applied != summary.Requested {
		t.Fatalf("expected %d substitutions, found %d (summary says %d)", summary.Requested, diffs, summary.Applied)
	}
}

func TestMutateDeterministic(t *testing.T) {
	mutator, err := NewMutator(testRate, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, summaryA := mutator.Mutate(testSeq)
	b, summaryB := mutator.Mutate(testSeq)
	if !bytes.Equal(a, b) {
		t.Fatal("same seed should reproduce the mutated sequence")
	}
	for i := range summaryA.Positions {
		if summaryA.Positions[i] != summaryB.Positions[i] {
			t.Fatal("same seed should reproduce the mutated positions")
		}
	}
	c, _, err := Mutate(testSeq, testRate, testSeed+1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("different seed unexpectedly produced an identical sequence")
	}
}

func TestMutateSkipsUnknownBases(t *testing.T) {
	seq := []byte(strings.Repeat("N", 100))
	mutated, summary, err := Mutate(seq, 0.5, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Requested != 50 || summary.Applied != 0 {
		t.Fatalf("draws on N should be spent without substitution: %+v", summary)
	}
	if !bytes.Equal(mutated, seq) {
		t.Fatal("a sequence of Ns should not change")
	}

	// a mixed sequence can only apply substitutions at A/C/G/T
	mixed := []byte(strings.Repeat("ACGTN", 40))
	mutated, summary, err = Mutate(mixed, 1.0, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Requested != 200 || summary.Applied != 160 {
		t.Fatalf("expected 160 of 200 draws to be applied: %+v", summary)
	}
	for i, base := range mixed {
		if base == 'N' && mutated[i] != 'N' {
			t.Fatalf("N at position %d was substituted", i)
		}
		if base != 'N' && mutated[i] == base {
			t.Fatalf("base at position %d should have been substituted", i)
		}
	}
}

func TestMutateEdgeCases(t *testing.T) {
	mutated, summary, err := Mutate([]byte{}, 0.5, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(mutated) != 0 || summary.Requested != 0 {
		t.Fatal("an empty sequence should not be mutated")
	}
	mutated, summary, err = Mutate(testSeq, 0.0, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mutated, testSeq) || summary.Applied != 0 {
		t.Fatal("a rate of 0.0 should not mutate the sequence")
	}

	// lower case bases are still substituted, with an upper case base
	mutated, summary, err = Mutate([]byte("acgt"), 1.0, testSeed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Applied != 4 {
		t.Fatalf("expected every lower case base to be substituted: %+v", summary)
	}
	for i, base := range mutated {
		if base == "ACGT"[i] || (base != 'A' && base != 'C' && base != 'G' && base != 'T') {
			t.Fatalf("unexpected substitution at position %d: %q", i, base)
		}
	}
	if sorted := summary.Sorted(); sorted[0] != 0 || sorted[3] != 3 {
		t.Fatalf("unexpected sorted positions: %v", sorted)
	}
}
