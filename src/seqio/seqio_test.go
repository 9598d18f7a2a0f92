package seqio

import (
	"bytes"
	"testing"
)

// setup variables
var (
	rawSeq        = []byte("acagcaggaaggcttactggagaaacgtatcgactataagaatcgggtgatggaacctcacRYKMnn-.*ACGT")
	expectedUpper = []byte("ACAGCAGGAAGGCTTACTGGAGAAACGTATCGACTATAAGAATCGGGTGATGGAACCTCACNNNNNNNNNACGT")
)

func TestSequenceConstructor(t *testing.T) {
	raw := []byte("acgt")
	s := NewSequence("seq1", "a test sequence", raw)
	raw[0] = 'T'
	if s.Seq[0] != 'a' {
		t.Fatal("NewSequence did not copy the sequence bytes")
	}
	if s.Len() != 4 || s.ID != "seq1" || s.Desc != "a test sequence" {
		t.Fatal("NewSequence did not set the sequence fields")
	}
}

func TestNormalise(t *testing.T) {
	s := NewSequence("seq1", "", rawSeq)
	s.Normalise()
	if !bytes.Equal(s.Seq, expectedUpper) {
		t.Fatalf("Normalise method failed:\n%s\n%s", s.Seq, expectedUpper)
	}
	if s.Len() != len(rawSeq) {
		t.Fatal("Normalise changed the sequence length")
	}
}

func TestNormaliseIdempotent(t *testing.T) {
	for _, input := range []string{"", "acgt", "ACGTNNN", "xyz\tacg", "nNnRYacgtACGT", "GATTACA"} {
		once := Normalise(input)
		if len(once) != len(input) {
			t.Fatalf("normalising %q changed the length", input)
		}
		if twice := Normalise(once); twice != once {
			t.Fatalf("normalise is not idempotent for %q: %q vs %q", input, once, twice)
		}
		for i := 0; i < len(once); i++ {
			if !IsBase(once[i]) && once[i] != UNKNOWN {
				t.Fatalf("normalised sequence contains unexpected base %q", once[i])
			}
		}
	}
}

func TestIsBase(t *testing.T) {
	for _, b := range []byte("ACGT") {
		if !IsBase(b) {
			t.Fatalf("%q should be a base", b)
		}
	}
	for _, b := range []byte("acgtN-") {
		if IsBase(b) {
			t.Fatalf("%q should not be a base", b)
		}
	}
}
