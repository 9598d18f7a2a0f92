// Package kmer contains the k-mer set sketches (full and modimizer) and the Jaccard estimator used by anise.
package kmer

import (
	"hash/crc32"
	"sort"

	"github.com/pkg/errors"
)

// Set is a set of distinct k-mers
type Set map[string]struct{}

// NewSet is the Set constructor
func NewSet(kmers ...string) Set {
	s := make(Set, len(kmers))
	for _, kmer := range kmers {
		s.Add(kmer)
	}
	return s
}

// Add is a method to add a k-mer to the set
func (s Set) Add(kmer string) {
	s[kmer] = struct{}{}
}

// Contains reports whether the k-mer is in the set
func (s Set) Contains(kmer string) bool {
	_, ok := s[kmer]
	return ok
}

// Len returns the number of distinct k-mers in the set
func (s Set) Len() int {
	return len(s)
}

// IsSubset reports whether every k-mer in s is also in other
func (s Set) IsSubset(other Set) bool {
	for kmer := range s {
		if !other.Contains(kmer) {
			return false
		}
	}
	return true
}

// Sorted returns the k-mers held by the set in lexicographic order
func (s Set) Sorted() []string {
	kmers := make([]string, 0, len(s))
	for kmer := range s {
		kmers = append(kmers, kmer)
	}
	sort.Strings(kmers)
	return kmers
}

// windows calls fn for every k-length window of seq, there are no windows if k > len(seq)
func windows(seq []byte, k int, fn func(kmer []byte)) {
	if k < 1 {
		return
	}
	for i := 0; i+k <= len(seq); i++ {
		fn(seq[i : i+k])
	}
}

// Extract returns the full k-mer set of a sequence
func Extract(seq []byte, k int) Set {
	kmers := make(Set)
	windows(seq, k, func(kmer []byte) {
		kmers[string(kmer)] = struct{}{}
	})
	return kmers
}

// Checksum is the hash used to select modimizers (CRC-32, IEEE polynomial)
func Checksum(kmer []byte) uint32 {
	return crc32.ChecksumIEEE(kmer)
}

// Modimizers returns the k-mers of a sequence whose checksum is divisible by m
func Modimizers(seq []byte, k, m int) (Set, error) {
	if m < 1 {
		return nil, errors.Errorf("modimizer sampling factor must be >= 1, got %d", m)
	}
	mods := make(Set)
	mod := uint64(m)
	windows(seq, k, func(kmer []byte) {
		if uint64(Checksum(kmer))%mod == 0 {
			mods[string(kmer)] = struct{}{}
		}
	})
	return mods, nil
}

// Jaccard returns the Jaccard similarity of two k-mer sets, which is 0.0 if both sets are empty
func Jaccard(a, b Set) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	intersect := 0
	for kmer := range a {
		if b.Contains(kmer) {
			intersect++
		}
	}
	union := len(a) + len(b) - intersect
	if union == 0 {
		return 0.0
	}
	return float64(intersect) / float64(union)
}
