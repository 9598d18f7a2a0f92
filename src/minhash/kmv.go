package minhash

import (
	"container/heap"
	"sort"

	"github.com/pkg/errors"
	"github.com/will-rowe/ntHash"
)

// KMVsketch is the structure for the K-Minimum Values MinHash sketch of a set of k-mers
type KMVsketch struct {
	kmerSize   uint
	sketchSize uint
	heap       *maxHeap
	members    map[uint64]struct{}
}

// NewKMVsketch is the constructor for a KMVsketch data structure
func NewKMVsketch(k, s uint) *KMVsketch {
	newSketch := &KMVsketch{
		kmerSize:   k,
		sketchSize: s,
		heap:       &maxHeap{},
		members:    make(map[uint64]struct{}, s),
	}
	heap.Init(newSketch.heap)
	return newSketch
}

// AddSequence is a method to decompose a sequence to k-mers, hash them and add any minimums to the sketch
func (KMVsketch *KMVsketch) AddSequence(sequence []byte) error {
	if len(sequence) < int(KMVsketch.kmerSize) {
		return errors.Errorf("sequence length (%d) is shorter than k-mer length (%d)", len(sequence), KMVsketch.kmerSize)
	}
	hasher, err := ntHash.New(&sequence, KMVsketch.kmerSize)
	if err != nil {
		return errors.Wrap(err, "could not initialise ntHash")
	}
	for hv := range hasher.Hash(CANONICAL) {

		// the sketch holds distinct hash values only
		if _, ok := KMVsketch.members[hv]; ok {
			continue
		}
		if uint(KMVsketch.heap.Len()) < KMVsketch.sketchSize {
			heap.Push(KMVsketch.heap, hv)
			KMVsketch.members[hv] = struct{}{}
		} else if KMVsketch.sketchSize > 0 && hv < (*KMVsketch.heap)[0] {

			// replace the largest value currently in the sketch with the new hash
			delete(KMVsketch.members, (*KMVsketch.heap)[0])
			(*KMVsketch.heap)[0] = hv
			KMVsketch.members[hv] = struct{}{}
			heap.Fix(KMVsketch.heap, 0)
		}
	}
	return nil
}

// GetSketch is a method to return the sketch values, sorted in ascending order
func (KMVsketch *KMVsketch) GetSketch() []uint64 {
	sketch := make([]uint64, len(*KMVsketch.heap))
	copy(sketch, *KMVsketch.heap)
	sort.Slice(sketch, func(i, j int) bool { return sketch[i] < sketch[j] })
	return sketch
}

// GetSimilarity estimates the Jaccard similarity of two k-mer sets from their KMV sketches
// the estimate is the fraction of the bottom-s values of the sketch union that are found in both sketches
func (KMVsketch *KMVsketch) GetSimilarity(query *KMVsketch) (float64, error) {
	if KMVsketch.kmerSize != query.kmerSize {
		return 0.0, errors.Errorf("mismatched k-mer sizes: %d vs. %d", KMVsketch.kmerSize, query.kmerSize)
	}
	if KMVsketch.sketchSize != query.sketchSize {
		return 0.0, errors.Errorf("mismatched sketch sizes: %d vs. %d", KMVsketch.sketchSize, query.sketchSize)
	}
	a, b := KMVsketch.GetSketch(), query.GetSketch()
	union, intersect := 0, 0
	i, j := 0, 0
	for uint(union) < KMVsketch.sketchSize && (i < len(a) || j < len(b)) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			i++
		case i == len(a) || b[j] < a[i]:
			j++
		default:
			intersect++
			i++
			j++
		}
		union++
	}
	if union == 0 {
		return 0.0, nil
	}
	return float64(intersect) / float64(union), nil
}

// Len returns the number of values currently held in the sketch
func (KMVsketch *KMVsketch) Len() int {
	return KMVsketch.heap.Len()
}
