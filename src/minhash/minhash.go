// Package minhash contains a bottom-k (K-Minimum Values) MinHash sketch, using the ntHash rolling hash function.
// It gives a fixed size alternative to the full and modimizer k-mer sets.
package minhash

// CANONICAL tells ntHash whether to hash canonical k-mers, forward strand k-mers are used so the sketch is comparable with the k-mer sets
const CANONICAL bool = false

// MinHash is an interface to group the different flavours of MinHash
type MinHash interface {
	AddSequence([]byte) error
	GetSketch() []uint64
}

// maxHeap holds the current sketch, with the largest value at the top so it can be evicted first
type maxHeap []uint64

func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h maxHeap) Len() int           { return len(h) }

// Push is a method to add an element to the heap
func (h *maxHeap) Push(x interface{}) {
	*h = append(*h, x.(uint64))
}

// Pop is a method to remove an element from the heap
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
