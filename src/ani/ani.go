// Package ani converts k-mer Jaccard similarities into Average Nucleotide Identity estimates.
package ani

import "math"

// Estimate holds the two ANI estimates for a Jaccard similarity
type Estimate struct {
	Jaccard float64
	Exact   float64
	Approx  float64
}

// NewEstimate returns both ANI estimates for a Jaccard similarity and k-mer size
func NewEstimate(jaccard float64, k int) Estimate {
	return Estimate{
		Jaccard: jaccard,
		Exact:   Exact(jaccard, k),
		Approx:  Approx(jaccard, k),
	}
}

// Exact returns the k-th root of the Jaccard similarity, or 0.0 if the similarity isn't positive
func Exact(jaccard float64, k int) float64 {
	if jaccard <= 0.0 {
		return 0.0
	}
	return math.Pow(jaccard, 1/float64(k))
}

// Approx returns the log approximation of the exact estimate (1 + ln(j)/k), or 0.0 if the similarity isn't positive
func Approx(jaccard float64, k int) float64 {
	if jaccard <= 0.0 {
		return 0.0
	}
	return 1 + math.Log(jaccard)/float64(k)
}

// Drift is the difference between the approximate and exact estimates
func (Estimate Estimate) Drift() float64 {
	return Estimate.Approx - Estimate.Exact
}
