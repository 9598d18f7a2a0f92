package pipeline

import (
	"github.com/pkg/errors"
	"github.com/will-rowe/anise/src/kmer"
	"github.com/will-rowe/anise/src/minhash"
	"github.com/will-rowe/anise/src/seqio"
)

// Info stores the runtime information for a benchmark
type Info struct {
	Version    string
	KmerSize   int
	ModValue   int
	SketchSize int
	Seed       int64
	Rates      []float64
	Reference  *seqio.Sequence

	// the reference sketches, built once by Prepare
	refFull kmer.Set
	refMods kmer.Set
	refKMV  *minhash.KMVsketch
}

// Prepare is a method to check the runtime information and sketch the reference
func (Info *Info) Prepare() error {
	if Info.Reference == nil {
		return errors.New("no reference sequence supplied")
	}
	if Info.KmerSize < 1 {
		return errors.Errorf("k-mer size must be >= 1, got %d", Info.KmerSize)
	}
	if Info.Reference.Len() < Info.KmerSize {
		return errors.Errorf("reference length (%d) is shorter than k-mer size (%d)", Info.Reference.Len(), Info.KmerSize)
	}
	if Info.SketchSize < 1 {
		return errors.Errorf("sketch size must be >= 1, got %d", Info.SketchSize)
	}
	for _, rate := range Info.Rates {
		if rate < 0.0 || rate > 1.0 {
			return errors.Errorf("mutation rates must be between 0.0 and 1.0, got %v", rate)
		}
	}
	full := kmer.Extract(Info.Reference.Seq, Info.KmerSize)
	mods, err := kmer.Modimizers(Info.Reference.Seq, Info.KmerSize, Info.ModValue)
	if err != nil {
		return err
	}
	kmv := minhash.NewKMVsketch(uint(Info.KmerSize), uint(Info.SketchSize))
	if err := kmv.AddSequence(Info.Reference.Seq); err != nil {
		return err
	}
	Info.refFull, Info.refMods, Info.refKMV = full, mods, kmv
	return nil
}
