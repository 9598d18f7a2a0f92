package kmer

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/vmihailenco/msgpack.v2"
)

// the sketch flavours that can be written to disk
const (
	FULL      = "full"
	MODIMIZER = "modimizer"
)

// Sketch is the on-disk form of a k-mer set
type Sketch struct {
	Kind   string
	Source string
	K      int
	M      int
	Kmers  []string
}

// NewSketch is the Sketch constructor, the k-mers are stored in sorted order
func NewSketch(kind, source string, k, m int, set Set) *Sketch {
	return &Sketch{
		Kind:   kind,
		Source: source,
		K:      k,
		M:      m,
		Kmers:  set.Sorted(),
	}
}

// Set returns the k-mer set held by the sketch
func (Sketch *Sketch) Set() Set {
	return NewSet(Sketch.Kmers...)
}

// Dump is a method to write a sketch to disk
func (Sketch *Sketch) Dump(path string) error {
	b, err := msgpack.Marshal(Sketch)
	if err != nil {
		return errors.Wrap(err, "could not encode sketch")
	}
	return errors.Wrapf(ioutil.WriteFile(path, b, 0644), "could not write sketch to %v", path)
}

// Load is a method to read a sketch from disk
func (Sketch *Sketch) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read sketch from %v", path)
	}
	if len(b) == 0 {
		return errors.Errorf("sketch file appears empty: %v", path)
	}
	return errors.Wrap(msgpack.Unmarshal(b, Sketch), "could not decode sketch")
}
