// Package fastx provides the FASTA reading and writing used by anise, backed by biogo.
package fastx

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
	"github.com/will-rowe/anise/src/seqio"
)

// LINEWIDTH is the number of bases written per FASTA line
const LINEWIDTH int = 60

// Parser reads all the records from a FASTA stream
type Parser interface {
	Parse(r io.Reader) ([]*seqio.Sequence, error)
}

// Writer writes records to a FASTA stream
type Writer interface {
	Write(w io.Writer, seqs []*seqio.Sequence) error
}

// BiogoFASTA satisfies both Parser and Writer using the biogo FASTA reader and writer
type BiogoFASTA struct {
	Width int
}

// NewBiogoFASTA is the constructor
func NewBiogoFASTA() *BiogoFASTA {
	return &BiogoFASTA{Width: LINEWIDTH}
}

// Parse is a method to collect every record in a FASTA stream
func (BiogoFASTA *BiogoFASTA) Parse(r io.Reader) ([]*seqio.Sequence, error) {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	seqs := []*seqio.Sequence{}
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not parse FASTA")
		}
		record, ok := s.(*linear.Seq)
		if !ok {
			return nil, errors.Errorf("unexpected sequence type from FASTA reader: %T", s)
		}
		seq := make([]byte, len(record.Seq))
		for i, l := range record.Seq {
			seq[i] = byte(l)
		}
		seqs = append(seqs, &seqio.Sequence{ID: record.Name(), Desc: record.Description(), Seq: seq})
	}
	return seqs, nil
}

// Write is a method to write records in FASTA format, keeping their IDs and descriptions
func (BiogoFASTA *BiogoFASTA) Write(w io.Writer, seqs []*seqio.Sequence) error {
	writer := fasta.NewWriter(w, BiogoFASTA.Width)
	for _, s := range seqs {
		letters := make([]alphabet.Letter, len(s.Seq))
		for i, b := range s.Seq {
			letters[i] = alphabet.Letter(b)
		}
		record := linear.NewSeq(s.ID, letters, alphabet.DNA)
		record.Desc = s.Desc
		if _, err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "could not write FASTA record %v", s.ID)
		}
	}
	return nil
}

// file wraps a gzip reader so that closing it also closes the underlying file
type file struct {
	io.Reader
	closers []io.Closer
}

func (f *file) Close() error {
	var err error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if cerr := f.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open is a function to open a FASTA file for reading, gzipped files are decompressed on the fly
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %v", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gz, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, errors.Wrapf(err, "could not decompress %v", path)
	}
	return &file{Reader: gz, closers: []io.Closer{fh, gz}}, nil
}

// ReadFile is a function to parse every record in a FASTA file
func ReadFile(parser Parser, path string) ([]*seqio.Sequence, error) {
	fh, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	seqs, err := parser.Parse(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %v", path)
	}
	return seqs, nil
}

// LoadGenome is a function to read a FASTA file as a single genome, the records are concatenated and normalised
func LoadGenome(parser Parser, path string) (*seqio.Sequence, error) {
	seqs, err := ReadFile(parser, path)
	if err != nil {
		return nil, err
	}
	genome := &seqio.Sequence{ID: path}
	for _, s := range seqs {
		genome.Seq = append(genome.Seq, s.Seq...)
	}
	genome.Normalise()
	return genome, nil
}

// WriteFile is a function to write records to a new FASTA file
func WriteFile(writer Writer, path string, seqs []*seqio.Sequence) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	if err := writer.Write(fh, seqs); err != nil {
		fh.Close()
		return err
	}
	return errors.Wrapf(fh.Close(), "could not close %v", path)
}
