/*
	the seqio package contains the sequence type used throughout anise, along with the base normaliser
*/
package seqio

// UNKNOWN is the base used to replace anything that isn't A/C/G/T
const UNKNOWN byte = 'N'

// normTable maps every byte to its normalised base
var normTable [256]byte

func init() {
	for i := range normTable {
		normTable[i] = UNKNOWN
	}
	for _, base := range []byte("ACGT") {
		normTable[base] = base
		normTable[base+32] = base
	}
}

// Sequence is the base type for a FASTA record
type Sequence struct {
	ID   string
	Desc string
	Seq  []byte
}

// NewSequence is the Sequence constructor, the sequence bytes are copied
func NewSequence(id, desc string, seq []byte) *Sequence {
	return &Sequence{
		ID:   id,
		Desc: desc,
		Seq:  append([]byte(nil), seq...),
	}
}

// Len returns the number of bases held by the sequence
func (Sequence *Sequence) Len() int {
	return len(Sequence.Seq)
}

// Normalise is a method to convert bases to upper case and mask anything that isn't A/C/G/T with N
func (Sequence *Sequence) Normalise() {
	NormaliseBytes(Sequence.Seq)
}

// NormaliseBytes upper cases a slice of bases in place and replaces any non A/C/G/T base with N
func NormaliseBytes(seq []byte) {
	for i, base := range seq {
		seq[i] = normTable[base]
	}
}

// Normalise returns the normalised copy of a string, see NormaliseBytes
func Normalise(s string) string {
	b := []byte(s)
	NormaliseBytes(b)
	return string(b)
}

// IsBase reports whether a byte is one of the four canonical (upper case) bases
func IsBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
