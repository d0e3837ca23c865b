// Package seq contains the sequence record value types shared by the
// FASTA and FASTQ readers and writers.  A record is a named sequence
// with optional per-base quality values; records are immutable after
// construction and all format validation happens in the constructors.
package seq

import (
	"errors"
	"fmt"
)

// FormatError describes malformed sequence input: a missing sentinel
// character, a sequence/quality length mismatch, a truncated record,
// and so on.  The message includes the offending content.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// FormatErrorf constructs a *FormatError from a format string.
func FormatErrorf(format string, args ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// IsFormatError reports whether err is a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Sequence is one sequence record.  Qual is the Phred+33 encoded
// quality string; the empty string means qualities are absent (FASTA
// records).  Two records are equal iff all three fields are equal, so
// == comparison does the right thing.
type Sequence struct {
	Name string
	Seq  string
	Qual string
}

// New constructs a Sequence.  When qualities are present, their length
// must equal the sequence length; a mismatch is a *FormatError.
func New(name, sequence, qualities string) (Sequence, error) {
	if qualities != "" && len(qualities) != len(sequence) {
		return Sequence{}, FormatErrorf(
			"sequence and quality lengths differ for read %q: %d != %d",
			name, len(sequence), len(qualities))
	}
	return Sequence{Name: name, Seq: sequence, Qual: qualities}, nil
}

// HasQual reports whether the record carries quality values.
func (s Sequence) HasQual() bool { return s.Qual != "" }

// ColorspaceSequence is a colorspace-encoded sequence record.  The
// first sequence character is the primer base and carries no quality
// value, so the quality string is one shorter than the sequence.
type ColorspaceSequence struct {
	Sequence
	Primer byte
}

// NewColorspace constructs a ColorspaceSequence.  The leading sequence
// character must be one of the primer bases A, C, G, T, and qualities,
// when present, must be exactly one shorter than the sequence.
func NewColorspace(name, sequence, qualities string) (ColorspaceSequence, error) {
	if sequence == "" {
		return ColorspaceSequence{}, FormatErrorf(
			"colorspace read %q is empty, expected a leading primer base", name)
	}
	primer := sequence[0]
	switch primer {
	case 'A', 'C', 'G', 'T':
	default:
		return ColorspaceSequence{}, FormatErrorf(
			"primer base is %q in colorspace read %q, but only A, C, G and T are allowed",
			string(primer), name)
	}
	if qualities != "" && len(qualities) != len(sequence)-1 {
		return ColorspaceSequence{}, FormatErrorf(
			"quality length must be one less than sequence length for colorspace read %q: %d != %d-1",
			name, len(qualities), len(sequence))
	}
	return ColorspaceSequence{
		Sequence: Sequence{Name: name, Seq: sequence, Qual: qualities},
		Primer:   primer,
	}, nil
}
