// Package seqio provides uniform access to FASTA and FASTQ sequence
// files.  It auto-detects the format of a path or stream, constructs
// the matching reader or writer, and wraps single-record streams into
// mate-pair streams for interleaved input.  Downstream tools consume
// the Reader and Writer contracts defined here without caring which
// wire format the data came from.
package seqio

import (
	"context"

	"github.com/grailbio/seqio/seq"
)

// Reader is a lazy, single-pass stream of sequence records.  The Scan
// method fills in the next record, returning false at end of stream or
// on error; once it returns false it never returns true again.  Err
// distinguishes the two.  Close releases the underlying stream only if
// the Reader opened it itself (by path); a Reader over a
// caller-supplied stream leaves closing to the caller.
type Reader interface {
	Scan(rec *seq.Sequence) bool
	Err() error
	Close(ctx context.Context) error
}

// Writer serializes sequence records.  Close flushes and, per the same
// ownership rule as Reader, closes only streams the Writer opened
// itself.
type Writer interface {
	WriteRecord(rec seq.Sequence) error
	Close(ctx context.Context) error
}
