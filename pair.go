package seqio

import (
	"context"

	"github.com/grailbio/seqio/seq"
)

// Pair is one mated read pair: R1 and R2 of a single fragment.
type Pair struct {
	R1, R2 seq.Sequence
}

// PairReader turns a stream of consecutive mate pairs, stored as
// single records in interleaved order, into a stream of Pairs.  An
// unmatched trailing record is a *FormatError.
type PairReader struct {
	r   Reader
	err error
}

// NewPairReader wraps r, which yields records in R1, R2, R1, R2 order.
func NewPairReader(r Reader) *PairReader {
	return &PairReader{r: r}
}

// Scan reads the next mate pair, preserving input order.
func (p *PairReader) Scan(pair *Pair) bool {
	if p.err != nil {
		return false
	}
	var r1, r2 seq.Sequence
	if !p.r.Scan(&r1) {
		p.err = p.r.Err()
		return false
	}
	if !p.r.Scan(&r2) {
		if err := p.r.Err(); err != nil {
			p.err = err
		} else {
			p.err = seq.FormatErrorf("interleaved input has an odd number of reads: %q has no mate", r1.Name)
		}
		return false
	}
	pair.R1 = r1
	pair.R2 = r2
	return true
}

// Err returns the first error encountered while scanning, or nil if
// the stream ended normally on a pair boundary.
func (p *PairReader) Err() error { return p.err }

// Close closes the wrapped Reader, subject to its ownership rule.
func (p *PairReader) Close(ctx context.Context) error {
	return p.r.Close(ctx)
}
