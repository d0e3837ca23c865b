package fasta

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/seqio/seq"
)

// QualReader pairs a FASTA sequence stream with a companion quality
// stream.  The quality file is FASTA-shaped, but its "sequence" lines
// are whitespace-separated decimal Phred scores; records are matched
// positionally and must agree on name.  Scanned records carry the
// scores re-encoded as a Phred+33 quality string.
type QualReader struct {
	sr  *Reader
	qr  *Reader
	err error
}

// NewQualReader constructs a QualReader over two already-open streams.
// The caller retains ownership of both.
func NewQualReader(sequences, qualities io.Reader) *QualReader {
	return &QualReader{
		sr: NewReader(sequences),
		// Linebreaks separate scores just like any other whitespace, so
		// they must survive the join of a multi-line record body.
		qr: NewReader(qualities, KeepLinebreaks()),
	}
}

// OpenQual opens a FASTA file and its companion quality file.  The
// returned QualReader owns both files and closes them in Close.
func OpenQual(ctx context.Context, seqPath, qualPath string) (*QualReader, error) {
	sr, err := Open(ctx, seqPath)
	if err != nil {
		return nil, err
	}
	qr, err := Open(ctx, qualPath, KeepLinebreaks())
	if err != nil {
		_ = sr.Close(ctx)
		return nil, err
	}
	return &QualReader{sr: sr, qr: qr}, nil
}

// Scan reads the next paired record into rec.  It fails with a
// *FormatError if the two streams disagree on record count or record
// names, or if a quality token is not a valid score.
func (r *QualReader) Scan(rec *seq.Sequence) bool {
	if r.err != nil {
		return false
	}
	var sequence, quals seq.Sequence
	okSeq := r.sr.Scan(&sequence)
	okQual := r.qr.Scan(&quals)
	if okSeq != okQual {
		if err := firstErr(r.sr.Err(), r.qr.Err()); err != nil {
			r.err = err
		} else if okSeq {
			r.err = seq.FormatErrorf("quality file ends before FASTA file: no quality values for read %q", sequence.Name)
		} else {
			r.err = seq.FormatErrorf("FASTA file ends before quality file: read %q has no sequence", quals.Name)
		}
		return false
	}
	if !okSeq {
		r.err = firstErr(r.sr.Err(), r.qr.Err())
		return false
	}
	if sequence.Name != quals.Name {
		r.err = seq.FormatErrorf("read name %q in FASTA file does not match read name %q in quality file",
			sequence.Name, quals.Name)
		return false
	}
	fields := strings.Fields(quals.Seq)
	scores := make([]int, len(fields))
	for i, field := range fields {
		q, err := strconv.Atoi(field)
		if err != nil {
			r.err = seq.FormatErrorf("invalid quality value %q for read %q", field, quals.Name)
			return false
		}
		scores[i] = q
	}
	encoded, err := seq.EncodeQuals(scores)
	if err != nil {
		r.err = err
		return false
	}
	if encoded == "" && sequence.Seq != "" {
		r.err = seq.FormatErrorf("no quality values for read %q", sequence.Name)
		return false
	}
	s, err := seq.New(sequence.Name, sequence.Seq, encoded)
	if err != nil {
		r.err = err
		return false
	}
	*rec = s
	return true
}

// Err returns the first error encountered while scanning, or nil if
// both streams ended normally.
func (r *QualReader) Err() error { return r.err }

// Close releases any files the QualReader opened itself.
func (r *QualReader) Close(ctx context.Context) error {
	err := r.sr.Close(ctx)
	if e := r.qr.Close(ctx); e != nil && err == nil {
		err = e
	}
	return err
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
