// Package fastq reads and writes FASTQ-formatted sequence files: four
// lines per record ('@' header, sequence, '+' line, qualities), with
// DOS line endings tolerated.
package fastq

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/seqio/seq"
	"github.com/pkg/errors"
)

const maxTokenSize = 256 * 1024 * 1024

// ReaderOpt configures a Reader.
type ReaderOpt func(*Reader)

// Colorspace validates every record as a colorspace sequence: the
// leading character must be a primer base and the quality string is
// one shorter than the sequence, since the primer carries no quality
// value.
func Colorspace() ReaderOpt {
	return func(r *Reader) { r.colorspace = true }
}

// Reader parses FASTQ records from a stream.  It yields records
// lazily, one Scan call at a time, and is single-pass: to re-read a
// file, construct a new Reader.  Readers constructed with NewReader
// never close the underlying stream; those constructed with Open own
// the file they opened and release it in Close.
type Reader struct {
	sc  *bufio.Scanner
	f   file.File     // non-nil only when this Reader opened the path itself
	dec io.ReadCloser // decompressor, when the path implied one

	colorspace bool
	done       bool
	err        error
}

// NewReader constructs a Reader over an already-open stream.  The
// caller retains ownership of r: Close on the returned Reader does not
// close it.
func NewReader(r io.Reader, opts ...ReaderOpt) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxTokenSize)
	reader := &Reader{sc: sc}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Open opens the FASTQ file at path, transparently decompressing it if
// the path implies a compression codec.  The returned Reader owns the
// underlying file and closes it in Close.
func Open(ctx context.Context, path string, opts ...ReaderOpt) (*Reader, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening FASTQ file %s", path)
	}
	var in io.Reader = f.Reader(ctx)
	dec := compress.NewReaderPath(in, path)
	if dec != nil {
		in = dec
	}
	r := NewReader(in, opts...)
	r.f = f
	r.dec = dec
	return r, nil
}

// Scan reads the next 4-line record into rec, returning false at end
// of stream or on error.  A record that ends mid-way through its four
// lines is a *FormatError, as are missing '@' and '+' sentinels and a
// sequence/quality length mismatch.
func (r *Reader) Scan(rec *seq.Sequence) bool {
	if r.err != nil || r.done {
		return false
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = errors.Wrap(err, "reading FASTQ input")
		} else {
			r.done = true
		}
		return false
	}
	header := r.sc.Text()
	if len(header) == 0 || header[0] != '@' {
		r.err = seq.FormatErrorf("FASTQ header line must start with '@', got %q", header)
		return false
	}
	name := header[1:]
	sequence, ok := r.scanLine(name)
	if !ok {
		return false
	}
	plus, ok := r.scanLine(name)
	if !ok {
		return false
	}
	if len(plus) == 0 || plus[0] != '+' {
		r.err = seq.FormatErrorf("third line of FASTQ record %q must start with '+', got %q", name, plus)
		return false
	}
	qual, ok := r.scanLine(name)
	if !ok {
		return false
	}
	if r.colorspace {
		cs, err := seq.NewColorspace(name, sequence, qual)
		if err != nil {
			r.err = err
			return false
		}
		*rec = cs.Sequence
		return true
	}
	if len(qual) != len(sequence) {
		r.err = seq.FormatErrorf(
			"sequence and quality lengths differ for read %q: %d != %d",
			name, len(sequence), len(qual))
		return false
	}
	s, err := seq.New(name, sequence, qual)
	if err != nil {
		r.err = err
		return false
	}
	*rec = s
	return true
}

// scanLine reads one more line of the current record; running out of
// input here means the trailing record is incomplete.
func (r *Reader) scanLine(name string) (string, bool) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = errors.Wrap(err, "reading FASTQ input")
		} else {
			r.err = seq.FormatErrorf("incomplete FASTQ record %q at end of input", name)
		}
		return "", false
	}
	return r.sc.Text(), true
}

// Err returns the first error encountered while scanning, or nil if
// the stream ended normally.
func (r *Reader) Err() error { return r.err }

// Close releases the underlying file if this Reader opened it; for
// Readers over caller-supplied streams it is a no-op.  Close is
// idempotent.
func (r *Reader) Close(ctx context.Context) error {
	var err error
	if r.dec != nil {
		err = r.dec.Close()
		r.dec = nil
	}
	if r.f != nil {
		if e := r.f.Close(ctx); e != nil && err == nil {
			err = e
		}
		r.f = nil
	}
	return err
}
