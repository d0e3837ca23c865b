// Package fasta reads and writes FASTA-formatted sequence files: a '>'
// header line followed by sequence lines, repeated per record, with
// optional leading '#' comment lines.  It also pairs a FASTA file with
// a companion quality file (whitespace-separated integer scores in
// FASTA shape) to produce quality-annotated records.
package fasta

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/seqio/seq"
	"github.com/pkg/errors"
)

// maxTokenSize bounds a single input line; single-line sequences can be
// chromosome length.
const maxTokenSize = 256 * 1024 * 1024

// ReaderOpt configures a Reader.
type ReaderOpt func(*Reader)

// KeepLinebreaks preserves the line structure of multi-line sequence
// bodies: the assembled sequence contains a '\n' wherever the input
// did, instead of the lines being concatenated.
func KeepLinebreaks() ReaderOpt {
	return func(r *Reader) { r.keepLinebreaks = true }
}

// Colorspace validates every record as a colorspace sequence: the
// leading character must be a primer base.
func Colorspace() ReaderOpt {
	return func(r *Reader) { r.colorspace = true }
}

// Reader parses FASTA records from a stream.  It yields records
// lazily, one Scan call at a time, and is single-pass: to re-read a
// file, construct a new Reader.  Scanners constructed with NewReader
// never close the underlying stream; those constructed with Open own
// the file they opened and release it in Close.
type Reader struct {
	sc  *bufio.Scanner
	f   file.File     // non-nil only when this Reader opened the path itself
	dec io.ReadCloser // decompressor, when the path implied one

	keepLinebreaks bool
	colorspace     bool

	name    string   // header of the record being accumulated
	lines   []string // its sequence lines so far
	pending bool
	done    bool
	err     error
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

// Open opens the FASTA file at path, transparently decompressing it if
// the path implies a compression codec.  The returned Reader owns the
// underlying file and closes it in Close.
func Open(ctx context.Context, path string, opts ...ReaderOpt) (*Reader, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening FASTA file %s", path)
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

// Scan reads the next record into rec, returning false at end of
// stream or on error.  Once Scan returns false it never returns true
// again; check Err to distinguish end of stream from failure.
func (r *Reader) Scan(rec *seq.Sequence) bool {
	if r.err != nil || r.done {
		return false
	}
	for r.sc.Scan() {
		line := r.sc.Text()
		if line != "" && line[0] == '#' {
			continue
		}
		if !r.pending {
			if line == "" {
				continue
			}
			if line[0] != '>' {
				r.err = seq.FormatErrorf("expected FASTA header line starting with '>', got %q", line)
				return false
			}
			r.name = line[1:]
			r.pending = true
			r.lines = r.lines[:0]
			continue
		}
		if line != "" && line[0] == '>' {
			if !r.emit(rec) {
				return false
			}
			r.name = line[1:]
			r.lines = r.lines[:0]
			return true
		}
		r.lines = append(r.lines, line)
	}
	if err := r.sc.Err(); err != nil {
		r.err = errors.Wrap(err, "reading FASTA input")
		return false
	}
	r.done = true
	if r.pending {
		r.pending = false
		return r.emit(rec)
	}
	return false
}

func (r *Reader) emit(rec *seq.Sequence) bool {
	sep := ""
	if r.keepLinebreaks {
		sep = "\n"
	}
	sequence := strings.Join(r.lines, sep)
	if r.colorspace {
		cs, err := seq.NewColorspace(r.name, sequence, "")
		if err != nil {
			r.err = err
			return false
		}
		*rec = cs.Sequence
		return true
	}
	s, err := seq.New(r.name, sequence, "")
	if err != nil {
		r.err = err
		return false
	}
	*rec = s
	return true
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
