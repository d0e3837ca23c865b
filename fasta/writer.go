package fasta

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/seqio/seq"
	"github.com/pkg/errors"
)

// WriterOpt configures a Writer.
type WriterOpt func(*Writer)

// LineLength wraps sequences at n characters per line.  The default is
// no wrapping: each sequence is emitted on a single line.
func LineLength(n int) WriterOpt {
	return func(w *Writer) { w.lineLength = n }
}

// Writer serializes records as FASTA.  Writes are error-latching: the
// first failure is remembered and returned by every subsequent call,
// so a run of writes can be checked once at the end.
type Writer struct {
	w          io.Writer
	buf        *bufio.Writer  // non-nil only for path-opened sinks
	gz         *gzip.Writer   // compressor, when the path implied one
	f          file.File      // non-nil only when this Writer opened the path itself
	lineLength int
	err        error
}

// NewWriter constructs a Writer over an already-open sink.  The caller
// retains ownership of w; Close on the returned Writer does not close
// it.
func NewWriter(w io.Writer, opts ...WriterOpt) *Writer {
	writer := &Writer{w: w}
	for _, opt := range opts {
		opt(writer)
	}
	return writer
}

// Create creates the FASTA file at path, gzip-compressing output when
// the path says so.  The returned Writer owns the underlying file and
// closes it in Close.
func Create(ctx context.Context, path string, opts ...WriterOpt) (*Writer, error) {
	f, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating FASTA file %s", path)
	}
	w := NewWriter(nil, opts...)
	w.f = f
	var out io.Writer = f.Writer(ctx)
	if fileio.DetermineType(path) == fileio.Gzip {
		w.gz = gzip.NewWriter(out)
		out = w.gz
	}
	w.buf = bufio.NewWriter(out)
	w.w = w.buf
	return w, nil
}

// Write appends one record.  The sequence is wrapped per the
// LineLength option.
func (w *Writer) Write(name, sequence string) error {
	w.writeString(">")
	w.writeString(name)
	w.writeString("\n")
	if w.lineLength > 0 {
		for i := 0; i < len(sequence); i += w.lineLength {
			end := i + w.lineLength
			if end > len(sequence) {
				end = len(sequence)
			}
			w.writeString(sequence[i:end])
			w.writeString("\n")
		}
	} else {
		w.writeString(sequence)
		w.writeString("\n")
	}
	return w.err
}

// WriteRecord appends rec.  Quality values, if any, are dropped; FASTA
// has no place for them.
func (w *Writer) WriteRecord(rec seq.Sequence) error {
	return w.Write(rec.Name, rec.Seq)
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Flush flushes buffered output without closing the sink.  It is only
// meaningful for path-opened Writers; for caller-supplied sinks every
// Write goes straight through.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.buf != nil {
		w.err = w.buf.Flush()
	}
	return w.err
}

// Close flushes and, if this Writer opened its own file, closes it.
// Close is idempotent.  It returns the first latched write error, if
// any.
func (w *Writer) Close(ctx context.Context) error {
	err := w.Flush()
	if w.gz != nil {
		if e := w.gz.Close(); e != nil && err == nil {
			err = e
		}
		w.gz = nil
	}
	if w.f != nil {
		if e := w.f.Close(ctx); e != nil && err == nil {
			err = e
		}
		w.f = nil
	}
	return err
}
