package seqio

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/seqio/fasta"
	"github.com/grailbio/seqio/fastq"
	"github.com/grailbio/seqio/seq"
	"github.com/pkg/errors"
)

// Opt configures Open, OpenPair, Create, NewReader and NewWriter.
type Opt func(*options)

type options struct {
	format     Format
	qualPath   string
	colorspace bool
	lineLength int
	twoHeaders bool
}

// WithFormat overrides format auto-detection.
func WithFormat(f Format) Opt {
	return func(o *options) { o.format = f }
}

// WithQualFile pairs a FASTA input with the companion quality file at
// path; the resulting records carry quality values.  Read side only.
func WithQualFile(path string) Opt {
	return func(o *options) { o.qualPath = path }
}

// WithColorspace validates input records as colorspace sequences.
func WithColorspace() Opt {
	return func(o *options) { o.colorspace = true }
}

// WithLineLength wraps FASTA output at n characters per line.
func WithLineLength(n int) Opt {
	return func(o *options) { o.lineLength = n }
}

// WithTwoHeaders repeats the record name on the '+' line of FASTQ
// output.
func WithTwoHeaders() Opt {
	return func(o *options) { o.twoHeaders = true }
}

// Open opens the sequence file at path and returns a Reader for its
// format.  The format is taken from the filename when the extension is
// conclusive, otherwise from the first non-whitespace byte of the
// content.  The returned Reader owns the stream it opened and closes
// it in Close.
func Open(ctx context.Context, path string, opts ...Opt) (Reader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.qualPath != "" {
		if o.colorspace {
			return nil, errors.New("colorspace reading of FASTA+quality file pairs is not supported")
		}
		return fasta.OpenQual(ctx, path, o.qualPath)
	}
	format := o.format
	if format == FormatUnknown {
		format = DetectFormat(path)
	}
	switch format {
	case FormatFASTA:
		return fasta.Open(ctx, path, fastaReaderOpts(o)...)
	case FormatFASTQ:
		return fastq.Open(ctx, path, fastqReaderOpts(o)...)
	}
	// Inconclusive filename: open the stream and sniff the content.
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sequence file %s", path)
	}
	var in io.Reader = f.Reader(ctx)
	dec := compress.NewReaderPath(in, path)
	if dec != nil {
		in = dec
	}
	r, err := newSniffedReader(in, o)
	if err != nil {
		if dec != nil {
			_ = dec.Close()
		}
		_ = f.Close(ctx)
		return nil, err
	}
	return &ownedReader{Reader: r, f: f, dec: dec}, nil
}

// NewReader returns a Reader over an already-open stream, determining
// the format from the first non-whitespace byte.  The caller retains
// ownership of r and closes it after use.
func NewReader(r io.Reader, opts ...Opt) (Reader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.qualPath != "" {
		return nil, errors.New("WithQualFile requires path-based Open")
	}
	if o.format != FormatUnknown {
		switch o.format {
		case FormatFASTA:
			return fasta.NewReader(r, fastaReaderOpts(o)...), nil
		case FormatFASTQ:
			return fastq.NewReader(r, fastqReaderOpts(o)...), nil
		}
	}
	return newSniffedReader(r, o)
}

func newSniffedReader(in io.Reader, o options) (Reader, error) {
	br := bufio.NewReader(in)
	format, err := SniffFormat(br)
	if err != nil {
		return nil, err
	}
	if format == FormatFASTA {
		return fasta.NewReader(br, fastaReaderOpts(o)...), nil
	}
	return fastq.NewReader(br, fastqReaderOpts(o)...), nil
}

func fastaReaderOpts(o options) []fasta.ReaderOpt {
	var opts []fasta.ReaderOpt
	if o.colorspace {
		opts = append(opts, fasta.Colorspace())
	}
	return opts
}

func fastqReaderOpts(o options) []fastq.ReaderOpt {
	var opts []fastq.ReaderOpt
	if o.colorspace {
		opts = append(opts, fastq.Colorspace())
	}
	return opts
}

// OpenPair opens the interleaved sequence file at path: consecutive
// records are mates of one fragment, and the returned PairReader
// yields them two at a time.
func OpenPair(ctx context.Context, path string, opts ...Opt) (*PairReader, error) {
	r, err := Open(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	return NewPairReader(r), nil
}

// Create creates a sequence file at path, choosing the output format
// from the filename.  An inconclusive extension is a *FormatError
// unless WithFormat is given.  The returned Writer owns the stream it
// opened and closes it in Close.
func Create(ctx context.Context, path string, opts ...Opt) (Writer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.qualPath != "" {
		return nil, seq.FormatErrorf("quality files cannot be written: WithQualFile is read-only, output %q", path)
	}
	format := o.format
	if format == FormatUnknown {
		format = DetectFormat(path)
	}
	switch format {
	case FormatFASTA:
		return fasta.Create(ctx, path, fastaWriterOpts(o)...)
	case FormatFASTQ:
		return fastq.Create(ctx, path, fastqWriterOpts(o)...)
	}
	return nil, seq.FormatErrorf("cannot determine sequence file format from output path %q", path)
}

// NewWriter returns a Writer in the given format over an already-open
// sink.  The caller retains ownership of w and closes it after use.
func NewWriter(w io.Writer, format Format, opts ...Opt) (Writer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.qualPath != "" {
		return nil, seq.FormatErrorf("quality files cannot be written: WithQualFile is read-only")
	}
	switch format {
	case FormatFASTA:
		return fasta.NewWriter(w, fastaWriterOpts(o)...), nil
	case FormatFASTQ:
		return fastq.NewWriter(w, fastqWriterOpts(o)...), nil
	}
	return nil, seq.FormatErrorf("cannot write records in format %v", format)
}

func fastaWriterOpts(o options) []fasta.WriterOpt {
	var opts []fasta.WriterOpt
	if o.lineLength > 0 {
		opts = append(opts, fasta.LineLength(o.lineLength))
	}
	return opts
}

func fastqWriterOpts(o options) []fastq.WriterOpt {
	var opts []fastq.WriterOpt
	if o.twoHeaders {
		opts = append(opts, fastq.TwoHeaders())
	}
	return opts
}

// ownedReader pairs a sniffed-format Reader with the file and
// decompressor that Open acquired on its behalf.
type ownedReader struct {
	Reader
	f   file.File
	dec io.ReadCloser
}

func (r *ownedReader) Close(ctx context.Context) error {
	err := r.Reader.Close(ctx)
	if r.dec != nil {
		if e := r.dec.Close(); e != nil && err == nil {
			err = e
		}
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
