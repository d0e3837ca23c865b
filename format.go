package seqio

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/fileio"
	"github.com/grailbio/seqio/seq"
	"github.com/pkg/errors"
)

// Format identifies a sequence file format.
type Format int

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = iota
	// FormatFASTA is '>'-delimited records without quality values.
	FormatFASTA
	// FormatFASTQ is 4-line '@'-delimited records with quality values.
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "FASTA"
	case FormatFASTQ:
		return "FASTQ"
	}
	return "unknown"
}

// DetectFormat determines the format from a filename, ignoring any
// compression suffix.  It returns FormatUnknown for extensions it does
// not recognize; callers fall back to content sniffing.
func DetectFormat(path string) Format {
	base := strings.ToLower(filepath.Base(path))
	if fileio.DetermineType(base) == fileio.Gzip {
		base = strings.TrimSuffix(base, ".gz")
	}
	switch filepath.Ext(base) {
	case ".fasta", ".fa", ".fna", ".csfasta":
		return FormatFASTA
	case ".fastq", ".fq":
		return FormatFASTQ
	}
	return FormatUnknown
}

// SniffFormat determines the format from stream content without
// consuming it: the first non-whitespace byte must be the '>' or '@'
// sentinel.  Anything else, including an empty stream, is a
// *FormatError.
func SniffFormat(br *bufio.Reader) (Format, error) {
	for n := 1; ; n++ {
		buf, err := br.Peek(n)
		if len(buf) < n {
			if err != nil && err != io.EOF {
				return FormatUnknown, errors.Wrap(err, "sniffing sequence file format")
			}
			return FormatUnknown, seq.FormatErrorf("cannot detect sequence file format: input contains no records")
		}
		switch c := buf[n-1]; c {
		case ' ', '\t', '\n', '\r':
			continue
		case '>':
			return FormatFASTA, nil
		case '@':
			return FormatFASTQ, nil
		default:
			return FormatUnknown, seq.FormatErrorf("cannot detect sequence file format: input starts with %q, expected '>' or '@'", string(c))
		}
	}
}
