package main

/*
seq-convert reads a FASTA or FASTQ file (optionally gzipped, optionally
paired with a FASTA-shaped quality file) and re-emits the records in
the format implied by the output filename.  It exists both as a
conversion utility and as an end-to-end exercise of the seqio reader
and writer contracts.
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/seqio"
	"github.com/grailbio/seqio/seq"
)

var (
	qualFile    = flag.String("qual", "", "Companion FASTA-shaped quality file for a FASTA input")
	colorspace  = flag.Bool("colorspace", false, "Validate input records as colorspace sequences")
	interleaved = flag.Bool("interleaved", false, "Treat input as interleaved mate pairs and require an even record count")
	format      = flag.String("format", "", "Force the output format ('fasta' or 'fastq') instead of inferring it from the output filename")
	lineLength  = flag.Int("line-length", 0, "Wrap FASTA output at this many characters per line; 0 means no wrapping")
	twoHeaders  = flag.Bool("two-headers", false, "Repeat the read name on the '+' line of FASTQ output")
)

func seqConvertUsage() {
	fmt.Printf("Usage: %s [OPTIONS] inpath outpath\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = seqConvertUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("expected exactly two positional arguments (inpath and outpath), got %d; please check flag syntax", flag.NArg())
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)
	ctx := vcontext.Background()

	var readOpts []seqio.Opt
	if *qualFile != "" {
		readOpts = append(readOpts, seqio.WithQualFile(*qualFile))
	}
	if *colorspace {
		readOpts = append(readOpts, seqio.WithColorspace())
	}
	var writeOpts []seqio.Opt
	if *lineLength > 0 {
		writeOpts = append(writeOpts, seqio.WithLineLength(*lineLength))
	}
	if *twoHeaders {
		writeOpts = append(writeOpts, seqio.WithTwoHeaders())
	}
	switch strings.ToLower(*format) {
	case "":
	case "fasta":
		writeOpts = append(writeOpts, seqio.WithFormat(seqio.FormatFASTA))
	case "fastq":
		writeOpts = append(writeOpts, seqio.WithFormat(seqio.FormatFASTQ))
	default:
		log.Fatalf("unknown output format %q, expected 'fasta' or 'fastq'", *format)
	}

	out, err := seqio.Create(ctx, outPath, writeOpts...)
	if err != nil {
		log.Fatalf("%s: %v", outPath, err)
	}
	n, err := convert(ctx, inPath, out, readOpts)
	if cerr := out.Close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("%s: %v", inPath, err)
	}
	log.Printf("wrote %d records to %s", n, outPath)
}

func convert(ctx context.Context, inPath string, out seqio.Writer, readOpts []seqio.Opt) (int, error) {
	if *interleaved {
		in, err := seqio.OpenPair(ctx, inPath, readOpts...)
		if err != nil {
			return 0, err
		}
		defer in.Close(ctx) // nolint: errcheck
		n := 0
		var pair seqio.Pair
		for in.Scan(&pair) {
			if err := out.WriteRecord(pair.R1); err != nil {
				return n, err
			}
			if err := out.WriteRecord(pair.R2); err != nil {
				return n, err
			}
			n += 2
		}
		return n, in.Err()
	}
	in, err := seqio.Open(ctx, inPath, readOpts...)
	if err != nil {
		return 0, err
	}
	defer in.Close(ctx) // nolint: errcheck
	n := 0
	var rec seq.Sequence
	for in.Scan(&rec) {
		if err := out.WriteRecord(rec); err != nil {
			return n, err
		}
		n++
	}
	return n, in.Err()
}
