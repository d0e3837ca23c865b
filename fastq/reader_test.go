package fastq_test

import (
	"strings"
	"testing"

	"github.com/grailbio/seqio/fastq"
	"github.com/grailbio/seqio/seq"
)

const simpleFastq = "@first_sequence\nSEQUENCE1\n+\n:6;;8<=:<\n@second_sequence\nSEQUENCE2\n+\n83<??:(61\n"

var simpleReads = []seq.Sequence{
	{Name: "first_sequence", Seq: "SEQUENCE1", Qual: ":6;;8<=:<"},
	{Name: "second_sequence", Seq: "SEQUENCE2", Qual: "83<??:(61"},
}

func readAll(t *testing.T, r *fastq.Reader) []seq.Sequence {
	t.Helper()
	var recs []seq.Sequence
	var rec seq.Sequence
	for r.Scan(&rec) {
		recs = append(recs, rec)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	return recs
}

func scanErr(t *testing.T, in string, opts ...fastq.ReaderOpt) error {
	t.Helper()
	r := fastq.NewReader(strings.NewReader(in), opts...)
	var rec seq.Sequence
	for r.Scan(&rec) {
	}
	return r.Err()
}

func TestReader(t *testing.T) {
	got := readAll(t, fastq.NewReader(strings.NewReader(simpleFastq)))
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for i, want := range simpleReads {
		if got[i] != want {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want)
		}
	}
}

func TestReaderDOSLineEndings(t *testing.T) {
	dos := strings.Replace(simpleFastq, "\n", "\r\n", -1)
	gotDos := readAll(t, fastq.NewReader(strings.NewReader(dos)))
	gotUnix := readAll(t, fastq.NewReader(strings.NewReader(simpleFastq)))
	if len(gotDos) != len(gotUnix) {
		t.Fatalf("got %d and %d records", len(gotDos), len(gotUnix))
	}
	for i := range gotUnix {
		if gotDos[i] != gotUnix[i] {
			t.Errorf("record %d: %+v != %+v", i, gotDos[i], gotUnix[i])
		}
	}
}

func TestReaderMissingAt(t *testing.T) {
	if err := scanErr(t, "name\nACGT\n+\n!!!!\n"); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestReaderMissingPlus(t *testing.T) {
	if err := scanErr(t, "@name\nACGT\nACGT\n!!!!\n"); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestReaderIncomplete(t *testing.T) {
	if err := scanErr(t, "@name\nACGT+\n"); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestReaderLengthMismatch(t *testing.T) {
	if err := scanErr(t, "@name\nACGT\n+\n!!!\n"); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestReaderColorspace(t *testing.T) {
	got := readAll(t, fastq.NewReader(strings.NewReader("@r1\nT0123\n+\n!!!!\n"), fastq.Colorspace()))
	if len(got) != 1 || got[0].Seq != "T0123" || got[0].Qual != "!!!!" {
		t.Errorf("got %+v", got)
	}

	if err := scanErr(t, "@r1\nK0123\n+\n!!!!\n", fastq.Colorspace()); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
	// In colorspace the quality string excludes the primer, so a
	// same-length quality line is malformed.
	if err := scanErr(t, "@r1\nT0123\n+\n!!!!!\n", fastq.Colorspace()); !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}
