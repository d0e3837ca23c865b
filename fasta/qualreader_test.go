package fasta_test

import (
	"strings"
	"testing"

	"github.com/grailbio/seqio/fasta"
	"github.com/grailbio/seqio/seq"
)

func qualScanErr(t *testing.T, fastaIn, qualIn string) error {
	t.Helper()
	r := fasta.NewQualReader(strings.NewReader(fastaIn), strings.NewReader(qualIn))
	var rec seq.Sequence
	for r.Scan(&rec) {
	}
	return r.Err()
}

func TestQualReader(t *testing.T) {
	r := fasta.NewQualReader(
		strings.NewReader(">name\nACG\n>name2\nTTTT\n"),
		strings.NewReader(">name\n3 5 7\n>name2\n10 11\n12 13\n"))
	var got []seq.Sequence
	var rec seq.Sequence
	for r.Scan(&rec) {
		got = append(got, rec)
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	want := []seq.Sequence{
		{Name: "name", Seq: "ACG", Qual: "$&("},
		{Name: "name2", Seq: "TTTT", Qual: "+,-."},
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestQualReaderNameMismatch(t *testing.T) {
	err := qualScanErr(t, ">name\nACG", ">nome\n3 5 7")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestQualReaderInvalidValue(t *testing.T) {
	err := qualScanErr(t, ">name\nACG", ">name\n3 xx 7")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestQualReaderOutOfRange(t *testing.T) {
	err := qualScanErr(t, ">name\nACG", ">name\n3 100 7")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestQualReaderLengthMismatch(t *testing.T) {
	err := qualScanErr(t, ">name\nACGT", ">name\n3 5 7")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}

func TestQualReaderUnevenRecordCounts(t *testing.T) {
	err := qualScanErr(t, ">name\nACG\n>name2\nTT\n", ">name\n3 5 7\n")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
	err = qualScanErr(t, ">name\nACG\n", ">name\n3 5 7\n>name2\n1 2\n")
	if !seq.IsFormatError(err) {
		t.Errorf("got %v, want a FormatError", err)
	}
}
