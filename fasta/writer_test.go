package fasta_test

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/seqio/fasta"
	"github.com/grailbio/seqio/seq"
	"github.com/grailbio/testutil"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	if err := w.Write("name", "CCATA"); err != nil {
		t.Fatal(err)
	}
	if err := w.Write("name2", "HELLO"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), ">name\nCCATA\n>name2\nHELLO\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterLineLength(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf, fasta.LineLength(3))
	if err := w.Write("name", "CCAT"); err != nil {
		t.Fatal(err)
	}
	if err := w.Write("name2", "TACCAG"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), ">name\nCCA\nT\n>name2\nTAC\nCAG\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	rec, err := seq.New("name", "CCATA", "!!!!!")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRecord(rec); err != nil {
		t.Fatal(err)
	}
	// Qualities have no FASTA representation and are dropped.
	if got, want := buf.String(), ">name\nCCATA\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCreate(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "out.fasta")

	ctx := vcontext.Background()
	w, err := fasta.Create(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write("name", "CCATA"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(ctx); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(ctx); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), ">name\nCCATA\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
