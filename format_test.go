package seqio_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/grailbio/seqio"
	"github.com/grailbio/seqio/seq"
	"github.com/grailbio/testutil/expect"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want seqio.Format
	}{
		{"reads.fasta", seqio.FormatFASTA},
		{"reads.fa", seqio.FormatFASTA},
		{"contigs.fna", seqio.FormatFASTA},
		{"reads.csfasta", seqio.FormatFASTA},
		{"reads.fastq", seqio.FormatFASTQ},
		{"reads.fq", seqio.FormatFASTQ},
		{"reads.FASTQ", seqio.FormatFASTQ},
		{"reads.fastq.gz", seqio.FormatFASTQ},
		{"/some/dir/reads.fasta.gz", seqio.FormatFASTA},
		{"reads.txt", seqio.FormatUnknown},
		{"reads", seqio.FormatUnknown},
		{"reads.gz", seqio.FormatUnknown},
	}
	for _, tt := range tests {
		expect.EQ(t, seqio.DetectFormat(tt.path), tt.want)
	}
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		in   string
		want seqio.Format
	}{
		{">seq1\nACGT\n", seqio.FormatFASTA},
		{"@read1\nACGT\n+\n!!!!\n", seqio.FormatFASTQ},
		{"\n\t \n>seq1\nACGT\n", seqio.FormatFASTA},
	}
	for _, tt := range tests {
		got, err := seqio.SniffFormat(bufio.NewReader(strings.NewReader(tt.in)))
		expect.NoError(t, err)
		expect.EQ(t, got, tt.want)
	}

	for _, in := range []string{"", "   \n", "unexpected\n"} {
		_, err := seqio.SniffFormat(bufio.NewReader(strings.NewReader(in)))
		expect.True(t, seq.IsFormatError(err))
	}
}

func TestSniffDoesNotConsume(t *testing.T) {
	br := bufio.NewReader(strings.NewReader(">seq1\nACGT\n"))
	_, err := seqio.SniffFormat(br)
	expect.NoError(t, err)
	line, err := br.ReadString('\n')
	expect.NoError(t, err)
	expect.EQ(t, line, ">seq1\n")
}
