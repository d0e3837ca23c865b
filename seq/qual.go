package seq

// Phred+33 quality encoding: score q is stored as the ASCII character
// q+33.  This is the fixed mapping used when pairing a FASTA file with
// its companion quality file and when emitting FASTQ output.
const (
	qualOffset = 33
	qualMax    = 93 // highest score representable as a printable character
)

// EncodeQuals encodes numeric quality scores as a Phred+33 string.
// Scores outside [0, 93] are a *FormatError rather than being clamped.
func EncodeQuals(scores []int) (string, error) {
	b := make([]byte, len(scores))
	for i, q := range scores {
		if q < 0 || q > qualMax {
			return "", FormatErrorf("quality value %d out of range [0, %d]", q, qualMax)
		}
		b[i] = byte(q + qualOffset)
	}
	return string(b), nil
}

// DecodeQuals decodes a Phred+33 quality string into numeric scores.
func DecodeQuals(qual string) []int {
	scores := make([]int, len(qual))
	for i := 0; i < len(qual); i++ {
		scores[i] = int(qual[i]) - qualOffset
	}
	return scores
}
