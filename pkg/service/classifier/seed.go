package classifier

// SampleSize is the number of leading file bytes folded into the seed
const SampleSize = 20

// FileInput describes an uploaded file by metadata only. Sample holds up to
// the first bytes of the file content and may be nil when the bytes could
// not be read; the seed is then derived from the remaining terms.
type FileInput struct {
	Name           string
	SizeBytes      int64
	LastModifiedMs int64
	Sample         []byte
}

// DeriveSeed converts file metadata into a deterministic integer seed:
// the sum of the rune values of the name, plus the byte size mod 100, plus
// the last-modified epoch second mod 100, plus the sum of up to the first
// SampleSize content bytes. The raw sum is unbounded; callers reduce it
// with mod 100 downstream. Identical inputs always yield the same seed.
func DeriveSeed(in FileInput) int {
	seed := 0
	for _, r := range in.Name {
		seed += int(r)
	}

	seed += int(in.SizeBytes % 100)
	seed += int((in.LastModifiedMs / 1000) % 100)

	sample := in.Sample
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	for _, b := range sample {
		seed += int(b)
	}

	return seed
}
