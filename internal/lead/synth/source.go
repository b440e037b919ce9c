package synth

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// Source is the randomness a Synthesizer draws from. Implementations are
// not safe for concurrent use; give each request its own.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
func NewSource() Source {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic generator for reproducible runs.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// sourceReader adapts a Source to io.Reader so uuid generation follows the
// same (possibly seeded) stream as the rest of the record.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.IntN(256))
	}
	return len(p), nil
}

func pick(src Source, values []string) string {
	return values[src.IntN(len(values))]
}
