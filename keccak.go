// Package fips202 implements the Keccak-f[1600] permutation and the FIPS 202
// sponge functions built on it: the SHAKE128 and SHAKE256 extendable-output
// functions, SHA3-256 and SHA3-512, and legacy Keccak-256.
//
// The sponge is split by phase. An Absorber takes input; Finalize turns it
// into a Squeezer, which only produces output. Callers that hold the whole
// input use the one-shot helpers (Shake128AbsorbOnce, Sum256, ...) instead.
//
// Everything is pure Go, and the control flow depends only on input and
// output lengths.
package fips202

const (
	rate256 = 136
	rate512 = 72

	// Size256 is the SHA3-256 and Keccak-256 digest size in bytes.
	Size256 = 32
	// Size512 is the SHA3-512 digest size in bytes.
	Size512 = 64

	// DomainSHA3 is the SHA-3 domain separation byte.
	DomainSHA3 = 0x06
	// DomainKeccak is the pre-FIPS 202 Keccak padding byte, as
	// used by Ethereum's Keccak-256.
	DomainKeccak = 0x01
)

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [Size256]byte) {
	var a [25]uint64
	absorbOnce(&a, rate256, data, DomainSHA3)
	keccakF1600(&a)
	copyOut(&a, 0, digest[:])
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [Size512]byte) {
	var a [25]uint64
	absorbOnce(&a, rate512, data, DomainSHA3)
	keccakF1600(&a)
	copyOut(&a, 0, digest[:])
	return
}

// Keccak256 computes the legacy Keccak-256 hash of data. Zero heap allocations.
func Keccak256(data []byte) (digest [Size256]byte) {
	var a [25]uint64
	absorbOnce(&a, rate256, data, DomainKeccak)
	keccakF1600(&a)
	copyOut(&a, 0, digest[:])
	return
}

// Hasher is a streaming fixed-output hash implementing hash.Hash.
type Hasher struct {
	d    Absorber
	size int
}

// New256 returns a streaming SHA3-256 Hasher.
func New256() *Hasher {
	return &Hasher{d: Absorber{s: sponge{rate: rate256}, dsbyte: DomainSHA3}, size: Size256}
}

// New512 returns a streaming SHA3-512 Hasher.
func New512() *Hasher {
	return &Hasher{d: Absorber{s: sponge{rate: rate512}, dsbyte: DomainSHA3}, size: Size512}
}

// NewLegacyKeccak256 returns a streaming legacy Keccak-256 Hasher.
func NewLegacyKeccak256() *Hasher {
	return &Hasher{d: Absorber{s: sponge{rate: rate256}, dsbyte: DomainKeccak}, size: Size256}
}

// Write absorbs p into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.d.Absorb(p)
	return len(p), nil
}

// Sum appends the digest of the data written so far to b.
// Does not modify the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	dup := h.d
	sq := dup.Finalize()
	var digest [Size512]byte
	sq.s.squeeze(digest[:h.size])
	return append(b, digest[:h.size]...)
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() { h.d.Reset() }

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int { return h.d.s.rate }
