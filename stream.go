package fips202

// Seeded streams for lattice samplers. A sampler initializes a stream from a
// seed and a 16-bit nonce, then pulls whole blocks with SqueezeBlocks and
// rejection-samples coefficients out of them.

const (
	// SeedBytes is the size of a Stream128 seed.
	SeedBytes = 32
	// CRHBytes is the size of a Stream256 seed.
	CRHBytes = 64

	// Stream128BlockBytes is the block size of a Stream128 squeezer.
	Stream128BlockBytes = Shake128Rate
	// Stream256BlockBytes is the block size of a Stream256 squeezer.
	Stream256BlockBytes = Shake256Rate
)

// Stream128 returns SHAKE128(seed || nonce), the nonce encoded little-endian.
func Stream128(seed *[SeedBytes]byte, nonce uint16) Squeezer {
	d := Absorber{s: sponge{rate: Shake128Rate}, dsbyte: DomainShake}
	return streamInit(&d, seed[:], nonce)
}

// Stream256 returns SHAKE256(seed || nonce), the nonce encoded little-endian.
func Stream256(seed *[CRHBytes]byte, nonce uint16) Squeezer {
	d := Absorber{s: sponge{rate: Shake256Rate}, dsbyte: DomainShake}
	return streamInit(&d, seed[:], nonce)
}

func streamInit(d *Absorber, seed []byte, nonce uint16) Squeezer {
	t := [2]byte{byte(nonce), byte(nonce >> 8)}
	d.s.absorb(seed)
	d.s.absorb(t[:])
	return d.Finalize()
}
