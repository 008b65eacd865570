package fips202

const (
	// Shake128Rate is the SHAKE128 rate, and SqueezeBlocks block size, in bytes.
	Shake128Rate = 168
	// Shake256Rate is the SHAKE256 rate, and SqueezeBlocks block size, in bytes.
	Shake256Rate = 136

	// DomainShake is the SHAKE domain separation byte.
	DomainShake = 0x1f
)

// NewShake128 returns an empty SHAKE128 Absorber.
func NewShake128() *Absorber {
	return &Absorber{s: sponge{rate: Shake128Rate}, dsbyte: DomainShake}
}

// NewShake256 returns an empty SHAKE256 Absorber.
func NewShake256() *Absorber {
	return &Absorber{s: sponge{rate: Shake256Rate}, dsbyte: DomainShake}
}

// Shake128AbsorbOnce absorbs all of in into a fresh SHAKE128 state and
// finalizes it.
func Shake128AbsorbOnce(in []byte) Squeezer {
	return absorbOnceSqueezer(Shake128Rate, DomainShake, in)
}

// Shake256AbsorbOnce absorbs all of in into a fresh SHAKE256 state and
// finalizes it.
func Shake256AbsorbOnce(in []byte) Squeezer {
	return absorbOnceSqueezer(Shake256Rate, DomainShake, in)
}

// ShakeSum128 writes len(out) bytes of SHAKE128(data) to out.
func ShakeSum128(out, data []byte) {
	sq := Shake128AbsorbOnce(data)
	sq.fill(out)
}

// ShakeSum256 writes len(out) bytes of SHAKE256(data) to out.
func ShakeSum256(out, data []byte) {
	sq := Shake256AbsorbOnce(data)
	sq.fill(out)
}

// fill squeezes as many whole blocks as fit in out, then the tail.
func (sq *Squeezer) fill(out []byte) {
	nblocks := len(out) / sq.s.rate
	sq.s.squeezeBlocks(out, nblocks)
	sq.s.squeeze(out[nblocks*sq.s.rate:])
}
