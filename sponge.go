package fips202

import (
	"github.com/pkg/errors"
)

// stateSize is the Keccak-f[1600] state width in bytes.
const stateSize = 200

var (
	// ErrInvalidRate is returned for a rate outside [1, 200] bytes.
	ErrInvalidRate = errors.New("fips202: invalid sponge rate")
	// ErrInvalidDomain is returned for a zero domain separation byte, which
	// would lose the first bit of the padding.
	ErrInvalidDomain = errors.New("fips202: invalid domain separation byte")
)

// sponge is the Keccak state plus a cursor into the current rate window.
type sponge struct {
	a    [25]uint64
	pos  int
	rate int
}

func (s *sponge) mustInit(op string) {
	if s.rate == 0 {
		panic("fips202: " + op + " on an uninitialized sponge")
	}
}

// absorb XORs p into the state, permuting each time the rate window fills.
func (s *sponge) absorb(p []byte) {
	for s.pos+len(p) >= s.rate {
		n := s.rate - s.pos
		xorIn(&s.a, s.pos, p[:n])
		p = p[n:]
		keccakF1600(&s.a)
		s.pos = 0
	}
	xorIn(&s.a, s.pos, p)
	s.pos += len(p)
}

// finalize pads the absorbed message and leaves the cursor at rate so that
// the first squeeze permutes.
func (s *sponge) finalize(dsbyte byte) {
	pad(&s.a, s.pos, s.rate, dsbyte)
	s.pos = s.rate
}

func (s *sponge) squeeze(out []byte) {
	for len(out) > 0 {
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
		n := min(len(out), s.rate-s.pos)
		copyOut(&s.a, s.pos, out[:n])
		out = out[n:]
		s.pos += n
	}
}

// squeezeBlocks writes nblocks whole rate-sized blocks to out, permuting
// before each one. Unread bytes of a partially squeezed block are skipped.
func (s *sponge) squeezeBlocks(out []byte, nblocks int) {
	_ = out[:nblocks*s.rate]
	for ; nblocks > 0; nblocks-- {
		keccakF1600(&s.a)
		copyOut(&s.a, 0, out[:s.rate])
		out = out[s.rate:]
		s.pos = s.rate
	}
}

// absorbOnce zeroes a, absorbs the whole of p and pads it, in one pass.
func absorbOnce(a *[25]uint64, rate int, p []byte, dsbyte byte) {
	*a = [25]uint64{}
	for len(p) >= rate {
		xorIn(a, 0, p[:rate])
		keccakF1600(a)
		p = p[rate:]
	}
	xorIn(a, 0, p)
	pad(a, len(p), rate, dsbyte)
}

func checkParams(rate int, dsbyte byte) error {
	if rate <= 0 || rate > stateSize {
		return errors.Wrapf(ErrInvalidRate, "rate %d", rate)
	}
	if dsbyte == 0 {
		return errors.WithStack(ErrInvalidDomain)
	}
	return nil
}

// Absorber is a sponge that is still taking input. Its only way out of the
// absorbing phase is Finalize, which hands the state to a Squeezer.
//
// The zero Absorber is not usable; obtain one from NewShake128, NewShake256
// or NewSponge.
type Absorber struct {
	s      sponge
	dsbyte byte
}

// NewSponge returns an empty Absorber for Keccak with the given rate in bytes
// and domain separation byte. The domain byte carries the first bit of the
// pad10*1 padding, as 0x1f for SHAKE and 0x06 for SHA-3 do.
func NewSponge(rate int, dsbyte byte) (*Absorber, error) {
	if err := checkParams(rate, dsbyte); err != nil {
		return nil, err
	}
	return &Absorber{s: sponge{rate: rate}, dsbyte: dsbyte}, nil
}

// Reset returns the Absorber to the empty state.
func (d *Absorber) Reset() {
	d.s.mustInit("reset")
	d.s.a = [25]uint64{}
	d.s.pos = 0
}

// Absorb feeds p into the sponge. Absorbing several chunks is equivalent to
// absorbing their concatenation.
func (d *Absorber) Absorb(p []byte) {
	d.s.mustInit("absorb")
	d.s.absorb(p)
}

// Write absorbs p. It never returns an error.
func (d *Absorber) Write(p []byte) (int, error) {
	d.Absorb(p)
	return len(p), nil
}

// Finalize pads the message and returns a Squeezer positioned at the start
// of the output stream. The Absorber is reset, so input written after
// Finalize begins a new message.
func (d *Absorber) Finalize() Squeezer {
	d.s.mustInit("finalize")
	sq := Squeezer{s: d.s}
	sq.s.finalize(d.dsbyte)
	d.Reset()
	return sq
}

// Rate returns the sponge rate in bytes.
func (d *Absorber) Rate() int { return d.s.rate }

// Clone returns an independent copy of the Absorber.
func (d *Absorber) Clone() *Absorber {
	dup := *d
	return &dup
}

// Squeezer is a finalized sponge producing output. Successive calls continue
// the same output stream; there is no way to rewind it.
//
// The zero Squeezer is not usable; obtain one from Absorber.Finalize or one
// of the one-shot absorb functions.
type Squeezer struct {
	s sponge
}

// AbsorbOnce absorbs and pads the whole of in for a sponge with the given
// rate and domain byte. The result is the same as NewSponge, Absorb(in),
// Finalize.
func AbsorbOnce(rate int, dsbyte byte, in []byte) (Squeezer, error) {
	if err := checkParams(rate, dsbyte); err != nil {
		return Squeezer{}, err
	}
	return absorbOnceSqueezer(rate, dsbyte, in), nil
}

func absorbOnceSqueezer(rate int, dsbyte byte, in []byte) Squeezer {
	sq := Squeezer{s: sponge{rate: rate, pos: rate}}
	absorbOnce(&sq.s.a, rate, in, dsbyte)
	return sq
}

// Squeeze fills out with the next len(out) bytes of output.
func (sq *Squeezer) Squeeze(out []byte) {
	sq.s.mustInit("squeeze")
	sq.s.squeeze(out)
}

// Read squeezes len(out) bytes. It never returns an error.
func (sq *Squeezer) Read(out []byte) (int, error) {
	sq.Squeeze(out)
	return len(out), nil
}

// SqueezeBlocks writes nblocks whole blocks of Rate bytes to out, which must
// hold at least nblocks*Rate bytes. Output resumes at the next block
// boundary: on a fresh Squeezer, SqueezeBlocks(out, k) followed by
// Squeeze(tail) yields the same bytes as a single Squeeze of the combined
// length.
func (sq *Squeezer) SqueezeBlocks(out []byte, nblocks int) {
	sq.s.mustInit("squeeze")
	sq.s.squeezeBlocks(out, nblocks)
}

// Rate returns the sponge rate in bytes, which is also the SqueezeBlocks
// block size.
func (sq *Squeezer) Rate() int { return sq.s.rate }

// Clone returns an independent copy of the Squeezer. Both copies produce the
// same remaining output.
func (sq *Squeezer) Clone() *Squeezer {
	dup := *sq
	return &dup
}
