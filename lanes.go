package fips202

// The state is kept as 25 lanes and converted to and from bytes explicitly,
// lane i covering bytes 8i..8i+7 in little-endian order, whatever the host
// byte order is.

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v into the first 8 bytes of b in little-endian order.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// xorByte XORs b into byte pos of the state.
func xorByte(a *[25]uint64, pos int, b byte) {
	a[pos>>3] ^= uint64(b) << (8 * (pos & 7))
}

// xorIn XORs p into the state starting at byte offset pos.
// Whole lanes are handled 8 bytes at a time once pos is lane-aligned.
func xorIn(a *[25]uint64, pos int, p []byte) {
	for len(p) > 0 && pos&7 != 0 {
		xorByte(a, pos, p[0])
		p = p[1:]
		pos++
	}
	for len(p) >= 8 {
		a[pos>>3] ^= le64(p)
		p = p[8:]
		pos += 8
	}
	for i, b := range p {
		xorByte(a, pos+i, b)
	}
}

// copyOut copies len(out) bytes of the state, starting at byte offset pos,
// into out.
func copyOut(a *[25]uint64, pos int, out []byte) {
	for len(out) > 0 && pos&7 != 0 {
		out[0] = byte(a[pos>>3] >> (8 * (pos & 7)))
		out = out[1:]
		pos++
	}
	for len(out) >= 8 {
		putLE64(out, a[pos>>3])
		out = out[8:]
		pos += 8
	}
	for i := range out {
		out[i] = byte(a[(pos+i)>>3] >> (8 * ((pos + i) & 7)))
	}
}

// pad applies the domain separation byte at pos and the final bit of pad10*1
// at the top of the rate window. When pos == rate-1 both land in the same
// byte. This is the only finalization routine; streaming and one-shot
// absorption both go through it.
func pad(a *[25]uint64, pos, rate int, dsbyte byte) {
	xorByte(a, pos, dsbyte)
	xorByte(a, rate-1, 0x80)
}
