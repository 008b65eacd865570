package fips202

import "math/bits"

// rounds is the number of rounds of Keccak-f[1600].
const rounds = 24

// roundConstants are the ι step constants, indexed by round.
var roundConstants = [rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rhoOffsets[i] is the ρ rotation applied to the lane that π moves into
// piLanes[i]. Walking the 24 non-origin lanes in this order lets ρ and π run
// as a single in-place cycle starting from lane 1.
var rhoOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// KeccakF1600 applies the Keccak-f[1600] permutation to a, where lane (x, y)
// is a[x+5*y].
func KeccakF1600(a *[25]uint64) {
	keccakF1600(a)
}

func keccakF1600(a *[25]uint64) {
	var c0, c1, c2, c3, c4, d, t uint64

	for round := 0; round < rounds; round++ {
		// θ
		c0 = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c1 = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c2 = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c3 = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c4 = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d = c4 ^ bits.RotateLeft64(c1, 1)
		a[0] ^= d
		a[5] ^= d
		a[10] ^= d
		a[15] ^= d
		a[20] ^= d

		d = c0 ^ bits.RotateLeft64(c2, 1)
		a[1] ^= d
		a[6] ^= d
		a[11] ^= d
		a[16] ^= d
		a[21] ^= d

		d = c1 ^ bits.RotateLeft64(c3, 1)
		a[2] ^= d
		a[7] ^= d
		a[12] ^= d
		a[17] ^= d
		a[22] ^= d

		d = c2 ^ bits.RotateLeft64(c4, 1)
		a[3] ^= d
		a[8] ^= d
		a[13] ^= d
		a[18] ^= d
		a[23] ^= d

		d = c3 ^ bits.RotateLeft64(c0, 1)
		a[4] ^= d
		a[9] ^= d
		a[14] ^= d
		a[19] ^= d
		a[24] ^= d

		// ρ and π
		t = a[1]
		for i, j := range piLanes {
			c0 = a[j]
			a[j] = bits.RotateLeft64(t, rhoOffsets[i])
			t = c0
		}

		// χ, one row at a time
		for y := 0; y < 25; y += 5 {
			c0, c1, c2, c3, c4 = a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y] = c0 ^ (^c1 & c2)
			a[y+1] = c1 ^ (^c2 & c3)
			a[y+2] = c2 ^ (^c3 & c4)
			a[y+3] = c3 ^ (^c4 & c0)
			a[y+4] = c4 ^ (^c0 & c1)
		}

		// ι
		a[0] ^= roundConstants[round]
	}
}
