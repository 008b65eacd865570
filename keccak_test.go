package fips202

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"
)

var _ hash.Hash = (*Hasher)(nil)

func TestKeccak256Empty(t *testing.T) {
	got := Keccak256(nil)
	// Known Keccak-256 of empty string.
	want, _ := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(nil) = %x, want %x", got, want)
	}
}

func TestKeccak256Hello(t *testing.T) {
	got := Keccak256([]byte("hello"))
	want, _ := hex.DecodeString("1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(hello) = %x, want %x", got, want)
	}
}

func TestSum256Empty(t *testing.T) {
	got := Sum256(nil)
	want, _ := hex.DecodeString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(nil) = %x, want %x", got, want)
	}
}

func TestKeccak256LargeData(t *testing.T) {
	// Test with data larger than one block (rate=136 bytes).
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	got := Keccak256(data)
	// Verify against streaming Hasher.
	h := NewLegacyKeccak256()
	h.Write(data)
	if want := h.Sum(nil); !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256 vs Hasher mismatch: %x vs %x", got, want)
	}
}

func TestHasherStreaming(t *testing.T) {
	data := []byte("hello world, this is a longer test string for streaming keccak")
	// All at once.
	want := Sum256(data)
	// Byte by byte.
	h := New256()
	for _, b := range data {
		h.Write([]byte{b})
	}
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("streaming byte-by-byte: %x vs %x", got, want)
	}
}

func TestHasherMultiBlock(t *testing.T) {
	// Test with exactly 2 blocks + partial.
	data := make([]byte, rate512*2+50)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Sum512(data)
	// Write in chunks of 37 (not aligned to rate).
	h := New512()
	for i := 0; i < len(data); i += 37 {
		end := min(i+37, len(data))
		h.Write(data[i:end])
	}
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("multi-block streaming: %x vs %x", got, want)
	}
}

func TestHasherSumKeepsState(t *testing.T) {
	h := New256()
	h.Write([]byte("hel"))
	first := h.Sum([]byte("prefix"))
	if !bytes.HasPrefix(first, []byte("prefix")) || len(first) != len("prefix")+Size256 {
		t.Fatalf("Sum did not append: %x", first)
	}
	h.Write([]byte("lo"))
	want := Sum256([]byte("hello"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("Sum disturbed the running state: %x vs %x", got, want)
	}

	h.Reset()
	want = Sum256(nil)
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("Reset: %x vs %x", got, want)
	}
	if h.Size() != Size256 || h.BlockSize() != rate256 {
		t.Fatalf("Size/BlockSize = %d/%d", h.Size(), h.BlockSize())
	}
}

func FuzzSum(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add([]byte("hello world, this is a longer test string for streaming keccak"))
	f.Add(make([]byte, rate512))
	f.Add(make([]byte, rate256))
	f.Add(make([]byte, rate256+1))
	f.Add(make([]byte, Shake128Rate-1))
	f.Add(make([]byte, rate256*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Reference: x/crypto.
		ref := sha3.NewLegacyKeccak256()
		ref.Write(data)
		want := ref.Sum(nil)

		got := Keccak256(data)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("Keccak256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		// Streaming Hasher, byte-by-byte.
		h := NewLegacyKeccak256()
		for _, b := range data {
			h.Write([]byte{b})
		}
		if gotS := h.Sum(nil); !bytes.Equal(gotS, want) {
			t.Fatalf("Hasher byte-by-byte mismatch for len=%d\ngot:  %x\nwant: %x", len(data), gotS, want)
		}

		if got, want := Sum256(data), sha3.Sum256(data); got != want {
			t.Fatalf("Sum256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
		if got, want := Sum512(data), sha3.Sum512(data); got != want {
			t.Fatalf("Sum512 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		for _, outlen := range []int{0, 1, 32, Shake256Rate, Shake128Rate + 7, 3 * Shake128Rate} {
			got := make([]byte, outlen)
			want := make([]byte, outlen)

			ShakeSum128(got, data)
			sha3.ShakeSum128(want, data)
			if !bytes.Equal(got, want) {
				t.Fatalf("ShakeSum128 mismatch for len=%d outlen=%d\ngot:  %x\nwant: %x", len(data), outlen, got, want)
			}

			ShakeSum256(got, data)
			sha3.ShakeSum256(want, data)
			if !bytes.Equal(got, want) {
				t.Fatalf("ShakeSum256 mismatch for len=%d outlen=%d\ngot:  %x\nwant: %x", len(data), outlen, got, want)
			}
		}
	})
}

func BenchmarkKeccak256_500K(b *testing.B) {
	data := make([]byte, 500*1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Keccak256(data)
	}
}

// Comparison benchmarks: fips202 vs golang.org/x/crypto/sha3.
var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func benchData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Sum256(data)
			}
		})
	}
}

func BenchmarkXCryptoSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sha3.Sum256(data)
			}
		})
	}
}

func BenchmarkHasher(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := New256()
			var digest [Size256]byte
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(digest[:0])
			}
		})
	}
}

func BenchmarkShake128SqueezeBlocks(b *testing.B) {
	var seed [SeedBytes]byte
	out := make([]byte, 5*Stream128BlockBytes)
	b.SetBytes(int64(len(out)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sq := Stream128(&seed, 0x0102)
		sq.SqueezeBlocks(out, 5)
	}
}

func BenchmarkXCryptoShake128Read(b *testing.B) {
	var seed [SeedBytes + 2]byte
	out := make([]byte, 5*Shake128Rate)
	b.SetBytes(int64(len(out)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := sha3.NewShake128()
		h.Write(seed[:])
		h.Read(out)
	}
}
