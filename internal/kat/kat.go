// Package kat holds published known-answer vectors for the FIPS 202 functions
// and for legacy Keccak-256.
package kat

import (
	"encoding/hex"
	"strconv"
)

// Algorithm names, as accepted by fips202sum --algorithm.
const (
	SHA3_256  = "sha3-256"
	SHA3_512  = "sha3-512"
	SHAKE128  = "shake128"
	SHAKE256  = "shake256"
	Keccak256 = "keccak256"
)

// Vector is one known answer: Digest is the first len(Digest)/2 bytes of the
// algorithm's output on Message, in hex.
type Vector struct {
	Algorithm string
	Message   string
	Digest    string
}

// Input returns the message bytes.
func (v Vector) Input() []byte { return []byte(v.Message) }

// Want returns the expected output bytes.
func (v Vector) Want() []byte {
	b, err := hex.DecodeString(v.Digest)
	if err != nil {
		panic("kat: malformed digest for " + v.Algorithm + ": " + err.Error())
	}
	return b
}

// Name is a short label for test and report output.
func (v Vector) Name() string {
	return v.Algorithm + "/len=" + strconv.Itoa(len(v.Message))
}

// Vectors lists every known answer.
var Vectors = []Vector{
	{SHA3_256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{SHA3_512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6" +
		"15b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	{SHA3_512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e" +
		"10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	{SHAKE128, "", "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"},
	{SHAKE128, "abc", "5881092dd818bf5cf8a3ddb793fbcba74097d5c526a6d35f97b83351940f2cc8"},
	{SHAKE256, "", "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"},
	{SHAKE256, "abc", "483366601360a8771c6863080cc4114d8db44530f8f1e1ee4f94ea37e78b5739"},
	{Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	{Keccak256, "hello", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
}
