package fips202

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// XOF is an extendable-output function behind the io.Writer/io.Reader pair.
// The first Read finalizes the input; writing after that panics.
type XOF interface {
	// Write absorbs more data. It panics if called after Read.
	io.Writer

	// Read squeezes more output. It never returns an error.
	io.Reader

	// Clone returns a copy of the XOF in its current state.
	Clone() XOF

	// Reset restores the XOF to its initial state and discards all input.
	Reset()
}

// ID names an extendable-output function.
type ID uint

const (
	SHAKE128 ID = iota + 1
	SHAKE256
)

// ErrUnknownXOF is returned by ParseID for an unrecognized name.
var ErrUnknownXOF = errors.New("fips202: unknown XOF")

// ParseID returns the ID for a name such as "shake128" or "SHAKE-256".
func ParseID(name string) (ID, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "shake128":
		return SHAKE128, nil
	case "shake256":
		return SHAKE256, nil
	}
	return 0, errors.Wrapf(ErrUnknownXOF, "%q", name)
}

func (x ID) String() string {
	switch x {
	case SHAKE128:
		return "SHAKE128"
	case SHAKE256:
		return "SHAKE256"
	}
	return "ID(" + strconv.Itoa(int(x)) + ")"
}

// New returns a fresh instance of the XOF. It panics for an unknown ID.
func (x ID) New() XOF {
	switch x {
	case SHAKE128:
		return &shake{abs: *NewShake128()}
	case SHAKE256:
		return &shake{abs: *NewShake256()}
	}
	panic("fips202: requested unavailable XOF function " + x.String())
}

// shake adapts the phase-typed Absorber/Squeezer pair to XOF.
type shake struct {
	abs       Absorber
	sq        Squeezer
	squeezing bool
}

func (s *shake) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("fips202: write to XOF after read")
	}
	return s.abs.Write(p)
}

func (s *shake) Read(out []byte) (int, error) {
	if !s.squeezing {
		s.sq = s.abs.Finalize()
		s.squeezing = true
	}
	return s.sq.Read(out)
}

func (s *shake) Clone() XOF {
	dup := *s
	return &dup
}

func (s *shake) Reset() {
	s.abs.Reset()
	s.sq = Squeezer{}
	s.squeezing = false
}

