package multipack

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBytesToBitsLEOrder(t *testing.T) {
	c := qt.New(t)
	bits := BytesToBitsLE([]byte{0b0000_0001, 0b0000_0010})
	c.Assert(bits, qt.HasLen, 16)
	c.Assert(bits[0], qt.IsTrue)  // bit 0 of first byte
	for i := 1; i < 8; i++ {
		c.Assert(bits[i], qt.IsFalse)
	}
	c.Assert(bits[9], qt.IsTrue) // bit 1 of second byte
}

func TestComputeMultipackingRoundTrip(t *testing.T) {
	c := qt.New(t)
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	bits := BytesToBitsLE(data)
	scalars := ComputeMultipacking(bits)

	// Reconstruct Σ scalars[i] · 2^(i·Capacity) and compare against the
	// integer whose little-endian bit expansion is bits.
	total := new(big.Int)
	shift := new(big.Int)
	for i, s := range scalars {
		var bi big.Int
		s.BigInt(&bi)
		shift.Lsh(big.NewInt(1), uint(i*Capacity))
		total.Add(total, new(big.Int).Mul(&bi, shift))
	}

	expected := new(big.Int)
	for i, bit := range bits {
		if bit {
			expected.SetBit(expected, i, 1)
		}
	}
	c.Assert(total.Cmp(expected), qt.Equals, 0)
}

func TestNullifierPacksToTwoScalars(t *testing.T) {
	c := qt.New(t)
	nullifier := make([]byte, 32)
	for i := range nullifier {
		nullifier[i] = byte(i)
	}
	bits := BytesToBitsLE(nullifier)
	c.Assert(bits, qt.HasLen, 256)
	scalars := ComputeMultipacking(bits)
	c.Assert(scalars, qt.HasLen, 2)
}

func TestCapacityExceeds128Bits(t *testing.T) {
	c := qt.New(t)
	c.Assert(Capacity > 128, qt.IsTrue)
}
