// Package multipack packs a little-endian bit sequence into BLS12-381
// scalar field elements, chunked to the field's bit capacity. It is used to
// feed fixed-size byte fields (such as a 32-byte nullifier) into a Groth16
// circuit's public input as a small, fixed number of scalars.
package multipack

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Capacity is ⌊log₂ r⌋ for the BLS12-381 scalar field modulus r: the
// largest number of bits guaranteed to pack losslessly into one element.
// Derived from the modulus at init time rather than hardcoded, so the
// constant documents its own derivation.
var Capacity = func() int {
	var z fr.Element
	return z.Modulus().BitLen() - 1
}()

// BytesToBitsLE expands bytes into bits in little-endian bit order: for
// byte v, bit (v>>k)&1 is emitted for k = 0..7, across bytes in input
// order.
func BytesToBitsLE(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for k := uint(0); k < 8; k++ {
			bits = append(bits, (b>>k)&1 == 1)
		}
	}
	return bits
}

// ComputeMultipacking partitions bits into consecutive chunks of Capacity
// bits (the last chunk may be shorter) and accumulates each chunk into one
// scalar field element, least-significant bit first.
func ComputeMultipacking(bits []bool) []fr.Element {
	var scalars []fr.Element

	for len(bits) > 0 {
		chunkLen := Capacity
		if chunkLen > len(bits) {
			chunkLen = len(bits)
		}
		chunk := bits[:chunkLen]
		bits = bits[chunkLen:]

		var acc, coeff fr.Element
		coeff.SetOne()
		for _, bit := range chunk {
			if bit {
				acc.Add(&acc, &coeff)
			}
			coeff.Double(&coeff)
		}
		scalars = append(scalars, acc)
	}

	return scalars
}
