// Package groth16proof decodes the 192-byte Groth16 proof wire format Sapling
// uses and wraps gnark's native (non-circuit) Groth16 verifier so callers
// never touch gnark's in-circuit types.
package groth16proof

import (
	bls12381codec "github.com/zecsap/sapling-verify/crypto/bls12381"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Proof is a decoded Groth16 proof over BLS12-381: A, C in G1, B in G2.
type Proof struct {
	A bls12381.G1Affine
	B bls12381.G2Affine
	C bls12381.G1Affine
}

// DecodeProof splits a 192-byte compressed proof into its three
// components, partitioned [0:48)=A, [48:144)=B, [144:192)=C — the exact
// slice bounds the original proof codec used. A failure decoding any
// component fails the whole proof.
func DecodeProof(data [192]byte) (Proof, error) {
	var out Proof

	var aBuf [48]byte
	copy(aBuf[:], data[0:48])
	a, err := bls12381codec.DecodeG1Compressed(aBuf)
	if err != nil {
		return out, err
	}

	var bBuf [96]byte
	copy(bBuf[:], data[48:144])
	b, err := bls12381codec.DecodeG2Compressed(bBuf)
	if err != nil {
		return out, err
	}

	var cBuf [48]byte
	copy(cBuf[:], data[144:192])
	cPoint, err := bls12381codec.DecodeG1Compressed(cBuf)
	if err != nil {
		return out, err
	}

	out.A, out.B, out.C = a, b, cPoint
	return out, nil
}
