package sapling

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/zecsap/sapling-verify/types"
)

// fixedBytes copies b into an N-byte array, rejecting any length other
// than N. Every Sapling wire field has a fixed size; a short or long field
// is malformed, not merely padded.
func fixedBytes(b types.HexBytes, n int) (out []byte, err error) {
	if len(b) != n {
		return nil, ErrReject
	}
	out = make([]byte, n)
	copy(out, b)
	return out, nil
}

func fixed32(b types.HexBytes) (out [32]byte, err error) {
	raw, err := fixedBytes(b, 32)
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

func fixed64(b types.HexBytes) (out [64]byte, err error) {
	raw, err := fixedBytes(b, 64)
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

func fixed192(b types.HexBytes) (out [192]byte, err error) {
	raw, err := fixedBytes(b, 192)
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

// setBaseFieldLE decodes a 32-byte little-endian JubJub base-field element,
// matching the original's BaseField::read. Unlike the BLS12-381 Fq points
// decoded in crypto/bls12381, anchors and note commitments are wire-encoded
// little-endian, so the bytes are reversed before the canonical (big-endian)
// setter.
func setBaseFieldLE(e *fr.Element, data [32]byte) error {
	var reversed [32]byte
	for i, b := range data {
		reversed[31-i] = b
	}
	return e.SetBytesCanonical(reversed[:])
}
