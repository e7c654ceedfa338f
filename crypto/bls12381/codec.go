// Package bls12381 decodes the Zcash-style tagged wire encodings of
// BLS12-381 G1 and G2 affine points into gnark-crypto's native point types.
//
// The encodings follow the ZIP-216 / IETF BLS convention: a big-endian field
// element payload with three flag bits packed into the most significant bits
// of the first byte (compressed, infinity, sort). See splitFlags.
package bls12381

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ErrDecode is returned, unwrapped, for every way a point encoding can be
// rejected: bad tag bits, a non-canonical field element, a non-residue under
// square-root recovery, an off-curve point, or a point outside the
// prime-order subgroup. Callers above this package never need to
// distinguish among these, and the returned error does not say which one
// fired.
var ErrDecode = errors.New("bls12381: invalid point encoding")

const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSort       = 0x20
	flagMask       = 0xe0
)

// splitFlags reads the three flag bits out of the first byte of an encoded
// point and returns them alongside the byte with those bits cleared.
func splitFlags(b byte) (compressed, infinity, sort bool, masked byte) {
	compressed = b&flagCompressed != 0
	infinity = b&flagInfinity != 0
	sort = b&flagSort != 0
	masked = b &^ flagMask
	return
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// readFq decodes a 48-byte big-endian payload (with the flag bits already
// masked out of byte 0) into a canonical base-field element, rejecting
// values that are not fully reduced mod the BLS12-381 base field modulus.
func readFq(payload [48]byte) (fp.Element, error) {
	var z fp.Element
	if err := z.SetBytesCanonical(payload[:]); err != nil {
		return z, ErrDecode
	}
	return z, nil
}

// b2 is the BLS12-381 G2 twist constant, 4(1+i) in Fq2.
func b2() bls12381.E2 {
	var four fp.Element
	four.SetUint64(4)
	return bls12381.E2{A0: four, A1: four}
}

// fqLess implements the field's canonical lexicographic ordering used for
// the sort-flag tie-break: numeric comparison of the canonical residue.
func fqLess(a, b fp.Element) bool {
	var ba, bb big.Int
	a.BigInt(&ba)
	b.BigInt(&bb)
	return ba.Cmp(&bb) < 0
}

// fq2Less orders Fq2 elements by comparing the c1 (non-trivial) component
// first, falling back to c0 — the same precedence the wire encoding gives
// them (x_c1 precedes x_c0).
func fq2Less(a, b bls12381.E2) bool {
	if !a.A1.Equal(&b.A1) {
		return fqLess(a.A1, b.A1)
	}
	return fqLess(a.A0, b.A0)
}

// recoverG1Y computes y from x on the G1 curve y² = x³ + 4, choosing the
// root selected by sort per the XOR tie-break rule.
func recoverG1Y(x fp.Element, sort bool) (fp.Element, error) {
	var x3b, y0, y1, four fp.Element
	four.SetUint64(4)
	x3b.Square(&x)
	x3b.Mul(&x3b, &x)
	x3b.Add(&x3b, &four)

	if y0.Sqrt(&x3b) == nil {
		return y0, ErrDecode
	}
	y1.Neg(&y0)
	if fqLess(y0, y1) != sort {
		return y0, nil
	}
	return y1, nil
}

// recoverG2Y computes y from x on the G2 (twist) curve y² = x³ + 4(1+i).
func recoverG2Y(x bls12381.E2, sort bool) (bls12381.E2, error) {
	var x3, y0, y1 bls12381.E2
	x3.Square(&x)
	x3.Mul(&x3, &x)
	x3.Add(&x3, b2Const())

	if y0.Sqrt(&x3) == nil {
		return y0, ErrDecode
	}
	y1.Neg(&y0)
	if fq2Less(y0, y1) != sort {
		return y0, nil
	}
	return y1, nil
}

func b2Const() *bls12381.E2 {
	v := b2()
	return &v
}

// DecodeG1Uncompressed decodes a 96-byte uncompressed G1 point: the
// compressed flag must be clear, the sort flag must be clear, and an
// infinity-flagged encoding must be all-zero after masking.
func DecodeG1Uncompressed(data [96]byte) (bls12381.G1Affine, error) {
	var out bls12381.G1Affine
	compressed, infinity, sort, b0 := splitFlags(data[0])
	if compressed || sort {
		return out, ErrDecode
	}
	data[0] = b0
	if infinity {
		if !allZero(data[:]) {
			return out, ErrDecode
		}
		return out, nil // identity
	}

	var xb, yb [48]byte
	copy(xb[:], data[0:48])
	copy(yb[:], data[48:96])
	x, err := readFq(xb)
	if err != nil {
		return out, err
	}
	y, err := readFq(yb)
	if err != nil {
		return out, err
	}
	out.X, out.Y = x, y
	if !out.IsOnCurve() || !out.IsInSubGroup() {
		return bls12381.G1Affine{}, ErrDecode
	}
	return out, nil
}

// DecodeG2Uncompressed decodes a 192-byte uncompressed G2 point: four Fq
// elements in order x_c1, x_c0, y_c1, y_c0.
func DecodeG2Uncompressed(data [192]byte) (bls12381.G2Affine, error) {
	var out bls12381.G2Affine
	compressed, infinity, sort, b0 := splitFlags(data[0])
	if compressed || sort {
		return out, ErrDecode
	}
	data[0] = b0
	if infinity {
		if !allZero(data[:]) {
			return out, ErrDecode
		}
		return out, nil
	}

	var xc1b, xc0b, yc1b, yc0b [48]byte
	copy(xc1b[:], data[0:48])
	copy(xc0b[:], data[48:96])
	copy(yc1b[:], data[96:144])
	copy(yc0b[:], data[144:192])

	xc1, err := readFq(xc1b)
	if err != nil {
		return out, err
	}
	xc0, err := readFq(xc0b)
	if err != nil {
		return out, err
	}
	yc1, err := readFq(yc1b)
	if err != nil {
		return out, err
	}
	yc0, err := readFq(yc0b)
	if err != nil {
		return out, err
	}
	out.X = bls12381.E2{A0: xc0, A1: xc1}
	out.Y = bls12381.E2{A0: yc0, A1: yc1}
	if !out.IsOnCurve() || !out.IsInSubGroup() {
		return bls12381.G2Affine{}, ErrDecode
	}
	return out, nil
}

// DecodeG1Compressed decodes a 48-byte compressed G1 point, recovering y
// from x via the curve equation. Decompression guarantees the on-curve
// property; only the subgroup check remains.
func DecodeG1Compressed(data [48]byte) (bls12381.G1Affine, error) {
	var out bls12381.G1Affine
	compressed, infinity, sort, b0 := splitFlags(data[0])
	if !compressed {
		return out, ErrDecode
	}
	data[0] = b0
	if infinity {
		if !allZero(data[:]) {
			return out, ErrDecode
		}
		return out, nil
	}

	x, err := readFq(data)
	if err != nil {
		return out, err
	}
	y, err := recoverG1Y(x, sort)
	if err != nil {
		return out, err
	}
	out.X, out.Y = x, y
	if !out.IsInSubGroup() {
		return bls12381.G1Affine{}, ErrDecode
	}
	return out, nil
}

// DecodeG2Compressed decodes a 96-byte compressed G2 point: two Fq elements
// in order x_c1, x_c0 give x ∈ Fq2, then y is recovered.
func DecodeG2Compressed(data [96]byte) (bls12381.G2Affine, error) {
	var out bls12381.G2Affine
	compressed, infinity, sort, b0 := splitFlags(data[0])
	if !compressed {
		return out, ErrDecode
	}
	data[0] = b0
	if infinity {
		if !allZero(data[:]) {
			return out, ErrDecode
		}
		return out, nil
	}

	var xc1b, xc0b [48]byte
	copy(xc1b[:], data[0:48])
	copy(xc0b[:], data[48:96])
	xc1, err := readFq(xc1b)
	if err != nil {
		return out, err
	}
	xc0, err := readFq(xc0b)
	if err != nil {
		return out, err
	}
	x := bls12381.E2{A0: xc0, A1: xc1}
	y, err := recoverG2Y(x, sort)
	if err != nil {
		return out, err
	}
	out.X, out.Y = x, y
	if !out.IsInSubGroup() {
		return bls12381.G2Affine{}, ErrDecode
	}
	return out, nil
}
