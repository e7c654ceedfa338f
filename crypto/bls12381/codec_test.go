package bls12381

import (
	"encoding/hex"
	"testing"

	qt "github.com/frankban/quicktest"
)

// g1Vector and g2Vector are the uncompressed-point literals from the
// original zexe-sapling codec test suite, used here to confirm the Go
// decoder accepts the same real on-curve, in-subgroup points.
const (
	g1Vector = "0db882cf5db3e8567f16b4db1772d4d1f5a3fe8d62f0df2eb8a5cfa50806702afde8fc25335eb5ec859c2818b2610b2e19ab445dac720bb1f2b0cd3336f7a1acc62bf1b3a321826264dc7e469281e23b218394d598689da04e136878ff9a7897"
	g2Vector = "0a416b8187450b28f025c421e3ff14d38f9abd9af2f1046b914b53ab37e9aebba683cb25284e5c22fa341129985250a103547de5d005df48265f7cb258162253d56fbc682d106a1ecb07666ebf7524a364e512c37aa62f82d6e7dd4ed8838478104376a98072766c29959358e9cde6a4985618f65ea257e8f288974f4aedde52e5dac2fb7ae5d30eab7cd828a2c8b15f15b16f139f2c33ef33d63befe404e696c97077d17ea42f4ff9d82ec456aaf43914a3d07968111a3a348f157e64c0278a"
)

func mustDecode(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestDecodeG1UncompressedRealVector(t *testing.T) {
	c := qt.New(t)
	var buf [96]byte
	copy(buf[:], mustDecode(t, g1Vector))
	p, err := DecodeG1Uncompressed(buf)
	c.Assert(err, qt.IsNil)
	c.Assert(p.IsOnCurve(), qt.IsTrue)
	c.Assert(p.IsInSubGroup(), qt.IsTrue)
}

func TestDecodeG2UncompressedRealVector(t *testing.T) {
	c := qt.New(t)
	var buf [192]byte
	copy(buf[:], mustDecode(t, g2Vector))
	p, err := DecodeG2Uncompressed(buf)
	c.Assert(err, qt.IsNil)
	c.Assert(p.IsOnCurve(), qt.IsTrue)
	c.Assert(p.IsInSubGroup(), qt.IsTrue)
}

func TestDecodeG1CompressedIdentity(t *testing.T) {
	c := qt.New(t)
	var buf [48]byte
	buf[0] = 0xc0 // compressed | infinity
	p, err := DecodeG1Compressed(buf)
	c.Assert(err, qt.IsNil)
	c.Assert(p.X.IsZero(), qt.IsTrue)
	c.Assert(p.Y.IsZero(), qt.IsTrue)
}

func TestDecodeG1CompressedIdentityRejectsNonZeroPayload(t *testing.T) {
	c := qt.New(t)
	var buf [48]byte
	buf[0] = 0xc0
	buf[47] = 0x01
	_, err := DecodeG1Compressed(buf)
	c.Assert(err, qt.Equals, ErrDecode)
}

func TestDecodeG1UncompressedRejectsSortFlag(t *testing.T) {
	c := qt.New(t)
	var buf [96]byte
	copy(buf[:], mustDecode(t, g1Vector))
	buf[0] |= flagSort
	_, err := DecodeG1Uncompressed(buf)
	c.Assert(err, qt.Equals, ErrDecode)
}

func TestDecodeG1UncompressedRejectsCompressedFlag(t *testing.T) {
	c := qt.New(t)
	var buf [96]byte
	copy(buf[:], mustDecode(t, g1Vector))
	buf[0] |= flagCompressed
	_, err := DecodeG1Uncompressed(buf)
	c.Assert(err, qt.Equals, ErrDecode)
}

func TestDecodeG1CompressedRoundTrip(t *testing.T) {
	c := qt.New(t)
	var buf [96]byte
	copy(buf[:], mustDecode(t, g1Vector))
	uncompressed, err := DecodeG1Uncompressed(buf)
	c.Assert(err, qt.IsNil)

	enc := uncompressed.Bytes() // gnark-crypto's own compressed encoder, trusted oracle
	var compBuf [48]byte
	copy(compBuf[:], enc[:])
	recovered, err := DecodeG1Compressed(compBuf)
	c.Assert(err, qt.IsNil)
	c.Assert(recovered.X.Equal(&uncompressed.X), qt.IsTrue)
	c.Assert(recovered.Y.Equal(&uncompressed.Y), qt.IsTrue)
}

