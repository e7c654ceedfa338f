package groth16proof

import (
	"encoding/hex"
	"testing"

	qt "github.com/frankban/quicktest"
)

// Real BLS12-381 G1/G2 uncompressed test vectors (not compressed — used
// here only to exercise DecodeProof's rejection of malformed compressed
// tags, since a raw uncompressed G1/G2 point always has its compressed bit
// unset and so must be rejected by DecodeG1Compressed/DecodeG2Compressed).
const g1UncompressedHex = "0db882cf5db3e8567f16b4db1772d4d1f5a3fe8d62f0df2eb8a5cfa50806702afde8fc25335eb5ec859c2818b2610b2e19ab445dac720bb1f2b0cd3336f7a1acc62bf1b3a321826264dc7e469281e23b218394d598689da04e136878ff9a7897"

func TestDecodeProofRejectsUncompressedTags(t *testing.T) {
	c := qt.New(t)
	g1 := mustHex(c, g1UncompressedHex) // 96 bytes, compressed flag bit clear

	var buf [192]byte
	copy(buf[0:48], g1[0:48])   // A: compressed-flag bit unset -> reject
	copy(buf[48:144], g1[0:48]) // B: irrelevant, A rejection happens first
	copy(buf[144:192], g1[0:48])

	_, err := DecodeProof(buf)
	c.Assert(err, qt.IsNotNil)
}

func mustHex(c *qt.C, s string) []byte {
	b, err := hex.DecodeString(s)
	c.Assert(err, qt.IsNil)
	return b
}
