package bls12381

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// Re-exported wire sizes for the four point encodings, mirroring
// gnark-crypto's own SizeOfG1Affine* / SizeOfG2Affine* constants so callers
// never need to import gnark-crypto directly just to size a buffer.
const (
	SizeG1Compressed   = bls12381.SizeOfG1AffineCompressed
	SizeG1Uncompressed = bls12381.SizeOfG1AffineUncompressed
	SizeG2Compressed   = bls12381.SizeOfG2AffineCompressed
	SizeG2Uncompressed = bls12381.SizeOfG2AffineUncompressed
)
