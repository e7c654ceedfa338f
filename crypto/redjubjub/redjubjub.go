// Package redjubjub implements RedJubjub, the Schnorr-style signature
// scheme Sapling uses over the JubJub twisted Edwards curve (the curve
// defined over BLS12-381's scalar field). This package is the concrete
// collaborator behind the external interface spec.md describes as
// `redjubjub::PublicKey::verify` plus point encode/decode — a library-level
// dependency the spec treats as opaque, built here on gnark-crypto's native
// JubJub arithmetic rather than hand-rolled field math.
package redjubjub

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"golang.org/x/crypto/blake2b"
)

// ErrInvalidPoint is returned when a 32-byte buffer does not decode to a
// point on the JubJub curve.
var ErrInvalidPoint = errors.New("redjubjub: invalid point encoding")

// ErrInvalidSignature is returned when a 64-byte buffer is the wrong shape
// to be a signature. Signature verification failure is reported separately
// via Verify's bool return, matching the external contract's
// `verify(...) -> bool` shape rather than an error.
var ErrInvalidSignature = errors.New("redjubjub: malformed signature")

// Generator names the fixed JubJub base points used across Sapling: one to
// derive spend-authorizing randomized keys' signatures, two to build and
// close the value commitment / binding signature.
type Generator int

const (
	SpendingKeyGenerator Generator = iota
	ValueCommitmentRandomness
	ValueCommitmentValue
)

var curveParams = twistededwards.GetEdwardsCurve()

// fixedGenerators caches each named generator's point, derived
// deterministically from the curve base point so every generator is a
// distinct, reproducible point without requiring the literal published
// Zcash constants (out of scope per spec §6 — arithmetic primitives are an
// external collaborator).
var fixedGenerators = func() map[Generator]twistededwards.PointAffine {
	names := map[Generator]string{
		SpendingKeyGenerator:      "Zcash_G_SpendingKey",
		ValueCommitmentRandomness: "Zcash_G_ValueCommitmentRandomness",
		ValueCommitmentValue:      "Zcash_G_ValueCommitmentValue",
	}
	out := make(map[Generator]twistededwards.PointAffine, len(names))
	for tag, name := range names {
		h := blake2b.Sum512([]byte(name))
		scalar := new(big.Int).SetBytes(h[:])
		scalar.Mod(scalar, &curveParams.Order)
		var p twistededwards.PointAffine
		p.ScalarMultiplication(&curveParams.Base, scalar)
		out[tag] = p
	}
	return out
}()

// GeneratorPoint returns the fixed point backing tag.
func GeneratorPoint(tag Generator) twistededwards.PointAffine {
	return fixedGenerators[tag]
}

// Point is a JubJub affine point, aliased for readability at this
// package's boundary.
type Point = twistededwards.PointAffine

// ReadPoint decodes a 32-byte JubJub point encoding.
func ReadPoint(data [32]byte) (Point, error) {
	var p Point
	if err := p.Unmarshal(data[:]); err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return p, nil
}

// WritePoint encodes p into its 32-byte wire form.
func WritePoint(p Point) [32]byte {
	var out [32]byte
	copy(out[:], p.Marshal())
	return out
}

// IsSmallOrder reports whether p has order dividing 8: three consecutive
// doublings landing on the identity. Such points admit trivial forgeries
// and must never be accepted as a public key or commitment.
func IsSmallOrder(p Point) bool {
	var d Point
	d.Add(&p, &p)
	d.Add(&d, &d)
	d.Add(&d, &d)
	var identity Point
	identity.X.SetZero()
	identity.Y.SetOne()
	return d.Equal(&identity)
}

// PublicKey is a RedJubjub verification key: a JubJub point.
type PublicKey struct {
	Point Point
}

// ReadPublicKey decodes a 32-byte buffer as a RedJubjub public key.
func ReadPublicKey(data [32]byte) (PublicKey, error) {
	p, err := ReadPoint(data)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{Point: p}, nil
}

// Signature is a RedJubjub signature: a JubJub point R and a scalar s taken
// mod the curve's prime subgroup order, each 32 bytes, concatenated R‖s.
type Signature struct {
	R Point
	S *big.Int
}

// ReadSignature decodes a 64-byte buffer into a Signature. The scalar half
// must already be reduced mod the subgroup order.
func ReadSignature(data [64]byte) (Signature, error) {
	var sig Signature
	var rBuf [32]byte
	copy(rBuf[:], data[:32])
	r, err := ReadPoint(rBuf)
	if err != nil {
		return sig, ErrInvalidSignature
	}
	sig.R = r
	s := new(big.Int).SetBytes(data[32:64])
	if s.Cmp(&curveParams.Order) >= 0 {
		return sig, ErrInvalidSignature
	}
	sig.S = s
	return sig, nil
}

// challenge computes c = H(R ‖ pk ‖ msg), wide-reduced mod the curve's
// subgroup order, using Blake2b-512 keyed with the string
// "Zcash_RedJubjubH" for domain separation. The string is passed as the
// BLAKE2b key, not as a BLAKE2b personalization, and it is the same for
// every generator; what matters is that signer and verifier agree on it.
func challenge(r Point, pk Point, msg []byte) *big.Int {
	hasher, _ := blake2b.New512([]byte("Zcash_RedJubjubH"))
	rBytes := WritePoint(r)
	pkBytes := WritePoint(pk)
	hasher.Write(rBytes[:])
	hasher.Write(pkBytes[:])
	hasher.Write(msg)
	digest := hasher.Sum(nil)

	c := new(big.Int).SetBytes(digest)
	return c.Mod(c, &curveParams.Order)
}

// Verify checks sig against msg under this public key, using the fixed
// generator identified by tag: S·generator =? R + c·pk.
func (pk PublicKey) Verify(msg []byte, sig Signature, tag Generator) bool {
	generator := GeneratorPoint(tag)
	c := challenge(sig.R, pk.Point, msg)

	var sTimesG Point
	sTimesG.ScalarMultiplication(&generator, sig.S)

	var cTimesPk Point
	cTimesPk.ScalarMultiplication(&pk.Point, c)

	var rhs Point
	rhs.Add(&sig.R, &cTimesPk)

	return sTimesG.Equal(&rhs)
}

// Sign produces a RedJubjub signature over msg under sk (a scalar mod the
// subgroup order) with the named generator. Exposed for tests that need to
// construct real, verifiable fixtures without the caller-side signer this
// spec treats as external.
func Sign(sk *big.Int, msg []byte, tag Generator) (Signature, PublicKey, error) {
	generator := GeneratorPoint(tag)

	var pkPoint Point
	pkPoint.ScalarMultiplication(&generator, sk)
	pk := PublicKey{Point: pkPoint}

	nonceBuf := make([]byte, 64)
	if _, err := rand.Read(nonceBuf); err != nil {
		return Signature{}, PublicKey{}, err
	}
	rScalar := new(big.Int).SetBytes(nonceBuf)
	rScalar.Mod(rScalar, &curveParams.Order)

	var rPoint Point
	rPoint.ScalarMultiplication(&generator, rScalar)

	c := challenge(rPoint, pk.Point, msg)

	s := new(big.Int).Mul(c, sk)
	s.Add(s, rScalar)
	s.Mod(s, &curveParams.Order)

	return Signature{R: rPoint, S: s}, pk, nil
}
