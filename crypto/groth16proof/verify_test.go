package groth16proof

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	groth16bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	qt "github.com/frankban/quicktest"
)

// boundCircuit binds a variable-length slice of public inputs to one
// private secret: Public[0] == Secret + Public[1]. It mirrors exactly the
// shape Verify builds its witness with, so a proof produced against this
// circuit exercises the real decode-then-verify path end to end.
type boundCircuit struct {
	Public []frontend.Variable `gnark:",public"`
	Secret frontend.Variable
}

func (c *boundCircuit) Define(api frontend.API) error {
	sum := api.Add(c.Secret, c.Public[1])
	api.AssertIsEqual(c.Public[0], sum)
	return nil
}

func TestVerifyRoundTrip(t *testing.T) {
	c := qt.New(t)

	var placeholder boundCircuit
	placeholder.Public = make([]frontend.Variable, 2)

	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, &placeholder)
	c.Assert(err, qt.IsNil)

	pk, vk, err := groth16.Setup(ccs)
	c.Assert(err, qt.IsNil)

	secret := big.NewInt(41)
	publicOther := big.NewInt(1)
	publicSum := big.NewInt(42) // secret + publicOther

	assignment := boundCircuit{
		Public: []frontend.Variable{publicSum, publicOther},
		Secret: secret,
	}
	fullWitness, err := frontend.NewWitness(&assignment, ecc.BLS12_381.ScalarField())
	c.Assert(err, qt.IsNil)

	proof, err := groth16.Prove(ccs, pk, fullWitness)
	c.Assert(err, qt.IsNil)

	concreteProof, ok := proof.(*groth16bls12381.Proof)
	c.Assert(ok, qt.IsTrue)

	var wire [192]byte
	copy(wire[0:48], concreteProof.Ar.Bytes())
	copy(wire[48:144], concreteProof.Bs.Bytes())
	copy(wire[144:192], concreteProof.Krs.Bytes())

	decoded, err := DecodeProof(wire)
	c.Assert(err, qt.IsNil)

	ok2, err := Verify(vk, decoded, []*big.Int{publicSum, publicOther})
	c.Assert(err, qt.IsNil)
	c.Assert(ok2, qt.IsTrue)
}

func TestVerifyRejectsWrongPublicInputs(t *testing.T) {
	c := qt.New(t)

	var placeholder boundCircuit
	placeholder.Public = make([]frontend.Variable, 2)

	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, &placeholder)
	c.Assert(err, qt.IsNil)

	pk, vk, err := groth16.Setup(ccs)
	c.Assert(err, qt.IsNil)

	assignment := boundCircuit{
		Public: []frontend.Variable{big.NewInt(42), big.NewInt(1)},
		Secret: big.NewInt(41),
	}
	fullWitness, err := frontend.NewWitness(&assignment, ecc.BLS12_381.ScalarField())
	c.Assert(err, qt.IsNil)

	proof, err := groth16.Prove(ccs, pk, fullWitness)
	c.Assert(err, qt.IsNil)

	concreteProof, ok := proof.(*groth16bls12381.Proof)
	c.Assert(ok, qt.IsTrue)

	var wire [192]byte
	copy(wire[0:48], concreteProof.Ar.Bytes())
	copy(wire[48:144], concreteProof.Bs.Bytes())
	copy(wire[144:192], concreteProof.Krs.Bytes())

	decoded, err := DecodeProof(wire)
	c.Assert(err, qt.IsNil)

	ok2, err := Verify(vk, decoded, []*big.Int{big.NewInt(999), big.NewInt(1)})
	c.Assert(err, qt.IsNil)
	c.Assert(ok2, qt.IsFalse)
}
