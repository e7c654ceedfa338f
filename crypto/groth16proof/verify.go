package groth16proof

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	gnarkbackend "github.com/consensys/gnark/backend/groth16"
	groth16bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/frontend"
)

// ErrVerify wraps a failure to build the public witness from the given
// inputs, so callers never branch on gnark's internal error types. A proof
// that simply does not verify is reported through Verify's bool result, not
// through this error.
var ErrVerify = errors.New("groth16proof: verification failed")

// VerifyingKey is gnark's native BLS12-381 Groth16 verifying key. Loading
// one from a serialized blob is the caller's responsibility — an external
// concern this package does not implement, matching the opaque
// prepared-verifying-key the acceptance routines are handed.
type VerifyingKey = gnarkbackend.VerifyingKey

// publicInputsCircuit is a bare gnark circuit used only as a witness
// carrier: its Define is never invoked, only its public struct fields and
// gnark tags, which frontend.NewWitness reads by reflection.
type publicInputsCircuit struct {
	Values []frontend.Variable `gnark:",public"`
}

func (c *publicInputsCircuit) Define(frontend.API) error { return nil }

// Verify checks proof against vk for the given ordered public inputs (BLS12-381
// scalar field elements, already reduced). It reports whether the proof is
// valid: any rejection by gnark's verifier yields (false, nil). A failure to
// build the public witness from publicInputs is returned as an error
// wrapping ErrVerify.
func Verify(vk VerifyingKey, proof Proof, publicInputs []*big.Int) (bool, error) {
	nativeProof := &groth16bls12381.Proof{
		Ar:  proof.A,
		Bs:  proof.B,
		Krs: proof.C,
	}

	values := make([]frontend.Variable, len(publicInputs))
	for i, v := range publicInputs {
		values[i] = v
	}
	assignment := &publicInputsCircuit{Values: values}

	pubWitness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, fmt.Errorf("%w: building public witness: %v", ErrVerify, err)
	}

	if err := gnarkbackend.Verify(nativeProof, vk, pubWitness); err != nil {
		return false, nil
	}
	return true, nil
}
