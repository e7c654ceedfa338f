package sapling

import (
	"math/big"

	"github.com/zecsap/sapling-verify/crypto/groth16proof"
	"github.com/zecsap/sapling-verify/crypto/redjubjub"
	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/types"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// acceptOutput validates one output description and, on success,
// subtracts its value commitment from total (an output consumes value, a
// spend produces it). See verifyOutput for the checks performed.
func acceptOutput(outputVK groth16proof.VerifyingKey, total *redjubjub.Point, output types.OutputDescription) error {
	valueCommitment, err := verifyOutput(outputVK, output)
	if err != nil {
		return err
	}
	var negCommitment redjubjub.Point
	negCommitment.Neg(&valueCommitment)
	total.Add(total, &negCommitment)
	return nil
}

// verifyOutput validates one output description: its value commitment and
// ephemeral key must not be small-order points, and its Groth16 proof must
// verify against the commitment, key, and note commitment it claims. On
// success it returns the output's (un-negated) value commitment.
func verifyOutput(outputVK groth16proof.VerifyingKey, output types.OutputDescription) (redjubjub.Point, error) {
	log.Debugw("verifying output description", "cmu", output.NoteCommitment.String())

	vcBytes, err := fixed32(output.ValueCommitment)
	if err != nil {
		log.Warnw("output rejected: malformed value commitment", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}
	valueCommitment, err := redjubjub.ReadPoint(vcBytes)
	if err != nil || redjubjub.IsSmallOrder(valueCommitment) {
		log.Warnw("output rejected: invalid or small-order value commitment", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}

	var noteCommitment fr.Element
	ncBytes, err := fixed32(output.NoteCommitment)
	if err != nil {
		log.Warnw("output rejected: malformed note commitment", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}
	if err := setBaseFieldLE(&noteCommitment, ncBytes); err != nil {
		log.Warnw("output rejected: note commitment out of range", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}

	ekBytes, err := fixed32(output.EphemeralKey)
	if err != nil {
		log.Warnw("output rejected: malformed ephemeral key", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}
	ephemeralKey, err := redjubjub.ReadPoint(ekBytes)
	if err != nil || redjubjub.IsSmallOrder(ephemeralKey) {
		log.Warnw("output rejected: invalid or small-order ephemeral key", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}

	var noteCommitmentBig, vcX, vcY, ekX, ekY big.Int
	noteCommitment.BigInt(&noteCommitmentBig)
	valueCommitment.X.BigInt(&vcX)
	valueCommitment.Y.BigInt(&vcY)
	ephemeralKey.X.BigInt(&ekX)
	ephemeralKey.Y.BigInt(&ekY)

	publicInput := []*big.Int{&vcX, &vcY, &ekX, &ekY, &noteCommitmentBig}

	zkproofBytes, err := fixed192(output.Zkproof)
	if err != nil {
		log.Warnw("output rejected: malformed proof", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}
	proof, err := groth16proof.DecodeProof(zkproofBytes)
	if err != nil {
		log.Warnw("output rejected: malformed proof", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}

	ok, err := groth16proof.Verify(outputVK, proof, publicInput)
	if err != nil {
		log.Errorw(err, "output rejected: error verifying proof")
		return redjubjub.Point{}, ErrReject
	}
	if !ok {
		log.Warnw("output rejected: proof did not verify", "cmu", output.NoteCommitment.String())
		return redjubjub.Point{}, ErrReject
	}

	log.Debugw("output accepted", "cmu", output.NoteCommitment.String())
	return valueCommitment, nil
}
