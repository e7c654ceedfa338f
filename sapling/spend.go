package sapling

import (
	"math/big"

	"github.com/zecsap/sapling-verify/crypto/groth16proof"
	"github.com/zecsap/sapling-verify/crypto/multipack"
	"github.com/zecsap/sapling-verify/crypto/redjubjub"
	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/types"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// acceptSpend validates one spend description and, on success, accumulates
// its value commitment into total. See verifySpend for the checks
// performed.
func acceptSpend(spendVK groth16proof.VerifyingKey, sighash [32]byte, total *redjubjub.Point, spend types.SpendDescription) error {
	valueCommitment, err := verifySpend(spendVK, sighash, spend)
	if err != nil {
		return err
	}
	total.Add(total, &valueCommitment)
	return nil
}

// verifySpend validates one spend description: its value commitment must
// not be a small-order point (it accumulates into the balance closure,
// where a small-order commitment would let an attacker forge the binding
// signature's balance check), its spend-authorizing signature must verify
// under the randomized key, and its Groth16 proof must verify against the
// anchor, nullifier, and commitment it claims. On success it returns the
// spend's value commitment, the contribution acceptSpend/AcceptParallel
// accumulate into the transaction's running balance.
func verifySpend(spendVK groth16proof.VerifyingKey, sighash [32]byte, spend types.SpendDescription) (redjubjub.Point, error) {
	log.Debugw("verifying spend description", "nullifier", spend.Nullifier.String())

	vcBytes, err := fixed32(spend.ValueCommitment)
	if err != nil {
		log.Warnw("spend rejected: malformed value commitment", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	valueCommitment, err := redjubjub.ReadPoint(vcBytes)
	if err != nil || redjubjub.IsSmallOrder(valueCommitment) {
		log.Warnw("spend rejected: invalid or small-order value commitment", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	var anchor fr.Element
	anchorBytes, err := fixed32(spend.Anchor)
	if err != nil {
		log.Warnw("spend rejected: malformed anchor", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	if err := setBaseFieldLE(&anchor, anchorBytes); err != nil {
		log.Warnw("spend rejected: anchor out of range", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	rkBytes, err := fixed32(spend.RandomizedKey)
	if err != nil {
		log.Warnw("spend rejected: malformed randomized key", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	randomizedKey, err := redjubjub.ReadPublicKey(rkBytes)
	if err != nil || redjubjub.IsSmallOrder(randomizedKey.Point) {
		log.Warnw("spend rejected: invalid or small-order randomized key", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	var dataToBeSigned [64]byte
	copy(dataToBeSigned[:32], rkBytes[:])
	copy(dataToBeSigned[32:], sighash[:])

	spendAuthSigBytes, err := fixed64(spend.SpendAuthSig)
	if err != nil {
		log.Warnw("spend rejected: malformed spend authorization signature", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	spendAuthSig, err := redjubjub.ReadSignature(spendAuthSigBytes)
	if err != nil {
		log.Warnw("spend rejected: malformed spend authorization signature", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	if !randomizedKey.Verify(dataToBeSigned[:], spendAuthSig, redjubjub.SpendingKeyGenerator) {
		log.Warnw("spend rejected: spend authorization signature did not verify", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	nullifierBytes, err := fixed32(spend.Nullifier)
	if err != nil {
		log.Warnw("spend rejected: malformed nullifier", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	nullifierScalars := multipack.ComputeMultipacking(multipack.BytesToBitsLE(nullifierBytes[:]))
	if len(nullifierScalars) != 2 {
		log.Warnw("spend rejected: nullifier packed into unexpected scalar count", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	var anchorBig, nf0, nf1 big.Int
	anchor.BigInt(&anchorBig)
	nullifierScalars[0].BigInt(&nf0)
	nullifierScalars[1].BigInt(&nf1)

	var rkX, rkY, vcX, vcY big.Int
	randomizedKey.Point.X.BigInt(&rkX)
	randomizedKey.Point.Y.BigInt(&rkY)
	valueCommitment.X.BigInt(&vcX)
	valueCommitment.Y.BigInt(&vcY)

	publicInput := []*big.Int{&rkX, &rkY, &vcX, &vcY, &anchorBig, &nf0, &nf1}

	zkproofBytes, err := fixed192(spend.Zkproof)
	if err != nil {
		log.Warnw("spend rejected: malformed proof", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}
	proof, err := groth16proof.DecodeProof(zkproofBytes)
	if err != nil {
		log.Warnw("spend rejected: malformed proof", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	ok, err := groth16proof.Verify(spendVK, proof, publicInput)
	if err != nil {
		log.Errorw(err, "spend rejected: error verifying proof")
		return redjubjub.Point{}, ErrReject
	}
	if !ok {
		log.Warnw("spend rejected: proof did not verify", "nullifier", spend.Nullifier.String())
		return redjubjub.Point{}, ErrReject
	}

	log.Debugw("spend accepted", "nullifier", spend.Nullifier.String())
	return valueCommitment, nil
}
