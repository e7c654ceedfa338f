package sapling

import (
	"math"
	"math/big"

	"github.com/zecsap/sapling-verify/crypto/redjubjub"
	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/types"
)

// computeValueBalance re-derives the value commitment for the
// transaction's declared balancing value, in the exponent of the
// ValueCommitmentValue generator. A balancing value of math.MinInt64 is
// rejected: its absolute value does not fit in an int64, mirroring the
// original checked_abs overflow guard.
func computeValueBalance(value int64) (redjubjub.Point, error) {
	var zero redjubjub.Point
	if value == math.MinInt64 {
		return zero, ErrReject
	}

	abs := value
	negative := value < 0
	if negative {
		abs = -abs
	}

	generator := redjubjub.GeneratorPoint(redjubjub.ValueCommitmentValue)
	var point redjubjub.Point
	point.ScalarMultiplication(&generator, big.NewInt(abs))

	if negative {
		point.Neg(&point)
	}
	return point, nil
}

// acceptSaplingFinal closes the transaction's balance: it subtracts the
// declared balancing value from the accumulated spend/output commitments
// to recover the binding verification key, then checks the binding
// signature against it. total is the running sum from acceptSpend and
// acceptOutput over every spend and output in the transaction.
func acceptSaplingFinal(sighash [32]byte, total redjubjub.Point, balancingValue int64, bindingSig types.HexBytes) error {
	log.Debugw("closing sapling balance", "balancingValue", balancingValue)

	valueBalance, err := computeValueBalance(balancingValue)
	if err != nil {
		log.Warnw("sapling bundle rejected: balancing value out of range", "balancingValue", balancingValue)
		return ErrReject
	}

	var negValueBalance redjubjub.Point
	negValueBalance.Neg(&valueBalance)

	var bvkPoint redjubjub.Point
	bvkPoint.Add(&total, &negValueBalance)

	var dataToBeSigned [64]byte
	rBytes := redjubjub.WritePoint(bvkPoint)
	copy(dataToBeSigned[:32], rBytes[:])
	copy(dataToBeSigned[32:], sighash[:])

	sigBytes, err := fixed64(bindingSig)
	if err != nil {
		log.Warnw("sapling bundle rejected: malformed binding signature", "balancingValue", balancingValue)
		return ErrReject
	}
	sig, err := redjubjub.ReadSignature(sigBytes)
	if err != nil {
		log.Warnw("sapling bundle rejected: malformed binding signature", "balancingValue", balancingValue)
		return ErrReject
	}

	bvk := redjubjub.PublicKey{Point: bvkPoint}
	if !bvk.Verify(dataToBeSigned[:], sig, redjubjub.ValueCommitmentRandomness) {
		log.Warnw("sapling bundle rejected: binding signature did not verify", "balancingValue", balancingValue)
		return ErrReject
	}
	log.Debug("sapling bundle balance closed")
	return nil
}
