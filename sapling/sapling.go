package sapling

import (
	"github.com/zecsap/sapling-verify/crypto/groth16proof"
	"github.com/zecsap/sapling-verify/crypto/redjubjub"
	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/types"
)

// identity returns the JubJub affine identity point, (0, 1) in twisted
// Edwards coordinates.
func identity() redjubjub.Point {
	var p redjubjub.Point
	p.X.SetZero()
	p.Y.SetOne()
	return p
}

// AcceptSapling is the entry point: it checks every spend and output
// description in sapling against spendVK/outputVK, then closes the
// transaction's value balance against its binding signature. sighash is
// the transaction's signature hash, as computed outside this package. A
// nil return means the transaction's Sapling bundle is fully valid; any
// failure — malformed fields, a small-order point, a bad signature, a
// failing proof, or an unbalanced value — returns ErrReject without
// distinguishing which.
func AcceptSapling(spendVK, outputVK groth16proof.VerifyingKey, sighash [32]byte, s *types.Sapling) error {
	log.Debugw("accepting sapling bundle", "spends", len(s.Spends), "outputs", len(s.Outputs))
	total := identity()

	for _, spend := range s.Spends {
		if err := acceptSpend(spendVK, sighash, &total, spend); err != nil {
			return err
		}
	}

	for _, output := range s.Outputs {
		if err := acceptOutput(outputVK, &total, output); err != nil {
			return err
		}
	}

	if err := acceptSaplingFinal(sighash, total, s.BalancingValue, s.BindingSig); err != nil {
		return err
	}
	log.Debug("sapling bundle accepted")
	return nil
}
