package sapling

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zecsap/sapling-verify/crypto/groth16proof"
	"github.com/zecsap/sapling-verify/crypto/redjubjub"
	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/types"
)

// AcceptParallel is equivalent to AcceptSapling, but runs each spend's and
// each output's proof and signature checks concurrently in an
// errgroup.Group: the first rejection cancels the group's context derived
// from ctx, and goroutines that have not started their checks yet return
// without running them; checks already under way run to completion. The
// value commitments
// themselves are summed afterward, single-threaded, since the running
// balance cannot be accumulated safely from concurrent goroutines.
func AcceptParallel(ctx context.Context, spendVK, outputVK groth16proof.VerifyingKey, sighash [32]byte, s *types.Sapling) error {
	log.Debugw("accepting sapling bundle in parallel", "spends", len(s.Spends), "outputs", len(s.Outputs))
	contributions := make([]redjubjub.Point, len(s.Spends)+len(s.Outputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, spend := range s.Spends {
		i, spend := i, spend
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			vc, err := verifySpend(spendVK, sighash, spend)
			if err != nil {
				return err
			}
			contributions[i] = vc
			return nil
		})
	}
	for j, output := range s.Outputs {
		i, output := len(s.Spends)+j, output
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			vc, err := verifyOutput(outputVK, output)
			if err != nil {
				return err
			}
			var neg redjubjub.Point
			neg.Neg(&vc)
			contributions[i] = neg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	total := identity()
	for i := range contributions {
		total.Add(&total, &contributions[i])
	}

	if err := acceptSaplingFinal(sighash, total, s.BalancingValue, s.BindingSig); err != nil {
		return err
	}
	log.Debug("sapling bundle accepted")
	return nil
}
