// Package sapling implements Zcash Sapling shielded transaction acceptance:
// decoding spend and output descriptions, checking their spend-authorization
// and Groth16 proofs, and closing the transaction's value balance against
// its binding signature.
package sapling

import "errors"

// ErrReject is returned for every acceptance failure: a malformed field, a
// small-order point, a bad signature, a failing proof, or an unbalanced
// value. The wire protocol's `Result<(), ()>` carries no reason for a
// rejection, and neither does this package — callers get a reject/accept
// verdict, not a diagnosis.
var ErrReject = errors.New("sapling: rejected")
