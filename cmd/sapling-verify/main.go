// Command sapling-verify checks a single Zcash Sapling shielded bundle
// against a pair of Groth16 verifying keys, reporting accept or reject.
package main

import (
	"encoding/hex"
	"encoding/json"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"

	"github.com/zecsap/sapling-verify/log"
	"github.com/zecsap/sapling-verify/sapling"
	"github.com/zecsap/sapling-verify/types"
)

var (
	logLevel     = flag.String("loglevel", "info", "log level (debug, info, warn, error)")
	saplingPath  = flag.String("sapling", "", "path to a JSON-encoded Sapling bundle")
	sighashHex   = flag.String("sighash", "", "32-byte transaction signature hash, hex encoded")
	spendVKPath  = flag.String("spendvk", "", "path to the spend circuit's Groth16 verifying key")
	outputVKPath = flag.String("outputvk", "", "path to the output circuit's Groth16 verifying key")
)

func main() {
	flag.Parse()
	log.Init(*logLevel, "stdout", nil)

	sighashBytes, err := hex.DecodeString(*sighashHex)
	if err != nil || len(sighashBytes) != 32 {
		log.Fatalf("invalid sighash: must be 32 bytes hex-encoded")
	}
	var sighash [32]byte
	copy(sighash[:], sighashBytes)

	raw, err := os.ReadFile(*saplingPath)
	if err != nil {
		log.Fatalf("reading sapling bundle: %v", err)
	}
	var bundle types.Sapling
	if err := json.Unmarshal(raw, &bundle); err != nil {
		log.Fatalf("decoding sapling bundle: %v", err)
	}

	spendVK, err := readVerifyingKey(*spendVKPath)
	if err != nil {
		log.Fatalf("loading spend verifying key: %v", err)
	}
	outputVK, err := readVerifyingKey(*outputVKPath)
	if err != nil {
		log.Fatalf("loading output verifying key: %v", err)
	}

	if err := sapling.AcceptSapling(spendVK, outputVK, sighash, &bundle); err != nil {
		log.Errorw(err, "sapling bundle rejected")
		os.Exit(1)
	}
	log.Info("sapling bundle accepted")
}

func readVerifyingKey(path string) (groth16.VerifyingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vk := groth16.NewVerifyingKey(ecc.BLS12_381)
	if _, err := vk.ReadFrom(f); err != nil {
		return nil, err
	}
	return vk, nil
}
