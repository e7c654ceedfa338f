package types

// Sizes of the fixed-width fields making up the wire encoding of a Sapling
// shielded bundle, per the Zcash Sapling protocol. These mirror the slice
// bounds used in the original affine-point and proof codecs: a compressed
// G1 point is 48 bytes, a compressed G2 point 96, and a Groth16 proof packs
// one G1, one G2 and one G1 point back to back (48 + 96 + 48 = 192).
const (
	SizeValueCommitment = 32
	SizeAnchor          = 32
	SizeNullifier       = 32
	SizeRandomizedKey   = 32
	SizeNoteCommitment  = 32
	SizeEphemeralKey    = 32
	SizeZkproof         = 192
	SizeSpendAuthSig    = 64
	SizeBindingSig      = 64
	SizeEncCipherText   = 580
	SizeOutCipherText   = 80
)

// SpendDescription is a single Sapling spend as it appears inside a
// transaction's shielded bundle. Fields are kept as fixed-size HexBytes
// rather than decoded curve points: decoding happens lazily, only for the
// fields a given acceptance check actually needs.
type SpendDescription struct {
	ValueCommitment HexBytes `json:"cv"`
	Anchor          HexBytes `json:"anchor"`
	Nullifier       HexBytes `json:"nullifier"`
	RandomizedKey   HexBytes `json:"rk"`
	Zkproof         HexBytes `json:"zkproof"`
	SpendAuthSig    HexBytes `json:"spendAuthSig"`
}

// OutputDescription is a single Sapling output. EncCipherText and
// OutCipherText are carried verbatim so a caller can round-trip a full
// bundle through this type; the verifier never inspects them.
type OutputDescription struct {
	ValueCommitment HexBytes `json:"cv"`
	NoteCommitment  HexBytes `json:"cmu"`
	EphemeralKey    HexBytes `json:"ephemeralKey"`
	EncCipherText   HexBytes `json:"encCiphertext"`
	OutCipherText   HexBytes `json:"outCiphertext"`
	Zkproof         HexBytes `json:"zkproof"`
}

// Sapling is the shielded bundle of a transaction: zero or more spends and
// outputs, a signed net value transfer out of the shielded pool, and the
// binding signature that ties the two together.
type Sapling struct {
	BalancingValue int64               `json:"balancingValue"`
	Spends         []SpendDescription  `json:"spends"`
	Outputs        []OutputDescription `json:"outputs"`
	BindingSig     HexBytes            `json:"bindingSig"`
}
