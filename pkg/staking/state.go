package staking

import (
	"github.com/gagliardetto/solana-go"
)

// ProgramVersion is the schema version stamped into every freshly created
// account record.
const ProgramVersion = 1

// UninitializedVersion is the version byte of an account whose data is still
// zero-allocated; such a record has never been written.
const UninitializedVersion = 0

// reservedLen is the width of the zero-filled region kept at the tail of both
// account layouts for future schema fields.
const reservedLen = 128

// ProgramID is the mainnet staking program address.
var ProgramID = solana.MustPublicKeyFromBase58("stkarvwmSzv2BygN5e2LeTwimTczLWHCKPKGC2zVLiq")
