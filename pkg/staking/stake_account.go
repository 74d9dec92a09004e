package staking

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/pkg/decimal"
)

// StakeAccountLen is the fixed byte length of a stake account record,
// reserved region included.
const StakeAccountLen = 1 + decimal.Len + solana.PublicKeyLength + solana.PublicKeyLength + 8 + decimal.Len + reservedLen

// StakeAccount is one participant's stake state within a pool.
type StakeAccount struct {
	// Version of the struct
	Version byte
	// StartRate is the pool's cumulative rate at the last interaction.
	StartRate decimal.Decimal
	Owner     solana.PublicKey
	// PoolPubkey is a back-reference to the staking pool, not ownership.
	PoolPubkey          solana.PublicKey
	DepositedAmount     uint64
	UnclaimedRewardWads decimal.Decimal
}

// IsInitialized reports whether the record has ever been written. A freshly
// allocated account decodes structurally with version zero; callers must gate
// on this before trusting the contents.
func (acct *StakeAccount) IsInitialized() bool {
	return acct.Version != UninitializedVersion
}

func (acct *StakeAccount) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error

	acct.Version, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	if acct.Version > ProgramVersion {
		klog.Infof("stake account version does not match staking program version")
		return ErrUnsupportedVersion
	}

	err = acct.StartRate.UnmarshalWithDecoder(decoder)
	if err != nil {
		return err
	}

	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(acct.Owner[:], pk)

	pk, err = decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(acct.PoolPubkey[:], pk)

	acct.DepositedAmount, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	err = acct.UnclaimedRewardWads.UnmarshalWithDecoder(decoder)
	if err != nil {
		return err
	}

	// reserved bytes are skipped, not retained
	_, err = decoder.ReadBytes(reservedLen)
	return err
}

func (acct *StakeAccount) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(acct.Version)
	if err != nil {
		return err
	}

	err = acct.StartRate.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(acct.Owner[:], false)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(acct.PoolPubkey[:], false)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(acct.DepositedAmount, bin.LE)
	if err != nil {
		return err
	}

	err = acct.UnclaimedRewardWads.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	reserved := make([]byte, reservedLen)
	return encoder.WriteBytes(reserved, false)
}

// UnpackStakeAccount decodes a stake account record from an account data
// buffer. The buffer must hold at least StakeAccountLen bytes; version bytes
// from a future schema revision are rejected.
func UnpackStakeAccount(data []byte) (*StakeAccount, error) {
	if len(data) < StakeAccountLen {
		klog.Infof("stake account data too small: %d bytes", len(data))
		return nil, ErrBufferTooSmall
	}

	acct := new(StakeAccount)
	decoder := bin.NewBinDecoder(data[:StakeAccountLen])
	err := acct.UnmarshalWithDecoder(decoder)
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// Pack writes the record into the first StakeAccountLen bytes of dst,
// zero-filling the reserved region. Bytes beyond StakeAccountLen are left
// untouched.
func (acct *StakeAccount) Pack(dst []byte) error {
	if len(dst) < StakeAccountLen {
		return ErrBufferTooSmall
	}

	buf := new(bytes.Buffer)
	encoder := bin.NewBinEncoder(buf)
	err := acct.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	copy(dst[:StakeAccountLen], buf.Bytes())
	return nil
}
