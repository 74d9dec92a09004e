package staking

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"k8s.io/klog/v2"

	"github.com/castle-finance/port-staking-instructions/pkg/decimal"
)

// StakingPoolLen is the fixed byte length of a staking pool record, reserved
// region included.
const StakingPoolLen = 1 +
	solana.PublicKeyLength +
	solana.PublicKeyLength +
	solana.PublicKeyLength +
	8 + 8 + 8 + 8 +
	decimal.Len + decimal.Len +
	8 + 1 + reservedLen

// StakingPool is the pool-wide staking state.
type StakingPool struct {
	// Version of the struct
	Version byte
	// OwnerAuthority is the program-derived address authorized to move pool
	// funds.
	OwnerAuthority  solana.PublicKey
	AdminAuthority  solana.PublicKey
	RewardTokenPool solana.PublicKey
	// LastUpdate is the slot of the last accrual update.
	LastUpdate uint64
	// EndTime is the slot at which the reward schedule ends.
	EndTime                 uint64
	Duration                uint64
	EarliestRewardClaimTime uint64
	RatePerSlot             decimal.Decimal
	// CumulativeRate only ever grows; accrual deltas are computed against it.
	CumulativeRate decimal.Decimal
	// PoolSize is the total deposited across all stake accounts.
	PoolSize               uint64
	BumpSeedStakingProgram byte
}

func (pool *StakingPool) IsInitialized() bool {
	return pool.Version != UninitializedVersion
}

func (pool *StakingPool) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error

	pool.Version, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	if pool.Version > ProgramVersion {
		klog.Infof("staking pool version does not match staking program version")
		return ErrUnsupportedVersion
	}

	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(pool.OwnerAuthority[:], pk)

	pk, err = decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(pool.AdminAuthority[:], pk)

	pk, err = decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(pool.RewardTokenPool[:], pk)

	pool.LastUpdate, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pool.EndTime, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pool.Duration, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pool.EarliestRewardClaimTime, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	err = pool.RatePerSlot.UnmarshalWithDecoder(decoder)
	if err != nil {
		return err
	}

	err = pool.CumulativeRate.UnmarshalWithDecoder(decoder)
	if err != nil {
		return err
	}

	pool.PoolSize, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pool.BumpSeedStakingProgram, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	// reserved bytes are skipped, not retained
	_, err = decoder.ReadBytes(reservedLen)
	return err
}

func (pool *StakingPool) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(pool.Version)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(pool.OwnerAuthority[:], false)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(pool.AdminAuthority[:], false)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(pool.RewardTokenPool[:], false)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(pool.LastUpdate, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(pool.EndTime, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(pool.Duration, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(pool.EarliestRewardClaimTime, bin.LE)
	if err != nil {
		return err
	}

	err = pool.RatePerSlot.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	err = pool.CumulativeRate.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(pool.PoolSize, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteByte(pool.BumpSeedStakingProgram)
	if err != nil {
		return err
	}

	reserved := make([]byte, reservedLen)
	return encoder.WriteBytes(reserved, false)
}

// UnpackStakingPool decodes a staking pool record from an account data
// buffer. The buffer must hold at least StakingPoolLen bytes; version bytes
// from a future schema revision are rejected.
func UnpackStakingPool(data []byte) (*StakingPool, error) {
	if len(data) < StakingPoolLen {
		klog.Infof("staking pool data too small: %d bytes", len(data))
		return nil, ErrBufferTooSmall
	}

	pool := new(StakingPool)
	decoder := bin.NewBinDecoder(data[:StakingPoolLen])
	err := pool.UnmarshalWithDecoder(decoder)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Pack writes the record into the first StakingPoolLen bytes of dst,
// zero-filling the reserved region. Bytes beyond StakingPoolLen are left
// untouched.
func (pool *StakingPool) Pack(dst []byte) error {
	if len(dst) < StakingPoolLen {
		return ErrBufferTooSmall
	}

	buf := new(bytes.Buffer)
	encoder := bin.NewBinEncoder(buf)
	err := pool.MarshalWithEncoder(encoder)
	if err != nil {
		return err
	}

	copy(dst[:StakingPoolLen], buf.Bytes())
	return nil
}
