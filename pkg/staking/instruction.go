package staking

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"k8s.io/klog/v2"
)

// instruction tags as they appear on the wire
const (
	StakingInstrTypeInitStakingPool = iota
	StakingInstrTypeCreateStakeAccount
	StakingInstrTypeDeposit
	StakingInstrTypeWithdraw
	StakingInstrTypeClaimReward
)

// StakingInstruction is one of the five program instructions. The wire form
// is a single tag byte followed by the variant's fields in declared order,
// integers little-endian, pubkeys as raw 32-byte sequences.
type StakingInstruction interface {
	// MarshalWithEncoder writes the tag byte and the variant's fields.
	MarshalWithEncoder(encoder *bin.Encoder) error
}

type InstrInitStakingPool struct {
	Supply                  uint64
	Duration                uint64
	EarliestRewardClaimTime uint64
	BumpSeedStakingProgram  byte
	PoolOwnerAuthority      solana.PublicKey
	AdminAuthority          solana.PublicKey
}

type InstrCreateStakeAccount struct{}

type InstrDeposit struct {
	Amount uint64
}

type InstrWithdraw struct {
	Amount uint64
}

type InstrClaimReward struct{}

func (instr *InstrInitStakingPool) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error

	instr.Supply, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	instr.Duration, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	instr.EarliestRewardClaimTime, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	instr.BumpSeedStakingProgram, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(instr.PoolOwnerAuthority[:], pk)

	pk, err = decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(instr.AdminAuthority[:], pk)

	return nil
}

func (instr *InstrInitStakingPool) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(StakingInstrTypeInitStakingPool)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(instr.Supply, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(instr.Duration, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteUint64(instr.EarliestRewardClaimTime, bin.LE)
	if err != nil {
		return err
	}

	err = encoder.WriteByte(instr.BumpSeedStakingProgram)
	if err != nil {
		return err
	}

	err = encoder.WriteBytes(instr.PoolOwnerAuthority[:], false)
	if err != nil {
		return err
	}

	return encoder.WriteBytes(instr.AdminAuthority[:], false)
}

func (instr *InstrCreateStakeAccount) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteByte(StakingInstrTypeCreateStakeAccount)
}

func (instr *InstrDeposit) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	instr.Amount, err = decoder.ReadUint64(bin.LE)
	return err
}

func (instr *InstrDeposit) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(StakingInstrTypeDeposit)
	if err != nil {
		return err
	}
	return encoder.WriteUint64(instr.Amount, bin.LE)
}

func (instr *InstrWithdraw) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	instr.Amount, err = decoder.ReadUint64(bin.LE)
	return err
}

func (instr *InstrWithdraw) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(StakingInstrTypeWithdraw)
	if err != nil {
		return err
	}
	return encoder.WriteUint64(instr.Amount, bin.LE)
}

func (instr *InstrClaimReward) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteByte(StakingInstrTypeClaimReward)
}

// UnpackInstruction decodes instruction data into its typed form. The whole
// buffer must be consumed: an empty buffer, an unknown tag, a field running
// past the end of the data, or trailing bytes after the last field all fail
// with ErrInstructionUnpack.
func UnpackInstruction(data []byte) (StakingInstruction, error) {
	if len(data) == 0 {
		klog.Infof("instruction data is empty")
		return nil, ErrInstructionUnpack
	}

	tag := data[0]
	decoder := bin.NewBinDecoder(data[1:])

	var instr StakingInstruction
	var err error

	switch tag {
	case StakingInstrTypeInitStakingPool:
		{
			initPool := new(InstrInitStakingPool)
			err = initPool.UnmarshalWithDecoder(decoder)
			instr = initPool
		}

	case StakingInstrTypeCreateStakeAccount:
		{
			instr = new(InstrCreateStakeAccount)
		}

	case StakingInstrTypeDeposit:
		{
			deposit := new(InstrDeposit)
			err = deposit.UnmarshalWithDecoder(decoder)
			instr = deposit
		}

	case StakingInstrTypeWithdraw:
		{
			withdraw := new(InstrWithdraw)
			err = withdraw.UnmarshalWithDecoder(decoder)
			instr = withdraw
		}

	case StakingInstrTypeClaimReward:
		{
			instr = new(InstrClaimReward)
		}

	default:
		{
			klog.Infof("instruction cannot be unpacked: unknown tag %d", tag)
			return nil, ErrInstructionUnpack
		}
	}

	if err != nil {
		klog.Infof("instruction cannot be unpacked: %s", err)
		return nil, ErrInstructionUnpack
	}

	if decoder.HasRemaining() {
		klog.Infof("instruction cannot be unpacked: trailing bytes after last field")
		return nil, ErrInstructionUnpack
	}

	return instr, nil
}

// PackInstruction serializes an instruction into its wire form. Any validly
// constructed instruction packs; encoding into a memory buffer cannot fail.
func PackInstruction(instr StakingInstruction) []byte {
	buf := new(bytes.Buffer)
	encoder := bin.NewBinEncoder(buf)
	_ = instr.MarshalWithEncoder(encoder)
	return buf.Bytes()
}
