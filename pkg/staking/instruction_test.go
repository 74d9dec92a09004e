package staking

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(fill byte) solana.PublicKey {
	var pk solana.PublicKey
	for i := range pk {
		pk[i] = fill
	}
	return pk
}

func TestPack_Unpack_InitStakingPool(t *testing.T) {
	instr := &InstrInitStakingPool{
		Supply:                  1_000_000_000,
		Duration:                86400,
		EarliestRewardClaimTime: 133700,
		BumpSeedStakingProgram:  254,
		PoolOwnerAuthority:      testKey(0xaa),
		AdminAuthority:          testKey(0xbb),
	}

	data := PackInstruction(instr)
	assert.Equal(t, 1+8+8+8+1+32+32, len(data))
	assert.Equal(t, byte(StakingInstrTypeInitStakingPool), data[0])

	decoded, err := UnpackInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, instr, decoded)
}

func TestPack_Unpack_CreateStakeAccount(t *testing.T) {
	data := PackInstruction(&InstrCreateStakeAccount{})
	assert.Equal(t, []byte{1}, data)

	decoded, err := UnpackInstruction([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, &InstrCreateStakeAccount{}, decoded)
}

func TestPack_Unpack_Deposit(t *testing.T) {
	instr := &InstrDeposit{Amount: 1_000_000}

	data := PackInstruction(instr)
	assert.Equal(t, []byte{2, 64, 66, 15, 0, 0, 0, 0, 0}, data)

	decoded, err := UnpackInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, instr, decoded)
}

func TestPack_Unpack_Withdraw(t *testing.T) {
	instr := &InstrWithdraw{Amount: 42}

	data := PackInstruction(instr)
	assert.Equal(t, byte(StakingInstrTypeWithdraw), data[0])

	decoded, err := UnpackInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, instr, decoded)
}

func TestPack_Unpack_ClaimReward(t *testing.T) {
	data := PackInstruction(&InstrClaimReward{})
	assert.Equal(t, []byte{4}, data)

	decoded, err := UnpackInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, &InstrClaimReward{}, decoded)
}

func TestUnpackInstruction_Empty(t *testing.T) {
	_, err := UnpackInstruction([]byte{})
	assert.ErrorIs(t, err, ErrInstructionUnpack)

	_, err = UnpackInstruction(nil)
	assert.ErrorIs(t, err, ErrInstructionUnpack)
}

func TestUnpackInstruction_UnknownTag(t *testing.T) {
	for _, tag := range []byte{5, 6, 100, 255} {
		_, err := UnpackInstruction([]byte{tag})
		assert.ErrorIs(t, err, ErrInstructionUnpack, "tag %d", tag)
	}
}

func TestUnpackInstruction_Truncated(t *testing.T) {
	instrs := []StakingInstruction{
		&InstrInitStakingPool{
			Supply:             1,
			Duration:           2,
			PoolOwnerAuthority: testKey(1),
			AdminAuthority:     testKey(2),
		},
		&InstrDeposit{Amount: 1},
		&InstrWithdraw{Amount: 1},
	}

	for _, instr := range instrs {
		data := PackInstruction(instr)
		// every truncation point past the tag must fail, whichever field
		// runs out first
		for cut := 1; cut < len(data); cut++ {
			_, err := UnpackInstruction(data[:cut])
			assert.ErrorIs(t, err, ErrInstructionUnpack, "cut %d of %d", cut, len(data))
		}
	}
}

func TestUnpackInstruction_TrailingBytes(t *testing.T) {
	instrs := []StakingInstruction{
		&InstrInitStakingPool{},
		&InstrCreateStakeAccount{},
		&InstrDeposit{Amount: 7},
		&InstrWithdraw{Amount: 7},
		&InstrClaimReward{},
	}

	for _, instr := range instrs {
		data := append(PackInstruction(instr), 0)
		_, err := UnpackInstruction(data)
		assert.ErrorIs(t, err, ErrInstructionUnpack)
	}
}
