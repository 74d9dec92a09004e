package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castle-finance/port-staking-instructions/pkg/decimal"
)

func TestRecordLens(t *testing.T) {
	assert.Equal(t, 1+16+32+32+8+16+128, StakeAccountLen)
	assert.Equal(t, 1+3*32+4*8+2*16+8+1+128, StakingPoolLen)
}

func TestPack_Unpack_StakeAccount(t *testing.T) {
	acct := &StakeAccount{
		Version:             ProgramVersion,
		StartRate:           decimal.FromInt(3),
		Owner:               testKey(0x11),
		PoolPubkey:          testKey(0x22),
		DepositedAmount:     5_000_000,
		UnclaimedRewardWads: decimal.FromScaledVal(123456789, 0),
	}

	buf := make([]byte, StakeAccountLen)
	require.NoError(t, acct.Pack(buf))

	decoded, err := UnpackStakeAccount(buf)
	require.NoError(t, err)
	assert.Equal(t, acct, decoded)
	assert.True(t, decoded.IsInitialized())
}

func TestPack_Unpack_StakingPool(t *testing.T) {
	pool := &StakingPool{
		Version:                 ProgramVersion,
		OwnerAuthority:          testKey(0x33),
		AdminAuthority:          testKey(0x44),
		RewardTokenPool:         testKey(0x55),
		LastUpdate:              1000,
		EndTime:                 2000,
		Duration:                1500,
		EarliestRewardClaimTime: 1600,
		RatePerSlot:             decimal.FromScaledVal(7, 0),
		CumulativeRate:          decimal.FromInt(9),
		PoolSize:                12_345_678,
		BumpSeedStakingProgram:  253,
	}

	buf := make([]byte, StakingPoolLen)
	require.NoError(t, pool.Pack(buf))

	decoded, err := UnpackStakingPool(buf)
	require.NoError(t, err)
	assert.Equal(t, pool, decoded)
	assert.True(t, decoded.IsInitialized())
}

func TestPack_ReservedRegionZeroFilled(t *testing.T) {
	acct := &StakeAccount{Version: ProgramVersion}
	buf := make([]byte, StakeAccountLen)
	for i := range buf {
		buf[i] = 0xff
	}
	require.NoError(t, acct.Pack(buf))
	for _, b := range buf[StakeAccountLen-reservedLen : StakeAccountLen] {
		assert.Equal(t, byte(0), b)
	}

	pool := &StakingPool{Version: ProgramVersion}
	buf = make([]byte, StakingPoolLen)
	for i := range buf {
		buf[i] = 0xff
	}
	require.NoError(t, pool.Pack(buf))
	for _, b := range buf[StakingPoolLen-reservedLen : StakingPoolLen] {
		assert.Equal(t, byte(0), b)
	}
}

func TestPack_WritesWithinLenOnly(t *testing.T) {
	acct := &StakeAccount{Version: ProgramVersion}
	buf := make([]byte, StakeAccountLen+8)
	for i := range buf {
		buf[i] = 0xee
	}
	require.NoError(t, acct.Pack(buf))
	for _, b := range buf[StakeAccountLen:] {
		assert.Equal(t, byte(0xee), b)
	}

	pool := &StakingPool{Version: ProgramVersion}
	buf = make([]byte, StakingPoolLen+8)
	for i := range buf {
		buf[i] = 0xee
	}
	require.NoError(t, pool.Pack(buf))
	for _, b := range buf[StakingPoolLen:] {
		assert.Equal(t, byte(0xee), b)
	}
}

func TestPack_BufferTooSmall(t *testing.T) {
	acct := &StakeAccount{Version: ProgramVersion}
	assert.ErrorIs(t, acct.Pack(make([]byte, StakeAccountLen-1)), ErrBufferTooSmall)

	pool := &StakingPool{Version: ProgramVersion}
	assert.ErrorIs(t, pool.Pack(make([]byte, StakingPoolLen-1)), ErrBufferTooSmall)
}

func TestUnpack_BufferTooSmall(t *testing.T) {
	for cut := 0; cut < StakeAccountLen; cut += 31 {
		_, err := UnpackStakeAccount(make([]byte, cut))
		assert.ErrorIs(t, err, ErrBufferTooSmall, "len %d", cut)
	}

	for cut := 0; cut < StakingPoolLen; cut += 31 {
		_, err := UnpackStakingPool(make([]byte, cut))
		assert.ErrorIs(t, err, ErrBufferTooSmall, "len %d", cut)
	}
}

func TestUnpack_VersionGate(t *testing.T) {
	buf := make([]byte, StakeAccountLen)

	buf[0] = ProgramVersion + 1
	_, err := UnpackStakeAccount(buf)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	// an all-zero buffer is an uninitialized record; it decodes
	// structurally and the caller gates on IsInitialized
	buf[0] = UninitializedVersion
	acct, err := UnpackStakeAccount(buf)
	require.NoError(t, err)
	assert.False(t, acct.IsInitialized())

	buf[0] = ProgramVersion
	acct, err = UnpackStakeAccount(buf)
	require.NoError(t, err)
	assert.True(t, acct.IsInitialized())

	poolBuf := make([]byte, StakingPoolLen)

	poolBuf[0] = ProgramVersion + 1
	_, err = UnpackStakingPool(poolBuf)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	poolBuf[0] = UninitializedVersion
	pool, err := UnpackStakingPool(poolBuf)
	require.NoError(t, err)
	assert.False(t, pool.IsInitialized())

	poolBuf[0] = ProgramVersion
	pool, err = UnpackStakingPool(poolBuf)
	require.NoError(t, err)
	assert.True(t, pool.IsInitialized())
}

func TestUnpack_IgnoresTrailingGarbage(t *testing.T) {
	// account buffers may be larger than LEN; only the first LEN bytes are
	// the record
	acct := &StakeAccount{Version: ProgramVersion, DepositedAmount: 99}
	buf := make([]byte, StakeAccountLen+64)
	require.NoError(t, acct.Pack(buf))
	for i := StakeAccountLen; i < len(buf); i++ {
		buf[i] = 0xcd
	}

	decoded, err := UnpackStakeAccount(buf)
	require.NoError(t, err)
	assert.Equal(t, acct, decoded)
}
