package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt_Floor(t *testing.T) {
	dec := FromInt(42)

	floored, err := dec.TryFloor()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), floored)

	assert.True(t, Zero().IsZero())
	assert.False(t, dec.IsZero())
}

func TestArithmetic(t *testing.T) {
	two := FromInt(2)
	three := FromInt(3)

	sum, err := two.TryAdd(three)
	require.NoError(t, err)
	assert.True(t, sum.Eq(FromInt(5)))

	diff, err := three.TrySub(two)
	require.NoError(t, err)
	assert.True(t, diff.Eq(One()))

	prod, err := two.TryMul(three)
	require.NoError(t, err)
	assert.True(t, prod.Eq(FromInt(6)))

	quo, err := three.TryDiv(two)
	require.NoError(t, err)
	assert.True(t, quo.Eq(FromScaledVal(1_500_000_000_000_000_000, 0)))

	assert.Equal(t, 1, three.Cmp(two))
	assert.Equal(t, -1, two.Cmp(three))
	assert.Equal(t, 0, two.Cmp(FromInt(2)))
}

func TestSubUnderflow(t *testing.T) {
	_, err := FromInt(1).TrySub(FromInt(2))
	assert.ErrorIs(t, err, ErrMathOverflow)
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt(1).TryDiv(Zero())
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestFloorOverflow(t *testing.T) {
	// 2^127 scaled is about 1.7e20 whole units, past the uint64 ceiling
	big := FromScaledVal(0, 1<<63)
	_, err := big.TryFloor()
	assert.ErrorIs(t, err, ErrMathOverflow)
}

func TestPack_Unpack_RoundTrip(t *testing.T) {
	cases := []Decimal{
		Zero(),
		One(),
		FromInt(1_000_000),
		FromScaledVal(0xdeadbeef, 0xfeedface),
	}

	for _, dec := range cases {
		var buf [Len]byte
		require.NoError(t, dec.Pack(buf[:]))

		back, err := UnpackDecimal(buf[:])
		require.NoError(t, err)
		assert.True(t, dec.Eq(back), "%s", dec)
	}
}

func TestPack_WireFormat(t *testing.T) {
	var buf [Len]byte
	require.NoError(t, FromScaledVal(1, 0).Pack(buf[:]))
	assert.Equal(t, [Len]byte{1}, buf)

	require.NoError(t, FromScaledVal(0, 1).Pack(buf[:]))
	assert.Equal(t, byte(1), buf[8])
}

func TestPack_Overflow(t *testing.T) {
	// product wider than 128 bits packs nowhere
	wide, err := FromScaledVal(0, 1<<63).TryMul(FromInt(Wad))
	require.NoError(t, err)

	var buf [Len]byte
	assert.ErrorIs(t, wide.Pack(buf[:]), ErrPackOverflow)
}

func TestPack_Unpack_ShortBuffer(t *testing.T) {
	short := make([]byte, Len-1)

	assert.ErrorIs(t, One().Pack(short), ErrBufferTooSmall)

	_, err := UnpackDecimal(short)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.500000000000000000", FromScaledVal(1_500_000_000_000_000_000, 0).String())
	assert.Equal(t, "0.000000000000000000", Zero().String())
	assert.Equal(t, "42.000000000000000000", FromInt(42).String())
}
