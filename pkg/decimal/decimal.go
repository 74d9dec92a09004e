// Package decimal implements the wad fixed-point arithmetic type used by the
// staking program for rates and accrued rewards. Values are scaled by 10^18
// and carried in 256 bits internally; the wire form is the low 128 bits of
// the scaled value, little-endian.
package decimal

import (
	"encoding/binary"
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

// Len is the packed byte width of a Decimal.
const Len = 16

// Wad is the fixed-point scale: one whole unit in scaled form.
const Wad = 1_000_000_000_000_000_000

var (
	ErrMathOverflow   = errors.New("ErrMathOverflow")
	ErrDivideByZero   = errors.New("ErrDivideByZero")
	ErrPackOverflow   = errors.New("ErrPackOverflow")
	ErrBufferTooSmall = errors.New("ErrBufferTooSmall")
)

var wad = uint256.NewInt(Wad)

// Decimal is a wad-scaled fixed-point number.
type Decimal struct {
	val uint256.Int
}

func Zero() Decimal {
	return Decimal{}
}

func One() Decimal {
	return FromInt(1)
}

// FromInt returns the Decimal representing the whole number v.
func FromInt(v uint64) Decimal {
	var dec Decimal
	dec.val.Mul(uint256.NewInt(v), wad)
	return dec
}

// FromScaledVal returns the Decimal whose already-scaled value has the given
// low and high 64-bit halves. This mirrors the wire form.
func FromScaledVal(lo uint64, hi uint64) Decimal {
	var dec Decimal
	dec.val[0] = lo
	dec.val[1] = hi
	return dec
}

func (dec Decimal) IsZero() bool {
	return dec.val.IsZero()
}

func (dec Decimal) Eq(other Decimal) bool {
	return dec.val.Eq(&other.val)
}

func (dec Decimal) Cmp(other Decimal) int {
	return dec.val.Cmp(&other.val)
}

func (dec Decimal) TryAdd(other Decimal) (Decimal, error) {
	var out Decimal
	_, overflow := out.val.AddOverflow(&dec.val, &other.val)
	if overflow {
		return Decimal{}, ErrMathOverflow
	}
	return out, nil
}

func (dec Decimal) TrySub(other Decimal) (Decimal, error) {
	var out Decimal
	_, underflow := out.val.SubOverflow(&dec.val, &other.val)
	if underflow {
		return Decimal{}, ErrMathOverflow
	}
	return out, nil
}

// TryMul multiplies two scaled values, rescaling the product back down by one
// wad.
func (dec Decimal) TryMul(other Decimal) (Decimal, error) {
	var out Decimal
	_, overflow := out.val.MulDivOverflow(&dec.val, &other.val, wad)
	if overflow {
		return Decimal{}, ErrMathOverflow
	}
	return out, nil
}

// TryDiv divides dec by other, scaling the quotient up by one wad so the
// result stays in scaled form.
func (dec Decimal) TryDiv(other Decimal) (Decimal, error) {
	if other.val.IsZero() {
		return Decimal{}, ErrDivideByZero
	}
	var out Decimal
	_, overflow := out.val.MulDivOverflow(&dec.val, wad, &other.val)
	if overflow {
		return Decimal{}, ErrMathOverflow
	}
	return out, nil
}

// TryFloor rounds the value down to the nearest whole number of units.
func (dec Decimal) TryFloor() (uint64, error) {
	var quo uint256.Int
	quo.Div(&dec.val, wad)
	if !quo.IsUint64() {
		return 0, ErrMathOverflow
	}
	return quo.Uint64(), nil
}

// Pack writes the Decimal into the first Len bytes of dst. Values wider than
// 128 bits have no wire form and fail with ErrPackOverflow.
func (dec Decimal) Pack(dst []byte) error {
	if len(dst) < Len {
		return ErrBufferTooSmall
	}
	if dec.val[2] != 0 || dec.val[3] != 0 {
		return ErrPackOverflow
	}
	binary.LittleEndian.PutUint64(dst[0:8], dec.val[0])
	binary.LittleEndian.PutUint64(dst[8:16], dec.val[1])
	return nil
}

// UnpackDecimal reads a Decimal from the first Len bytes of src.
func UnpackDecimal(src []byte) (Decimal, error) {
	if len(src) < Len {
		return Decimal{}, ErrBufferTooSmall
	}
	lo := binary.LittleEndian.Uint64(src[0:8])
	hi := binary.LittleEndian.Uint64(src[8:16])
	return FromScaledVal(lo, hi), nil
}

func (dec *Decimal) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	data, err := decoder.ReadBytes(Len)
	if err != nil {
		return err
	}
	*dec, err = UnpackDecimal(data)
	return err
}

func (dec *Decimal) MarshalWithEncoder(encoder *bin.Encoder) error {
	var data [Len]byte
	err := dec.Pack(data[:])
	if err != nil {
		return err
	}
	return encoder.WriteBytes(data[:], false)
}

// String renders the value with the full 18 fractional digits.
func (dec Decimal) String() string {
	var quo, rem uint256.Int
	quo.DivMod(&dec.val, wad, &rem)
	frac := rem.Uint64()

	out := quo.Dec()
	out += "."
	digits := [18]byte{}
	for i := 17; i >= 0; i-- {
		digits[i] = byte('0' + frac%10)
		frac /= 10
	}
	return out + string(digits[:])
}
