package decimal

import (
	"math"
	"strings"

	dec "github.com/shopspring/decimal"

	"github.com/calebcase/csint/integer"
)

// Decimals is the number of fractional digits.
const Decimals = 8

var (
	// Scale is 10^Decimals.
	Scale = integer.New(100_000_000)

	Zero     = FromInt(integer.Zero)
	One      = FromInt(Scale)
	Satoshi  = FromInt(integer.One)
	MaxValue = FromInt(integer.New(integer.MaxSafeInteger))
	MinValue = FromInt(integer.New(integer.MinSafeInteger))

	half    = dec.New(5, -1)
	maxSafe = dec.NewFromInt(integer.MaxSafeInteger)
	minSafe = dec.NewFromInt(integer.MinSafeInteger)
)

// Fixed8 is an immutable fixed point number with 8 fractional digits.
type Fixed8 struct {
	v integer.Int
}

// New returns f as a Fixed8. The float is read through its shortest decimal
// form, so New(1.23456789) is exactly 123456789 satoshis. Digits past the
// eighth round half up.
func New(f float64) (Fixed8, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, integer.UnsafeError.New("%v", f)
	}

	return scale(dec.NewFromFloat(f))
}

// Parse reads decimal text such as "1.5" or "-0.00000001".
func Parse(s string) (Fixed8, error) {
	d, err := dec.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero, Error.Wrap(err)
	}

	return scale(d)
}

// FromInt returns the Fixed8 whose value (in satoshis) is i.
func FromInt(i integer.Int) Fixed8 {
	return Fixed8{v: i}
}

func scale(d dec.Decimal) (Fixed8, error) {
	units := d.Shift(Decimals).Add(half).Floor()
	if units.GreaterThan(maxSafe) || units.LessThan(minSafe) {
		return Zero, integer.UnsafeError.New("%s", d)
	}

	return FromInt(integer.FromBig(units.BigInt())), nil
}

// Int returns the value in satoshis.
func (f Fixed8) Int() integer.Int {
	return f.v
}

// Number returns the value in satoshis as a float64. Divide by Scale to get
// the number itself.
func (f Fixed8) Number() (float64, error) {
	return f.v.Number()
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fixed8) Sign() int {
	return f.v.Sign()
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fixed8) Cmp(g Fixed8) int {
	return f.v.Cmp(g.v)
}

// Equal reports whether f and g hold the same value.
func (f Fixed8) Equal(g Fixed8) bool {
	return f.v.Equal(g.v)
}

// Neg returns -f.
func (f Fixed8) Neg() Fixed8 {
	return FromInt(f.v.Neg())
}

// HexString returns the little-endian hex encoding of the value.
// Non-negative values are padded to 8 bytes.
func (f Fixed8) HexString() string {
	h := f.v.HexString()
	if f.v.Sign() >= 0 && len(h) < 16 {
		h += strings.Repeat("0", 16-len(h))
	}

	return h
}

// Text returns f in base 10 or as big-endian hex with a "0x" prefix.
func (f Fixed8) Text(base int) (string, error) {
	switch base {
	case 10:
		return f.String(), nil
	case 16:
		return "0x" + integer.RevertHex(f.HexString()), nil
	}

	return "", integer.RadixError.New("base %d", base)
}

// String returns f in base 10 without trailing zeros.
func (f Fixed8) String() string {
	return dec.NewFromBigInt(f.v.Big(), -Decimals).String()
}
