package integer

import (
	"encoding/hex"
	"math"
	"math/big"
)

// Range of integers that have an exact float64 representation.
const (
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger
)

var (
	Zero     = New(0)
	One      = New(1)
	MinusOne = New(-1)

	zero    = big.NewInt(0)
	one     = big.NewInt(1)
	maxSafe = big.NewInt(MaxSafeInteger)
	minSafe = big.NewInt(MinSafeInteger)
)

// Int is an immutable signed integer of arbitrary size. The zero value is 0.
//
// The wrapped big.Int is never modified after construction so an Int may be
// copied and shared freely.
type Int struct {
	v *big.Int
}

// New returns the Int for x.
func New(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// FromFloat rounds f to the nearest integer (halves round up towards +Inf)
// and returns it. It fails if f isn't finite or the rounded value is outside
// of the safe integer range.
func FromFloat(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, UnsafeError.New("%v", f)
	}

	r := math.Floor(f)
	if f-r >= 0.5 {
		r++
	}

	if r > MaxSafeInteger || r < MinSafeInteger {
		return Zero, UnsafeError.New("%v", f)
	}

	return New(int64(r)), nil
}

// FromBig returns an Int with the value of b. The big.Int is copied.
func FromBig(b *big.Int) Int {
	if b == nil {
		return Zero
	}

	return Int{v: new(big.Int).Set(b)}
}

// FromBytes reads a little-endian two's complement byte sequence. An empty
// sequence is zero.
func FromBytes(data []byte) Int {
	if len(data) == 0 {
		return Zero
	}

	return parseHex(hex.EncodeToString(data))
}

func (x Int) value() *big.Int {
	if x.v == nil {
		return zero
	}

	return x.v
}

// Big returns a copy of the value as a big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.value())
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	return x.value().Sign()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	return x.value().Cmp(y.value())
}

// Equal reports whether x and y hold the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{v: new(big.Int).Neg(x.value())}
}

// Bytes returns the little-endian two's complement encoding of x.
func (x Int) Bytes() []byte {
	v := x.value()

	switch v.Sign() {
	case 0:
		return []byte{0}
	case 1:
		data := reverse(v.Bytes())

		// A positive value must not look negative.
		if data[len(data)-1]&0x80 != 0 {
			data = append(data, 0)
		}

		return data
	}

	// The fewest bytes whose sign bit can hold v: |v| - 1 must fit in the
	// remaining bits.
	m := new(big.Int).Neg(v)
	m.Sub(m, one)
	size := (m.BitLen() + 8) / 8

	c := new(big.Int).Lsh(one, uint(size*8))
	c.Add(c, v)

	return reverse(c.FillBytes(make([]byte, size)))
}

// HexString returns the little-endian hex encoding of x without a prefix.
func (x Int) HexString() string {
	return hex.EncodeToString(x.Bytes())
}

// Text returns x in the given base. Base 16 is big-endian two's complement
// with a "0x" prefix.
func (x Int) Text(base int) (string, error) {
	switch base {
	case 2, 10:
		return x.value().Text(base), nil
	case 16:
		return "0x" + RevertHex(x.HexString()), nil
	}

	return "", RadixError.New("base %d", base)
}

// String returns x in base 10.
func (x Int) String() string {
	return x.value().String()
}

// Number returns x as a float64. It fails if x is outside of the safe
// integer range.
func (x Int) Number() (float64, error) {
	v := x.value()
	if v.Cmp(maxSafe) > 0 || v.Cmp(minSafe) < 0 {
		return 0, UnsafeError.New("%s", v)
	}

	return float64(v.Int64()), nil
}

// Int64 returns x as an int64. It fails if x doesn't fit.
func (x Int) Int64() (int64, error) {
	v := x.value()
	if !v.IsInt64() {
		return 0, UnsafeError.New("%s overflows int64", v)
	}

	return v.Int64(), nil
}

func reverse(data []byte) []byte {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}

	return data
}
