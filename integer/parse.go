package integer

import (
	"math/big"
	"strconv"
	"strings"
)

// Parse reads s in the given base (2, 10 or 16).
//
// Base 16 input is big-endian two's complement with an optional "0x" prefix.
// Characters that don't belong to the base are dropped first (see Sanitize).
func Parse(s string, base int) (Int, error) {
	switch base {
	case 2, 10:
		s = Sanitize(s, base)

		v, ok := new(big.Int).SetString(s, base)
		if !ok {
			// Nothing left after sanitizing (e.g. "" or "-").
			return Zero, nil
		}

		return Int{v: v}, nil
	case 16:
		s = Sanitize(s, base)
		if len(s) < 2 {
			v, ok := new(big.Int).SetString(s, 16)
			if !ok {
				return Zero, nil
			}

			return Int{v: v}, nil
		}

		return parseHex(RevertHex(s)), nil
	}

	return Zero, RadixError.New("base %d", base)
}

// MustParse is like Parse but panics on error.
func MustParse(s string, base int) Int {
	x, err := Parse(s, base)
	if err != nil {
		panic(err)
	}

	return x
}

// Sanitize drops every character of s that can't be part of a number in the
// given base:
//
//  - base 10 keeps digits and a leading '-'
//  - base 2 keeps '0' and '1'
//  - base 16 keeps hex digits (lower cased) and removes a "0x" prefix
//
// Other bases return s unchanged.
func Sanitize(s string, base int) string {
	switch base {
	case 10:
		s = strings.Map(keep("0123456789-"), s)
		neg := strings.HasPrefix(s, "-")
		s = strings.ReplaceAll(s, "-", "")
		if neg {
			s = "-" + s
		}
	case 2:
		s = strings.Map(keep("01"), s)
	case 16:
		s = strings.Map(keep("0123456789abcdefx"), strings.ToLower(s))
		s = strings.TrimPrefix(s, "0x")
		s = strings.ReplaceAll(s, "x", "")
	}

	return s
}

func keep(chars string) func(rune) rune {
	return func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return r
		}

		return -1
	}
}

// RevertHex reverses the byte order of a hex string. Odd length strings are
// padded with a leading zero first.
func RevertHex(s string) string {
	if len(s)%2 == 1 {
		s = "0" + s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := len(s) - 2; i >= 0; i -= 2 {
		b.WriteString(s[i : i+2])
	}

	return b.String()
}

// CheckNegativeBit reports whether the last byte of a little-endian hex
// string has its top bit set.
//
//  CheckNegativeBit("ff")   == true
//  CheckNegativeBit("7f")   == false
//  CheckNegativeBit("ff00") == false
func CheckNegativeBit(le string) bool {
	if len(le) > 2 {
		le = le[len(le)-2:]
	}

	b, err := strconv.ParseUint(le, 16, 8)
	if err != nil {
		return false
	}

	return b&0x80 != 0
}

// parseHex reads a sanitized little-endian hex string.
func parseHex(le string) Int {
	be := RevertHex(le)

	v, ok := new(big.Int).SetString(be, 16)
	if !ok {
		return Zero
	}

	if CheckNegativeBit(le) {
		// Two's complement: v - 2^bits.
		v.Sub(v, new(big.Int).Lsh(one, uint(len(be)*4)))
	}

	return Int{v: v}
}
