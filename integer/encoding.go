package integer

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	dec "github.com/shopspring/decimal"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	return x.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	*x = FromBytes(data)

	return nil
}

// MarshalText implements encoding.TextMarshaler. The text is base 10.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text starting with "0x"
// is read as big-endian hex, anything else as base 10. Hex text carries its
// sign in the top bit, so a leading sign before "0x" is an error.
func (x *Int) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	s := strings.TrimSpace(string(text))

	base := 10
	body := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		if body != s {
			return Error.New("signed hex text %q", s)
		}

		base = 16
	}

	v, err := Parse(s, base)
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a base 10
// string so it survives JSON decoders that use float64.
func (x Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

// UnmarshalJSON implements json.Unmarshaler. Strings are read like
// UnmarshalText. Bare numbers must be integral: 1e3 is 1000, 1.5 is an error.
func (x *Int) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string

		err = json.Unmarshal(data, &s)
		if err != nil {
			return err
		}

		return x.UnmarshalText([]byte(s))
	}

	d, err := dec.NewFromString(string(data))
	if err != nil {
		return err
	}

	if !d.IsInteger() {
		return Error.New("%s is not an integer", data)
	}

	*x = FromBig(d.BigInt())

	return nil
}
