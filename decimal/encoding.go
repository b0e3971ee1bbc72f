package decimal

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalText implements encoding.TextMarshaler.
func (f Fixed8) MarshalText() (text []byte, err error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed8) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Fixed8) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler. Both strings and bare numbers
// are accepted.
func (f *Fixed8) UnmarshalJSON(data []byte) (err error) {
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

		data = []byte(s)
	}

	return f.UnmarshalText(data)
}
