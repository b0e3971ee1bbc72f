package decimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/csint/integer"
)

func TestConstants(t *testing.T) {
	require.Equal(t, "0", Zero.String())
	require.Equal(t, "1", One.String())
	require.Equal(t, "0.00000001", Satoshi.String())
	require.Equal(t, "90071992.54740991", MaxValue.String())
	require.Equal(t, "-90071992.54740991", MinValue.String())

	n, err := Satoshi.Number()
	require.NoError(t, err)
	require.Equal(t, float64(1), n)

	n, err = One.Number()
	require.NoError(t, err)
	require.Equal(t, float64(100_000_000), n)

	n, err = MaxValue.Number()
	require.NoError(t, err)
	require.Equal(t, float64(integer.MaxSafeInteger), n)

	require.True(t, One.Int().Equal(Scale))

	var f Fixed8
	require.True(t, f.Equal(Zero))
	require.Equal(t, "0", f.String())
}

func TestNew(t *testing.T) {
	type TC struct {
		in    float64
		value int64
		text  string
		Mark  error
	}

	tcs := []TC{
		{in: 0, value: 0, text: "0", Mark: oops.New("unexpected")},
		{in: 1, value: 100_000_000, text: "1", Mark: oops.New("unexpected")},
		{in: 1.23456789, value: 123_456_789, text: "1.23456789", Mark: oops.New("unexpected")},
		{in: -1.5, value: -150_000_000, text: "-1.5", Mark: oops.New("unexpected")},
		{in: 0.1, value: 10_000_000, text: "0.1", Mark: oops.New("unexpected")},
		{in: 0.00000001, value: 1, text: "0.00000001", Mark: oops.New("unexpected")},
		{in: 0.000000015, value: 2, text: "0.00000002", Mark: oops.New("unexpected")},
		{in: -0.000000015, value: -1, text: "-0.00000001", Mark: oops.New("unexpected")},
		{in: 0.000000001, value: 0, text: "0", Mark: oops.New("unexpected")},
		{in: 21_000_000, value: 2_100_000_000_000_000, text: "21000000", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.in), func(t *testing.T) {
			f, err := New(tc.in)
			require.NoError(t, err, tc.Mark)
			require.True(t, integer.New(tc.value).Equal(f.Int()), "%v: %s", tc.Mark, f.Int())
			require.Equal(t, tc.text, f.String(), tc.Mark)

			text, err := f.Text(10)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.text, text, tc.Mark)

			g, err := Parse(text)
			require.NoError(t, err, tc.Mark)
			require.True(t, f.Equal(g), tc.Mark)
		})
	}

	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e8, -1e8, 1e300} {
		_, err := New(in)
		require.Error(t, err)
		require.True(t, integer.UnsafeError.Has(err), "%+v", err)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse("1.5")
	require.NoError(t, err)
	require.True(t, integer.New(150_000_000).Equal(f.Int()))

	f, err = Parse(" -0.00000001 ")
	require.NoError(t, err)
	require.True(t, Satoshi.Neg().Equal(f))

	f, err = Parse("90071992.54740991")
	require.NoError(t, err)
	require.True(t, MaxValue.Equal(f))

	_, err = Parse("90071992.54740992")
	require.True(t, integer.UnsafeError.Has(err), "%+v", err)

	for _, s := range []string{"", "abc", "1.2.3", "0x10"} {
		_, err = Parse(s)
		require.Error(t, err, s)
		require.True(t, Error.Has(err), "%+v", err)
	}
}

func TestHexString(t *testing.T) {
	type TC struct {
		f    Fixed8
		le   string
		be   string
		Mark error
	}

	tcs := []TC{
		{f: Zero, le: "0000000000000000", be: "0x0000000000000000", Mark: oops.New("unexpected")},
		{f: Satoshi, le: "0100000000000000", be: "0x0000000000000001", Mark: oops.New("unexpected")},
		{f: One, le: "00e1f50500000000", be: "0x0000000005f5e100", Mark: oops.New("unexpected")},
		{f: One.Neg(), le: "001f0afa", be: "0xfa0a1f00", Mark: oops.New("unexpected")},
		{f: Satoshi.Neg(), le: "ff", be: "0xff", Mark: oops.New("unexpected")},
		{f: MaxValue, le: "ffffffffffff1f00", be: "0x001fffffffffffff", Mark: oops.New("unexpected")},
		{
			f:    FromInt(integer.MustParse("0x00ffffffffffffffff", 16)),
			le:   "ffffffffffffffff00",
			be:   "0x00ffffffffffffffff",
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.f), func(t *testing.T) {
			require.Equal(t, tc.le, tc.f.HexString(), tc.Mark)

			be, err := tc.f.Text(16)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.be, be, tc.Mark)

			x, err := integer.Parse(be, 16)
			require.NoError(t, err, tc.Mark)
			require.True(t, tc.f.Equal(FromInt(x)), tc.Mark)
		})
	}
}

func TestText(t *testing.T) {
	for _, base := range []int{0, 2, 7, 8} {
		s, err := One.Text(base)
		require.Error(t, err)
		require.True(t, integer.RadixError.Has(err), "%+v", err)
		require.Empty(t, s)
	}
}

func TestCmp(t *testing.T) {
	require.Equal(t, -1, Zero.Cmp(Satoshi))
	require.Equal(t, 1, One.Cmp(Satoshi))
	require.Equal(t, 0, One.Cmp(FromInt(Scale)))
	require.Equal(t, -1, MinValue.Sign())
	require.Equal(t, 0, Zero.Sign())
	require.Equal(t, 1, MaxValue.Sign())

	// Copies share the immutable value.
	g := One
	require.True(t, g.Equal(One))
}

func TestMarshalJSON(t *testing.T) {
	type Payment struct {
		Amount Fixed8  `json:"amount"`
		Fee    *Fixed8 `json:"fee,omitempty"`
	}

	amount, err := New(1.5)
	require.NoError(t, err)

	data, err := json.Marshal(Payment{Amount: amount})
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":"1.5"}`, string(data))

	var p Payment
	require.NoError(t, json.Unmarshal(data, &p))
	require.True(t, amount.Equal(p.Amount))
	require.Nil(t, p.Fee)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":0.1,"fee":"0.00000001"}`), &p))
	require.Equal(t, "0.1", p.Amount.String())
	require.NotNil(t, p.Fee)
	require.True(t, Satoshi.Equal(*p.Fee))

	require.Error(t, json.Unmarshal([]byte(`{"amount":"one"}`), &p))

	text, err := One.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1", string(text))
}

func TestUnmarshalText(t *testing.T) {
	var f Fixed8
	require.NoError(t, f.UnmarshalText([]byte("1.5")))
	require.Equal(t, "1.5", f.String())

	for _, in := range []string{"one", `"one"`, "90071992.54740992", `"-90071992.54740992"`, `"unterminated`} {
		g := One

		var err error
		if len(in) > 0 && in[0] == '"' {
			err = g.UnmarshalJSON([]byte(in))
		} else {
			err = g.UnmarshalText([]byte(in))
		}

		require.Error(t, err, in)
		require.True(t, Error.Has(err), "%s: %+v", in, err)
		require.True(t, g.Equal(One), in)
	}

	err := f.UnmarshalText([]byte("90071992.54740992"))
	require.True(t, integer.UnsafeError.Has(err), "%+v", err)
}

func BenchmarkString(b *testing.B) {
	f, err := New(1.23456789)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for n := 0; n < b.N; n++ {
		_ = f.String()
	}
}
