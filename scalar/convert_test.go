package scalar_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/streambuf/scalar"
)

func format(v *scalar.Value, t scalar.Type) string {
	var buf [64]byte
	n := scalar.Format(buf[:], v, t)
	return string(buf[:n])
}

func TestConverters(t *testing.T) {
	if n, ok := scalar.ToUint8("255"); !ok || n != 255 {
		t.Fatalf("got %v %v", n, ok)
	}
	if _, ok := scalar.ToUint8("256"); ok {
		t.Fatal("out-of-range uint8 converted")
	}
	if _, ok := scalar.ToUint8("-1"); ok {
		t.Fatal("negative uint8 converted")
	}
	if n, ok := scalar.ToInt8("-128"); !ok || n != -128 {
		t.Fatalf("got %v %v", n, ok)
	}
	if _, ok := scalar.ToInt8("-129"); ok {
		t.Fatal("out-of-range int8 converted")
	}
	if n, ok := scalar.ToUint64("18446744073709551615"); !ok || n != math.MaxUint64 {
		t.Fatalf("got %v %v", n, ok)
	}
	if f, ok := scalar.ToFloat64("1.5"); !ok || f != 1.5 {
		t.Fatalf("got %v %v", f, ok)
	}
	if _, ok := scalar.ToFloat64("one"); ok {
		t.Fatal("non-number converted")
	}

	// Range overflow saturates instead of failing, like strtof.
	huge := "1" + strings.Repeat("0", 60)
	if f, ok := scalar.ToFloat32(huge); !ok || !math.IsInf(float64(f), 1) {
		t.Fatalf("got %v %v, wanted +Inf true", f, ok)
	}
}

func TestParse(t *testing.T) {
	var v scalar.Value

	if !scalar.Parse("200", &v, scalar.Uint8) {
		t.Fatal("parse failed")
	}
	td.Cmp(t, v.U8, uint8(200))

	if !scalar.Parse("-12345", &v, scalar.Int16) {
		t.Fatal("parse failed")
	}
	td.Cmp(t, v.I16, int16(-12345))

	if !scalar.Parse("3.25", &v, scalar.Float32) {
		t.Fatal("parse failed")
	}
	td.Cmp(t, v.F32, float32(3.25))

	if scalar.Parse("256", &v, scalar.Uint8) {
		t.Fatal("out-of-range parse succeeded")
	}
	td.Cmp(t, v.U8, uint8(200)) // untouched on failure

	if scalar.Parse("5", nil, scalar.Uint8) {
		t.Fatal("nil value parse succeeded")
	}
	if scalar.Parse("5", &v, scalar.None) {
		t.Fatal("none type parse succeeded")
	}
}

func TestParseBool(t *testing.T) {
	// Bool conversion is permissive; only validation rejects malformed tokens.
	testCases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"false", false},
		{"banana", false},
		{"", false},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%q", tC.in), func(t *testing.T) {
			var v scalar.Value
			if !scalar.Parse(tC.in, &v, scalar.Bool) {
				t.Fatal("bool parse failed")
			}
			if v.B != tC.want {
				t.Fatalf("got %v, wanted %v", v.B, tC.want)
			}
		})
	}
}

func TestParseString(t *testing.T) {
	var v scalar.Value

	if !scalar.Parse("hello", &v, scalar.String) {
		t.Fatal("string parse failed")
	}
	td.Cmp(t, v.StringValue(), "hello")

	// Truncation at StringCap-1 is silent.
	long := strings.Repeat("x", scalar.StringCap*2)
	if !scalar.Parse(long, &v, scalar.String) {
		t.Fatal("long string parse failed")
	}
	td.Cmp(t, v.StringValue(), long[:scalar.StringCap-1])
	if v.Str[scalar.StringCap-1] != 0 {
		t.Fatal("inline string not terminated")
	}
}

func TestParseChar(t *testing.T) {
	var v scalar.Value

	if !scalar.Parse("x", &v, scalar.Char) {
		t.Fatal("char parse failed")
	}
	td.Cmp(t, v.Ch, byte('x'))

	if !scalar.Parse("", &v, scalar.Char) {
		t.Fatal("empty char parse failed")
	}
	td.Cmp(t, v.Ch, byte(0))
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		set  func(*scalar.Value)
		ty   scalar.Type
		want string
	}{
		{func(v *scalar.Value) { v.U8 = 200 }, scalar.Uint8, "200"},
		{func(v *scalar.Value) { v.U16 = 65535 }, scalar.Uint16, "65535"},
		{func(v *scalar.Value) { v.U32 = 4000000000 }, scalar.Uint32, "4000000000"},
		{func(v *scalar.Value) { v.U64 = math.MaxUint64 }, scalar.Uint64, "18446744073709551615"},
		{func(v *scalar.Value) { v.I8 = -128 }, scalar.Int8, "-128"},
		{func(v *scalar.Value) { v.I16 = -32768 }, scalar.Int16, "-32768"},
		{func(v *scalar.Value) { v.I32 = -2147483648 }, scalar.Int32, "-2147483648"},
		{func(v *scalar.Value) { v.I64 = math.MinInt64 }, scalar.Int64, "-9223372036854775808"},
		{func(v *scalar.Value) { v.F32 = 1.5 }, scalar.Float32, "1.5"},
		{func(v *scalar.Value) { v.F64 = -0.25 }, scalar.Float64, "-0.25"},
		{func(v *scalar.Value) { v.B = true }, scalar.Bool, "true"},
		{func(v *scalar.Value) { v.B = false }, scalar.Bool, "false"},
		{func(v *scalar.Value) { v.Ch = 'q' }, scalar.Char, "q"},
		{func(v *scalar.Value) { v.SetString("hi") }, scalar.String, "hi"},
		{func(v *scalar.Value) {}, scalar.None, "Unsupported Type"},
		{func(v *scalar.Value) {}, scalar.Type(200), "Unsupported Type"},
	}

	for _, tC := range testCases {
		t.Run(tC.want+fmt.Sprintf("-%v", tC.ty), func(t *testing.T) {
			var v scalar.Value
			tC.set(&v)

			if got := format(&v, tC.ty); got != tC.want {
				t.Fatalf("got %q, wanted %q", got, tC.want)
			}
		})
	}
}

func TestFormatTruncates(t *testing.T) {
	var v scalar.Value
	v.U32 = 123456789

	buf := make([]byte, 5)
	n := scalar.Format(buf, &v, scalar.Uint32)

	if n != 4 {
		t.Fatalf("got length %v, wanted 4", n)
	}
	if string(buf[:n]) != "1234" || buf[4] != 0 {
		t.Fatalf("got %q, wanted %q with terminator", buf[:n], "1234")
	}

	if scalar.Format(nil, &v, scalar.Uint32) != 0 {
		t.Fatal("nil dst formatted")
	}
	if scalar.Format(buf, nil, scalar.Uint32) != 0 {
		t.Fatal("nil value formatted")
	}
}

func TestRoundTrip(t *testing.T) {
	// Format then Parse must reproduce the value for every supported type.
	var v, got scalar.Value

	v.U8 = 250
	v.U16 = 60000
	v.U32 = 4000000000
	v.U64 = math.MaxUint64
	v.I8 = -100
	v.I16 = -30000
	v.I32 = -2000000000
	v.I64 = math.MinInt64
	v.F32 = 3.14159
	v.F64 = 2.718281828459045
	v.B = true
	v.Ch = 'z'
	v.SetString("round trip")

	types := []scalar.Type{
		scalar.Uint8, scalar.Uint16, scalar.Uint32, scalar.Uint64,
		scalar.Int8, scalar.Int16, scalar.Int32, scalar.Int64,
		scalar.Float32, scalar.Float64,
		scalar.Bool, scalar.Char, scalar.String,
	}

	for _, ty := range types {
		t.Run(fmt.Sprint(ty), func(t *testing.T) {
			if !scalar.Parse(format(&v, ty), &got, ty) {
				t.Fatal("round trip parse failed")
			}
		})
	}

	td.Cmp(t, got, v)
}

func TestFloatRoundTripExponent(t *testing.T) {
	// Shortest formatting can emit exponent notation; converters must still
	// read it back even though the token grammar rejects it.
	var v scalar.Value
	v.F64 = 1e21

	text := format(&v, scalar.Float64)
	if scalar.IsFloat64(text) {
		t.Fatalf("grammar unexpectedly accepts %q", text)
	}

	f, ok := scalar.ToFloat64(text)
	if !ok || f != 1e21 {
		t.Fatalf("got %v %v, wanted 1e+21 true", f, ok)
	}
}
