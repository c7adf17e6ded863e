// Package scalar validates and converts textual tokens to and from a fixed set of
// scalar representations; unsigned and signed integers of 8 to 64 bits, 32 and 64
// bit floats, booleans, single characters and a small inline string.
//
// Every function is pure; validation and conversion are split so callers can gate
// on the strict token grammar before converting. The grammar is deliberately
// narrower than what strconv accepts; no whitespace, no exponents, no hex.
package scalar

// StringCap is the capacity of the inline string variant, including the NUL
// terminator. Longer inputs are silently truncated; for longer strings, use
// your own buffer.
const StringCap = 32

// Type identifies the scalar kind for conversions and validation.
// It is supplied by the caller on every operation, never stored with a Value.
type Type uint8

// Scalar kinds.
const (
	None Type = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Char
	String
	Bool
)

// Value holds one scalar of any kind. Exactly one field is meaningful per use,
// selected by the Type the caller passes alongside it.
type Value struct {
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	F64 float64
	Ch  byte
	Str [StringCap]byte
	B   bool
}

// SetString copies s into the inline string, truncating at StringCap-1 bytes.
// The inline string is always NUL-terminated.
func (v *Value) SetString(s string) {
	n := len(s)
	if n > StringCap-1 {
		n = StringCap - 1
	}
	copy(v.Str[:n], s)
	v.Str[n] = 0
}

// StringValue returns the inline string up to its terminator.
func (v *Value) StringValue() string {
	return string(v.Str[:BoundedLen(v.Str[:])])
}
