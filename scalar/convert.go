package scalar

import "strconv"

// Converters mirror the validators but lean on strconv directly, so they accept
// anything strconv can parse for the width; in particular floats round-trip
// through Format's exponent notation even though the token grammar forbids it.

// ToUint8 converts s to a uint8.
func ToUint8(s string) (uint8, bool) {
	n, err := strconv.ParseUint(unsigned(s), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// ToUint16 converts s to a uint16.
func ToUint16(s string) (uint16, bool) {
	n, err := strconv.ParseUint(unsigned(s), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// ToUint32 converts s to a uint32.
func ToUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(unsigned(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// ToUint64 converts s to a uint64.
func ToUint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(unsigned(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToInt8 converts s to an int8.
func ToInt8(s string) (int8, bool) {
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return int8(n), true
}

// ToInt16 converts s to an int16.
func ToInt16(s string) (int16, bool) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(n), true
}

// ToInt32 converts s to an int32.
func ToInt32(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ToInt64 converts s to an int64.
func ToInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToFloat32 converts s to a float32. Out-of-range magnitudes saturate to ±Inf
// and still succeed, as C's strtof does.
func ToFloat32(s string) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && err.(*strconv.NumError).Err != strconv.ErrRange {
		return 0, false
	}
	return float32(f), true
}

// ToFloat64 converts s to a float64. Out-of-range magnitudes saturate to ±Inf
// and still succeed.
func ToFloat64(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && err.(*strconv.NumError).Err != strconv.ErrRange {
		return 0, false
	}
	return f, true
}

// Parse converts s into the field of v selected by t.
// On failure v is left untouched.
//
// Bool conversion is permissive; "1" and case-insensitive "true" store true,
// anything else stores false, and Parse reports success either way. Use IsBool
// to reject malformed tokens first. String conversion truncates silently at
// StringCap-1 bytes. Char stores the first byte of s, or NUL if s is empty.
func Parse(s string, v *Value, t Type) bool {
	if v == nil {
		return false
	}

	switch t {
	case Uint8:
		n, ok := ToUint8(s)
		if ok {
			v.U8 = n
		}
		return ok
	case Uint16:
		n, ok := ToUint16(s)
		if ok {
			v.U16 = n
		}
		return ok
	case Uint32:
		n, ok := ToUint32(s)
		if ok {
			v.U32 = n
		}
		return ok
	case Uint64:
		n, ok := ToUint64(s)
		if ok {
			v.U64 = n
		}
		return ok
	case Int8:
		n, ok := ToInt8(s)
		if ok {
			v.I8 = n
		}
		return ok
	case Int16:
		n, ok := ToInt16(s)
		if ok {
			v.I16 = n
		}
		return ok
	case Int32:
		n, ok := ToInt32(s)
		if ok {
			v.I32 = n
		}
		return ok
	case Int64:
		n, ok := ToInt64(s)
		if ok {
			v.I64 = n
		}
		return ok
	case Float32:
		f, ok := ToFloat32(s)
		if ok {
			v.F32 = f
		}
		return ok
	case Float64:
		f, ok := ToFloat64(s)
		if ok {
			v.F64 = f
		}
		return ok
	case Bool:
		v.B = s == "1" || EqualFold(s, "true")
		return true
	case String:
		v.SetString(s)
		return true
	case Char:
		if s == "" {
			v.Ch = 0
		} else {
			v.Ch = s[0]
		}
		return true
	default:
		return false
	}
}

// unsupported is formatted for type tags Format does not recognise.
const unsupported = "Unsupported Type"

// Format writes the field of v selected by t into dst as text, always
// NUL-terminating, truncating if dst is too small. It returns the content
// length written, excluding the terminator. An unrecognised tag formats a
// fixed placeholder rather than failing. Zero-length dst or nil v write
// nothing.
func Format(dst []byte, v *Value, t Type) int {
	if len(dst) == 0 || v == nil {
		return 0
	}

	var scratch [StringCap]byte
	var text []byte

	switch t {
	case Uint8:
		text = strconv.AppendUint(scratch[:0], uint64(v.U8), 10)
	case Uint16:
		text = strconv.AppendUint(scratch[:0], uint64(v.U16), 10)
	case Uint32:
		text = strconv.AppendUint(scratch[:0], uint64(v.U32), 10)
	case Uint64:
		text = strconv.AppendUint(scratch[:0], v.U64, 10)
	case Int8:
		text = strconv.AppendInt(scratch[:0], int64(v.I8), 10)
	case Int16:
		text = strconv.AppendInt(scratch[:0], int64(v.I16), 10)
	case Int32:
		text = strconv.AppendInt(scratch[:0], int64(v.I32), 10)
	case Int64:
		text = strconv.AppendInt(scratch[:0], v.I64, 10)
	case Float32:
		text = strconv.AppendFloat(scratch[:0], float64(v.F32), 'g', -1, 32)
	case Float64:
		text = strconv.AppendFloat(scratch[:0], v.F64, 'g', -1, 64)
	case Bool:
		if v.B {
			text = append(scratch[:0], "true"...)
		} else {
			text = append(scratch[:0], "false"...)
		}
	case Char:
		text = append(scratch[:0], v.Ch)
	case String:
		text = v.Str[:BoundedLen(v.Str[:])]
	default:
		text = append(scratch[:0], unsupported...)
	}

	n := len(text)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst[:n], text)
	dst[n] = 0
	return n
}
