package scalar

import "strconv"

// Per-width validators. Each first checks the generic token grammar, then that
// the parsed value fits the width. 8 and 16 bit widths are checked against their
// exact bounds; 32 and 64 bit widths rely on strconv's own overflow detection.

// IsUint8 reports whether s is a valid uint8 token.
func IsUint8(s string) bool { return isUint(s, 8) }

// IsUint16 reports whether s is a valid uint16 token.
func IsUint16(s string) bool { return isUint(s, 16) }

// IsUint32 reports whether s is a valid uint32 token.
func IsUint32(s string) bool { return isUint(s, 32) }

// IsUint64 reports whether s is a valid uint64 token.
func IsUint64(s string) bool { return isUint(s, 64) }

// IsInt8 reports whether s is a valid int8 token.
func IsInt8(s string) bool { return isInt(s, 8) }

// IsInt16 reports whether s is a valid int16 token.
func IsInt16(s string) bool { return isInt(s, 16) }

// IsInt32 reports whether s is a valid int32 token.
func IsInt32(s string) bool { return isInt(s, 32) }

// IsInt64 reports whether s is a valid int64 token.
func IsInt64(s string) bool { return isInt(s, 64) }

// IsFloat32 reports whether s is a valid float32 token.
// Out-of-range magnitudes saturate rather than fail, as C's strtof does.
func IsFloat32(s string) bool { return isFloat(s, 32) }

// IsFloat64 reports whether s is a valid float64 token.
func IsFloat64(s string) bool { return isFloat(s, 64) }

// IsBool reports whether s is exactly "0", "1", or case-insensitive
// "true"/"false". Nothing else matches.
func IsBool(s string) bool {
	if s == "0" || s == "1" {
		return true
	}
	return EqualFold(s, "true") || EqualFold(s, "false")
}

// Check reports whether s is a valid token of type t.
// Char and String tokens are always valid; None never is.
func Check(s string, t Type) bool {
	switch t {
	case Uint8:
		return IsUint8(s)
	case Uint16:
		return IsUint16(s)
	case Uint32:
		return IsUint32(s)
	case Uint64:
		return IsUint64(s)
	case Int8:
		return IsInt8(s)
	case Int16:
		return IsInt16(s)
	case Int32:
		return IsInt32(s)
	case Int64:
		return IsInt64(s)
	case Float32:
		return IsFloat32(s)
	case Float64:
		return IsFloat64(s)
	case Char:
		return true
	case String:
		return true
	case Bool:
		return IsBool(s)
	default:
		return false
	}
}

func isUint(s string, bits int) bool {
	if !IsUinteger(s) {
		return false
	}
	_, err := strconv.ParseUint(unsigned(s), 10, bits)
	return err == nil
}

func isInt(s string, bits int) bool {
	if !IsInteger(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, bits)
	return err == nil
}

func isFloat(s string, bits int) bool {
	if !IsNumber(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, bits)
	return err == nil || err.(*strconv.NumError).Err == strconv.ErrRange
}

// unsigned strips the leading '+' that the token grammar allows but
// strconv.ParseUint does not.
func unsigned(s string) string {
	if s != "" && s[0] == '+' {
		return s[1:]
	}
	return s
}
