package scalar

// IsNumber reports whether s matches [+|-]?digits with at most one '.', requiring
// at least one digit anywhere. Whitespace is never trimmed; trim separately.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	digit, dot := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digit
}

// IsInteger reports whether s matches [+|-]?digits+.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsUinteger reports whether s matches [+]?digits+. A minus sign never matches.
func IsUinteger(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Fold returns the ASCII lowercase of c. Non-letter bytes pass through.
func Fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// It operates byte-wise; multi-byte runes only match exactly.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if Fold(a[i]) != Fold(b[i]) {
			return false
		}
	}
	return true
}

// BoundedLen returns the length of the NUL-terminated content of b,
// or len(b) if no terminator is present.
func BoundedLen(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	return len(b)
}

// Trim removes leading and trailing ASCII whitespace from the NUL-terminated
// content of buf in place, compacting the remainder left and re-terminating.
// It returns the new content length.
func Trim(buf []byte) int {
	return trim(buf, BoundedLen(buf))
}

// TrimAt is Trim with the content first forced to terminate at max bytes.
// A max of zero or beyond len(buf) is ignored.
func TrimAt(buf []byte, max int) int {
	if max > 0 && max <= len(buf) {
		buf[max-1] = 0
	}
	return trim(buf, BoundedLen(buf))
}

func trim(buf []byte, length int) int {
	if length == 0 {
		return 0
	}

	start, end := 0, length-1
	for start <= end && isSpace(buf[start]) {
		start++
	}
	if start > end {
		buf[0] = 0
		return 0
	}
	for end >= start && isSpace(buf[end]) {
		end--
	}

	// Compact left; the ranges may overlap so copy byte by byte from the front.
	out := 0
	for i := start; i <= end; i++ {
		buf[out] = buf[i]
		out++
	}
	if out < len(buf) {
		buf[out] = 0
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
