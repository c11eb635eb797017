package chars

// Class bits for the 128 ASCII code points.
const (
	classSpace uint8 = 1 << iota
	classDigit
	classUpper
	classLower
)

const caseGap = 'a' - 'A'

// classes holds the classification bits for every ASCII code point.
var classes [128]uint8

func init() {
	for c := rune(0); c <= ' '; c++ {
		classes[c] |= classSpace
	}
	for c := '0'; c <= '9'; c++ {
		classes[c] |= classDigit
	}
	for c := 'A'; c <= 'Z'; c++ {
		classes[c] |= classUpper
	}
	for c := 'a'; c <= 'z'; c++ {
		classes[c] |= classLower
	}
}

func is(r rune, class uint8) bool {
	return r >= 0 && r < int32(len(classes)) && classes[r]&class != 0
}

// IsWhitespace reports whether r is ASCII whitespace, meaning any code point
// at or below 0x20. This includes control characters, space, '\r', and '\n'.
func IsWhitespace(r rune) bool { return is(r, classSpace) }

// IsLineBreak reports whether r terminates a line ('\r' or '\n').
func IsLineBreak(r rune) bool { return r == '\r' || r == '\n' }

// IsInlineWhitespace reports whether r is whitespace that does not terminate
// a line. This is the run a CSV value scan may buffer without crossing a row
// boundary.
func IsInlineWhitespace(r rune) bool { return IsWhitespace(r) && !IsLineBreak(r) }

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return is(r, classDigit) }

// IsUpper reports whether r is an ASCII uppercase letter.
func IsUpper(r rune) bool { return is(r, classUpper) }

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r rune) bool { return is(r, classLower) }

// ToUpper returns the uppercase form of an ASCII letter. Every other rune is
// returned unchanged; no locale rules apply.
func ToUpper(r rune) rune {
	if IsLower(r) {
		return r - caseGap
	}
	return r
}

// ToLower returns the lowercase form of an ASCII letter. Every other rune is
// returned unchanged.
func ToLower(r rune) rune {
	if IsUpper(r) {
		return r + caseGap
	}
	return r
}
