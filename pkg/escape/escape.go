// Package escape converts text to and from codepoint escape notation.
//
// Encode writes one `\u` token per rune with at least four uppercase hex
// digits. Decode recognises only the braced form `\u{XXXX}` with exactly four
// hex digits in either case; EncodeBraced produces that form.
package escape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// tokenRe matches one braced escape token. The hex digits are the only
// case-insensitive part.
var tokenRe = regexp.MustCompile(`\\u\{([0-9a-fA-F]{4})\}`)

const (
	tokenLen       = 6 // `\u` + 4 digits
	bracedTokenLen = 8 // `\u{` + 4 digits + `}`
)

// Encode returns s as a sequence of `\u` tokens, one per rune, in order and
// without separators. Runes above U+FFFF widen the hex field instead of being
// truncated or split into surrogates.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * tokenLen)
	for _, r := range s {
		fmt.Fprintf(&b, "\\u%04X", r)
	}
	return b.String()
}

// EncodeBraced is like Encode but wraps the digits in braces, the form Decode
// accepts. Decode(EncodeBraced(s)) == s for any s inside the Basic
// Multilingual Plane.
func EncodeBraced(s string) string {
	var b strings.Builder
	b.Grow(len(s) * bracedTokenLen)
	for _, r := range s {
		fmt.Fprintf(&b, "\\u{%04X}", r)
	}
	return b.String()
}

// Decode replaces every `\u{XXXX}` token in s with the rune it names. Text
// that is not a complete token is copied unchanged. If any token names a
// value that is not a Unicode scalar value, Decode returns an
// *InvalidCodepointError for the first such token and no output.
func Decode(s string) (string, error) {
	matches := tokenRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		digits := s[m[2]:m[3]]

		// tokenRe only admits exactly four hex digits, so parsing cannot fail.
		v, _ := strconv.ParseUint(digits, 16, 32)
		r := rune(v)
		if !utf8.ValidRune(r) {
			return "", &InvalidCodepointError{Token: s[start:end], Offset: start, Value: r}
		}

		b.WriteString(s[last:start])
		b.WriteRune(r)
		last = end
	}
	b.WriteString(s[last:])
	return b.String(), nil
}
