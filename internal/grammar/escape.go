package grammar

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/errorutil"
)

// Unescape decodes each 3-byte substring of the form "% HEXDIG HEXDIG" into
// the hex-decoded byte and returns the result as text.
//
// Unlike URI unescaping, the contract is strict: a '%' not followed by two
// hex digits fails, and the decoded byte sequence must be valid UTF-8.
// Input without '%' is returned unchanged without copying.
func Unescape[T ~string | ~[]byte](s T) (string, error) {
	n := strings.Count(string(s), "%")
	if n == 0 {
		return string(s), nil
	}

	var b strings.Builder
	// each escape consumes 3 input chars and yields 1 byte
	if g := len(s) - 2*n; g > 0 {
		b.Grow(g)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedEscape, "truncated or non-hex sequence at offset %d", i))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedEscape, "unescaped bytes are not valid UTF-8"))
	}
	return out, nil
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
