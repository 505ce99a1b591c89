package oauth1

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s per RFC 5849 Section 3.6. Only the unreserved set
// A-Za-z0-9-._~ passes through; every other byte becomes %XX with uppercase
// hex. Stricter than net/url query escaping, which leaves characters like '+'
// and '*' alone and would break the signature base string.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
