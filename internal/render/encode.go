// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes the ordered document into the Markdown
// inventory and the HTML index page.
package render

import "strings"

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes every byte of s outside the unreserved set
// (letters, digits, "-", "_", ".", "~") and the caller-supplied safe
// set. Multi-byte UTF-8 sequences are encoded byte by byte as %XX pairs.
// Markdown links keep "/" safe; hosted download URLs keep ":" and "/".
func Quote(s, safe string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(safe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}
