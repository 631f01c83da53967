package tokenizer

import "strings"

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ', '\r':
		return true
	}
	return false
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool { return isASCIIUpper(r) || isASCIILower(r) }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
func isASCIIAlphanumeric(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

func isC0Control(r rune) bool { return r <= 0x1F }

func isControl(r rune) bool {
	return isC0Control(r) || (r >= 0x7F && r <= 0x9F)
}

func isSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDFFF }

func isNonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

// matchKeywordASCII reports whether first, followed by the bytes in rest,
// spells keyword, compared ASCII case-insensitively. It is used by states
// that need to look one character ahead of what they have already
// consumed without reconsuming it (PUBLIC/SYSTEM after a DOCTYPE name).
func matchKeywordASCII(first rune, rest []byte, keyword string) bool {
	if len(keyword) == 0 || len(rest) < len(keyword)-1 {
		return false
	}
	candidate := string(first) + string(rest[:len(keyword)-1])
	return strings.EqualFold(candidate, keyword)
}
