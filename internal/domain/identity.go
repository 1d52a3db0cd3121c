package domain

import "strings"

// TokenLength is the fixed width of a user identifier issued by the service.
const TokenLength = 24

type Token string

type Identity struct {
	UserID      Token
	CourseCode  string
	DisplayName string
}

// ValidToken reports whether raw is exactly 24 hexadecimal characters.
func ValidToken(raw string) bool {
	if len(raw) != TokenLength {
		return false
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}

func (t Token) Valid() bool {
	return ValidToken(string(t))
}

// CleanToken strips whitespace and one pair of surrounding quotes, which
// appear when the identifier was stored JSON-encoded.
func CleanToken(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if len(cleaned) >= 2 {
		first, last := cleaned[0], cleaned[len(cleaned)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			cleaned = cleaned[1 : len(cleaned)-1]
		}
	}

	return cleaned
}

func NormalizeCourseCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func (i Identity) Empty() bool {
	return i.UserID == "" && i.CourseCode == "" && i.DisplayName == ""
}

// Corrupt reports a present but malformed user id. An absent id is not
// corruption.
func (i Identity) Corrupt() bool {
	return i.UserID != "" && !i.UserID.Valid()
}

// Usable reports whether the identity can authenticate course-scoped calls.
func (i Identity) Usable() bool {
	return i.UserID.Valid() && strings.TrimSpace(i.CourseCode) != ""
}
