package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

// MinTokenLength is the shortest token kept by Tokenize, exclusive.
const MinTokenLength = 3

// NormalizeEmail trims and lowercases an email address. It is the only form
// in which emails are stored and compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether email is a bare RFC 5322 address.
func IsValidEmail(email string) bool {
	if email == "" || len(email) > 320 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && addr.Name == ""
}

// Tokenize lowercases text and splits it on any rune that is not a letter or
// digit, keeping tokens longer than MinTokenLength runes. No stemming or
// stopword removal is applied.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > MinTokenLength {
			out = append(out, f)
		}
	}
	return out
}

// NormalizeTags trims, lowercases and de-duplicates tags, dropping empties.
// Order of first occurrence is preserved.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ContainsFold reports whether substr is within s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
