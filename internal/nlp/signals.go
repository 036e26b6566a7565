package nlp

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	phoneDigits       = 8
	minAddressRunes   = 4
	addressSeparators = ":,-–— \t\r\n"
)

var (
	// Optional +976 country code, then 2-2-4 grouped digits with optional space or hyphen separators.
	phonePattern = regexp.MustCompile(`(\+?976[\s-]?)?\d{2}[\s-]?\d{2}[\s-]?\d{4}`)

	// Longer keywords are listed first so the leftmost match takes the full phrase.
	// The keyword must end the word: "хаягийг" is an inflection, not a label.
	addressPattern = regexp.MustCompile(`(?i)(хүргэлтийн хаяг|хүргүүлэх хаяг|хүргэх хаяг|хаяг нь|хаягаа|хаяг|khayag|hayag|xayag|address)(?:[\s:,\-–—]|$)`)

	questionParticles = []string{"уу", "үү", "юу", "юү", "вэ", "бэ"}
)

// ExtractPhone returns the first 8-digit phone number in text.
func ExtractPhone(text string) (string, bool) {
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if touchesDigit(text, start, end) {
			continue
		}

		digits := keepDigits(text[start:end])
		if len(digits) < phoneDigits {
			continue
		}
		digits = digits[len(digits)-phoneDigits:]

		return digits, true
	}

	return "", false
}

// ExtractAddress returns the text following the first address keyword.
// The value must be longer than 3 runes once separators are trimmed.
func ExtractAddress(text string) (string, bool) {
	loc := addressPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}

	address := strings.TrimSpace(strings.TrimLeft(text[loc[3]:], addressSeparators))
	if utf8.RuneCountInString(address) < minAddressRunes || isQuestion(address) {
		return "", false
	}

	return address, true
}

// isQuestion reports whether the text after the keyword asks something instead of giving a value.
func isQuestion(s string) bool {
	if strings.HasSuffix(s, "?") {
		return true
	}
	fields := strings.Fields(strings.ToLower(s))

	return slices.Contains(questionParticles, fields[len(fields)-1])
}

// touchesDigit reports whether the match is glued to further digits, which means
// it is part of a longer number rather than a phone.
func touchesDigit(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); unicode.IsDigit(r) {
			return true
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
