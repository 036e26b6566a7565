package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultQuantityWindow is the number of runes searched on each side of a product name.
	DefaultQuantityWindow = 20

	maxQuantity = 99
)

var (
	// "2ш", "2 ширхэг", "3x", "2 хайрцаг"
	numberThenMarker = regexp.MustCompile(`(?:^|\s)(\d{1,2})\s*(?:x|х|ш|шир|ширхэг\p{L}*|хайрцаг\p{L}*|багц\p{L}*|pcs|sh)(?:\s|$)`)
	// "x2", "ширхэг 2"
	markerThenNumber = regexp.MustCompile(`(?:^|\s)(?:x|х|ширхэг\p{L}*)\s*(\d{1,2})(?:\s|$)`)
)

// FindPhrase locates phrase in text as a run of whole leading words. Both arguments
// must already be canonical. The last word may carry a suffix, so "олсыг" still
// contains "олс". Returned offsets count runes.
func FindPhrase(text, phrase string) (start, end int, ok bool) {
	if phrase == "" {
		return 0, 0, false
	}

	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return 0, 0, false
		}
		idx += offset

		if idx == 0 || text[idx-1] == ' ' {
			start = utf8.RuneCountInString(text[:idx])

			return start, start + utf8.RuneCountInString(phrase), true
		}
		offset = idx + len(phrase)
	}

	return 0, 0, false
}

// ContainsPhrase reports whether FindPhrase succeeds.
func ContainsPhrase(text, phrase string) bool {
	_, _, ok := FindPhrase(text, phrase)

	return ok
}

// InferQuantity looks for a count next to the product name occupying runes
// [start, end) of the canonical text. The nearest count within window runes wins;
// at equal distance the one after the name wins. Defaults to 1.
func InferQuantity(text string, start, end, window int) int {
	runes := []rune(text)
	quantity, _ := inferQuantity(runes, start, end, window, 0, len(runes))

	return quantity
}

// inferQuantity searches runes [floor, ceil) around the name. When ceil is the start
// of another name, a count between the two goes to the nearer one; on a tie it stays
// here unless this name already has a count before it. claimed is the rune offset
// where a count taken from after the name ends, or end when none was taken.
func inferQuantity(runes []rune, start, end, window, floor, ceil int) (quantity, claimed int) {
	if window <= 0 {
		window = DefaultQuantityWindow
	}
	if start < 0 || end > len(runes) || start > end {
		return 1, end
	}
	floor = min(max(floor, 0), start)
	ceil = max(min(ceil, len(runes)), end)
	bounded := ceil < len(runes) && end+window >= ceil

	before := string(runes[max(floor, start-window):start])
	after := string(runes[end:min(ceil, end+window)])

	// Before the name: the last hit is the closest one.
	beforeQty, beforeDistance := 0, -1
	for _, pattern := range []*regexp.Regexp{numberThenMarker, markerThenNumber} {
		all := pattern.FindAllStringSubmatchIndex(before, -1)
		if len(all) == 0 {
			continue
		}
		loc := all[len(all)-1]
		quantity, distance := atoi(before[loc[2]:loc[3]]), utf8.RuneCountInString(before[loc[1]:])
		if validQuantity(quantity) && (beforeDistance < 0 || distance < beforeDistance) {
			beforeQty, beforeDistance = quantity, distance
		}
	}

	// After the name: the first hit is the closest one.
	afterQty, afterDistance, afterEnd := 0, -1, end
	for _, pattern := range []*regexp.Regexp{numberThenMarker, markerThenNumber} {
		loc := pattern.FindStringSubmatchIndex(after)
		if loc == nil {
			continue
		}
		quantity, distance := atoi(after[loc[2]:loc[3]]), utf8.RuneCountInString(after[:loc[0]])
		if !validQuantity(quantity) || (afterDistance >= 0 && distance >= afterDistance) {
			continue
		}
		if bounded {
			toNext := utf8.RuneCountInString(after[loc[1]:])
			if toNext < distance || (toNext == distance && beforeDistance >= 0) {
				continue
			}
		}
		afterQty, afterDistance, afterEnd = quantity, distance, end+utf8.RuneCountInString(after[:loc[1]])
	}

	switch {
	case afterDistance >= 0 && (beforeDistance < 0 || afterDistance <= beforeDistance):
		return afterQty, afterEnd
	case beforeDistance >= 0:
		return beforeQty, end
	default:
		return 1, end
	}
}

func validQuantity(n int) bool {
	return n >= 1 && n <= maxQuantity
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
