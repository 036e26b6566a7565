package nlp

import (
	"cmp"
	"slices"
)

// Mention is a catalog name found in a turn.
type Mention struct {
	Index    int // Position in the names slice passed to FindMentions.
	Quantity int
}

type nameSpan struct {
	index      int
	start, end int
}

// FindMentions returns one mention per name that occurs as a phrase in text,
// in the order of names. Quantities default to 1.
//
// Each name only sees the text up to its neighbours, and a count written right
// after one name is not offered to the next.
func FindMentions(text string, names []string, window int) []Mention {
	canonical := Canonical(text)
	if canonical == "" {
		return nil
	}

	var spans []nameSpan
	for idx, name := range names {
		start, end, ok := FindPhrase(canonical, Canonical(name))
		if !ok {
			continue
		}
		spans = append(spans, nameSpan{index: idx, start: start, end: end})
	}
	if len(spans) == 0 {
		return nil
	}

	byPosition := slices.Clone(spans)
	slices.SortStableFunc(byPosition, func(a, b nameSpan) int { return cmp.Compare(a.start, b.start) })

	runes := []rune(canonical)
	quantities := make(map[int]int, len(spans))
	floor := 0
	for i, span := range byPosition {
		ceil := len(runes)
		if i+1 < len(byPosition) {
			ceil = byPosition[i+1].start
		}

		quantity, claimed := inferQuantity(runes, span.start, span.end, window, floor, ceil)
		quantities[span.index] = quantity
		floor = max(floor, claimed)
	}

	mentions := make([]Mention, 0, len(spans))
	for _, span := range spans {
		mentions = append(mentions, Mention{Index: span.index, Quantity: quantities[span.index]})
	}

	return mentions
}
