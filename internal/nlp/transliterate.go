package nlp

import "strings"

// digraphs are matched before single letters.
var digraphs = map[string]string{
	"kh": "х",
	"ch": "ч",
	"sh": "ш",
	"ts": "ц",
	"ya": "я",
	"yo": "ё",
	"yu": "ю",
	"ye": "е",
	"ai": "ай",
	"ei": "эй",
	"oi": "ой",
	"ui": "уй",
	"ii": "ий",
}

var letters = map[rune]string{
	'a': "а",
	'b': "б",
	'c': "ц",
	'd': "д",
	'e': "э",
	'f': "ф",
	'g': "г",
	'h': "х",
	'i': "и",
	'j': "ж",
	'k': "к",
	'l': "л",
	'm': "м",
	'n': "н",
	'o': "о",
	'p': "п",
	'q': "к",
	'r': "р",
	's': "с",
	't': "т",
	'u': "у",
	'v': "в",
	'w': "в",
	'x': "х",
	'y': "й",
	'z': "з",
	'ö': "ө",
	'ü': "ү",
}

// Transliterate maps Latin letters of a lower-case token to approximate
// Mongolian Cyrillic. Runes without a mapping are kept as they are.
func Transliterate(token string) string {
	var b strings.Builder
	b.Grow(len(token) * 2)

	runes := []rune(token)
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if mapped, ok := digraphs[string(runes[i:i+2])]; ok {
				b.WriteString(mapped)
				i++

				continue
			}
		}

		if mapped, ok := letters[runes[i]]; ok {
			b.WriteString(mapped)

			continue
		}
		b.WriteRune(runes[i])
	}

	return b.String()
}
