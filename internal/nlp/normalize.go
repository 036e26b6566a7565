// Package nlp holds the text heuristics used to read orders out of chat turns.
// Every function here is pure and safe for concurrent use.
package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxTokens bounds the keyword set returned by Normalize.
	MaxTokens = 8

	minTokenRunes = 2
)

// stopwords are greetings, pronouns and fillers that never identify a product.
var stopwords = toSet(
	// Cyrillic
	"сайн", "байна", "байнуу", "бна", "уу", "үү", "юу", "вэ", "бэ", "мэнд", "сайхан",
	"би", "та", "бид", "тэр", "энэ", "эн", "миний", "таны", "танай", "манай", "надад", "танд",
	"нь", "ба", "бол", "гэж", "гэсэн", "мөн", "ч", "л", "шүү", "дээ", "даа", "доо", "дөө",
	"байгаа", "байх", "байдаг", "хэд", "хэдэн", "ямар", "яаж", "хаана",
	"авах", "авъя", "авья", "авмаар", "хүсч", "хүсэж", "сонирхож", "сонирхоё", "зарах", "зарна",
	"баярлалаа", "баярлаа", "за", "тийм", "үгүй", "ок", "okey",
	// Romanized
	"hi", "hello", "sain", "bna", "baina", "bnuu", "uu", "yu", "ve", "be", "bi", "ta", "ene", "ter",
	"ok", "za", "thanks", "thank", "bayarlalaa", "bn", "bnu", "avya", "avay", "avii", "hed",
)

// synonyms expands romanized domain terms into native-script keywords.
var synonyms = map[string][]string{
	"zalguur":  {"залгуур", "ухаалаг"},
	"plug":     {"залгуур", "ухаалаг"},
	"smart":    {"ухаалаг"},
	"olc":      {"олс"},
	"ols":      {"олс"},
	"tatlaga":  {"татлага", "олс"},
	"ozon":     {"озон"},
	"ozone":    {"озон"},
	"aparat":   {"аппарат"},
	"apparat":  {"аппарат"},
	"devsger":  {"дэвсгэр"},
	"unertuul": {"үнэртүүлэгч"},
}

// Normalize turns free text into a bounded, deduplicated keyword list.
//
// Latin tokens are additionally transliterated to Cyrillic and known romanized
// terms are expanded through the synonym table. Tokens keep first-seen order:
// original tokens, then transliterations, then synonym expansions.
func Normalize(text string) []string {
	fields := strings.Fields(Canonical(text))

	primary := make([]string, 0, len(fields))
	var translits, expansions []string

	for _, field := range fields {
		if !isKeyword(field) {
			continue
		}
		primary = append(primary, field)

		if !hasLatin(field) {
			continue
		}
		if translit := Transliterate(field); translit != field && isKeyword(translit) {
			translits = append(translits, translit)
		}
		for _, expansion := range synonyms[field] {
			if isKeyword(expansion) {
				expansions = append(expansions, expansion)
			}
		}
	}

	tokens := make([]string, 0, MaxTokens)
	seen := make(map[string]struct{}, MaxTokens)
	for _, group := range [][]string{primary, translits, expansions} {
		for _, token := range group {
			if len(tokens) == MaxTokens {
				return tokens
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// Canonical lower-cases text, maps × to x and replaces every other
// punctuation or symbol rune with a space. Whitespace is collapsed.
func Canonical(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '×':
			r = 'x'
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
		default:
			r = ' '
		}

		if r == ' ' {
			if !space {
				b.WriteRune(' ')
			}
			space = true

			continue
		}
		b.WriteRune(r)
		space = false
	}

	return strings.TrimRight(b.String(), " ")
}

func isKeyword(token string) bool {
	if utf8.RuneCountInString(token) < minTokenRunes {
		return false
	}
	_, stop := stopwords[token]

	return !stop
}

func hasLatin(token string) bool {
	for _, r := range token {
		if r < utf8.RuneSelf && unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}

	return set
}
