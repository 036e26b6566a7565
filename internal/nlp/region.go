package nlp

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// DeliveryZone tells how an order is paid for.
type DeliveryZone string

const (
	// ZoneInCity addresses pay on delivery.
	ZoneInCity DeliveryZone = "in_city"
	// ZoneRemote addresses prepay by bank transfer.
	ZoneRemote DeliveryZone = "remote"
)

// RegionKeywords drive ClassifyAddress. Keywords are matched against the canonical address;
// keywords of up to shortKeywordRunes runes must match a whole word.
type RegionKeywords struct {
	Remote []string // Countryside markers: province, soum, "countryside".
	City   []string // Capital-city markers: city name, district, khoroo.
}

// DefaultRegionKeywords covers Ulaanbaatar and the provinces.
var DefaultRegionKeywords = RegionKeywords{
	Remote: []string{
		"аймаг", "сум", "сумын", "суманд", "хөдөө", "орон нутаг", "орон нутагт",
		"дархан", "эрдэнэт", "чойр", "зуунмод", "налайх", "багануур",
		"aimag", "sum", "hudoo", "khudoo", "oron nutag",
	},
	City: []string{
		"улаанбаатар", "уб", "дүүрэг", "хороо", "хороолол", "хотхон",
		"сбд", "бзд", "бгд", "хүд", "схд", "чд",
		"ulaanbaatar", "ub", "duureg", "khoroo", "horoo",
	},
}

// WithOverrides returns the keywords with non-empty overrides replacing the defaults.
func (k RegionKeywords) WithOverrides(remote, city []string) RegionKeywords {
	if len(remote) > 0 {
		k.Remote = remote
	}
	if len(city) > 0 {
		k.City = city
	}

	return k
}

// ClassifyAddress places an address in the remote zone when it names a
// countryside region and no capital-city marker. Everything else is in-city.
func ClassifyAddress(address string, keywords RegionKeywords) DeliveryZone {
	canonical := Canonical(address)
	if canonical == "" {
		return ZoneInCity
	}

	if containsAnyWord(canonical, keywords.Remote) && !containsAnyWord(canonical, keywords.City) {
		return ZoneRemote
	}

	return ZoneInCity
}

// Abbreviations such as "уб" or "чд" would otherwise match "убс" or "чдэх".
const shortKeywordRunes = 3

func containsAnyWord(text string, keywords []string) bool {
	var words []string
	for _, keyword := range keywords {
		keyword = Canonical(keyword)
		if utf8.RuneCountInString(keyword) > shortKeywordRunes {
			if ContainsPhrase(text, keyword) {
				return true
			}

			continue
		}

		if words == nil {
			words = strings.Fields(text)
		}
		if slices.Contains(words, keyword) {
			return true
		}
	}

	return false
}
