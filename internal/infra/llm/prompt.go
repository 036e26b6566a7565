// Package llm produces assistant replies, either with Gemini or with fixed templates.
package llm

import (
	"fmt"
	"strings"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/service"
)

// Reply texts shared by the prompt rules and the static generator.
const (
	GreetingReply     = "Сайн байна уу, та ямар бараа сонирхож байна?"
	AskContactReply   = "Захиалгаа баталгаажуулахын тулд утасны дугаар, хүргэх хаягаа үлдээгээрэй."
	AskPhoneReply     = "Утасны дугаараа үлдээнэ үү."
	AskAddressReply   = "Хүргэх хаягаа үлдээнэ үү."
	ConfirmedReply    = "Захиалга баталгаажлаа таны захиалга маргааш хүргэгдэх болно Баярлалаа"
	EmptyCatalogReply = "Одоогоор бүтээгдэхүүний жагсаалт хоосон байна."
	AlternativesIntro = "Уучлаарай, таны сонирхсон бараа одоогоор дууссан байна. Бэлэн байгаа бараанууд:"
	NoMatchIntro      = "Таны хайсан бараа олдсонгүй. Манайд дараах бараанууд бий:"
	MatchedIntro      = "Танд санал болгох бараанууд:"
)

const systemPromptRules = `Та Facebook мессежүүдэд хариулах туслах. Дүрэм:
- Хэрэглэгч зөвхөн мэндэлбэл яг ингэж хариул: "` + GreetingReply + `"
- Хэрэглэгч бүтээгдэхүүн сонирхвол доорх жагсаалтаас НЭР + ҮНЭ + товч тайлбараар 1., 2., ... гэж жагсаа.
- Жагсаалтад байхгүй бараа, үнэ зохиож болохгүй.
- Хэрэглэгч захиалах сонирхол илэрхийлбэл ЭХЛЭЭД утасны дугаар, хүргэх хаяг ХОЁРЫГ нэг асуултаар хүс: "` + AskContactReply + `"
- Хэрэв зөвхөн нэгийг өгвөл үлдсэнийг нь л товч асуу.
- Захиалгын төлөв "баталгаажсан" бол: "` + ConfirmedReply + `" гэж хариул.`

// FormatCatalog renders products as a numbered list, or the empty-catalog sentence.
func FormatCatalog(products []*entity.Product) string {
	if len(products) == 0 {
		return EmptyCatalogReply
	}

	entries := make([]string, 0, len(products))
	for i, product := range products {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n- Үнэ: %d₮", i+1, product.Name, product.Price)
		if product.Description != "" {
			b.WriteString("\n- " + product.Description)
		}
		if product.Instruction != "" {
			b.WriteString("\n- Заавар: " + product.Instruction)
		}
		entries = append(entries, b.String())
	}

	return strings.Join(entries, "\n\n")
}

// BuildSystemPrompt combines the reply rules, the catalog excerpt and the order state.
func BuildSystemPrompt(req *service.ReplyRequest) string {
	var b strings.Builder
	b.WriteString(systemPromptRules)

	b.WriteString("\n\n")
	b.WriteString(matchGuidance(req.Match))

	b.WriteString("\n\nБэлэн бүтээгдэхүүний жагсаалт:\n")
	b.WriteString(FormatCatalog(offerable(req.Match)))

	b.WriteString("\n\nЗахиалгын төлөв: ")
	b.WriteString(describeOrder(req.Order, req.BecameReady))

	return b.String()
}

func matchGuidance(match *entity.MatchResult) string {
	if match == nil {
		return "Хайлтын үр дүн: байхгүй."
	}

	switch match.Outcome {
	case entity.MatchOutcomeMatched:
		return "Хайлтын үр дүн: хэрэглэгчийн асуусан бараа бэлэн байна."
	case entity.MatchOutcomeAlternatives:
		return "Хайлтын үр дүн: хэрэглэгчийн асуусан бараа дууссан. Үүнийг хэлээд жагсаалтаас өөр бараа санал болго."
	case entity.MatchOutcomeNoMatch:
		return "Хайлтын үр дүн: асуусан бараа олдсонгүй. Жагсаалтаас санал болго."
	case entity.MatchOutcomeEmptyCatalog:
		return "Хайлтын үр дүн: одоогоор бараа байхгүй. Үүнийг эелдгээр хэл."
	default:
		return "Хайлтын үр дүн: тодорхой бараа асуугаагүй."
	}
}

func describeOrder(order *entity.Order, becameReady bool) string {
	if order == nil {
		return "захиалга байхгүй."
	}
	if order.Status == entity.OrderStatusReady {
		if becameReady {
			return "баталгаажсан."
		}

		return "өмнө баталгаажсан, шинэ захиалга эхлээгүй."
	}

	missing := make([]string, 0, 3)
	if order.Phone == "" {
		missing = append(missing, "утасны дугаар")
	}
	if order.Address == "" {
		missing = append(missing, "хүргэх хаяг")
	}
	if len(order.Items) == 0 {
		missing = append(missing, "бараа")
	}
	if len(missing) == 0 {
		return "хүлээгдэж буй."
	}

	return "хүлээгдэж буй, дутуу: " + strings.Join(missing, ", ") + "."
}

func offerable(match *entity.MatchResult) []*entity.Product {
	if match == nil {
		return nil
	}

	return match.Offerable
}
