package llm

import (
	"context"
	"strings"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/service"
	"shopbot/internal/nlp"
)

var greetingWords = map[string]struct{}{
	"сайн": {}, "байна": {}, "уу": {}, "сайнуу": {}, "мэнд": {}, "мэндээ": {},
	"sn": {}, "sain": {}, "bn": {}, "baina": {}, "uu": {}, "hi": {}, "hello": {}, "hey": {},
}

// staticGenerator answers from fixed templates. It needs no network and is used
// when no model is configured, or when the model call fails.
type staticGenerator struct{}

// NewStaticGenerator returns the template-based generator.
func NewStaticGenerator() service.ReplyGenerator {
	return staticGenerator{}
}

func (staticGenerator) GenerateReply(_ context.Context, req *service.ReplyRequest) (string, error) {
	return StaticReply(req), nil
}

// StaticReply picks a template from the order state first, then the catalog match.
func StaticReply(req *service.ReplyRequest) string {
	if req.BecameReady {
		return ConfirmedReply
	}

	if order := req.Order; order != nil && order.Status == entity.OrderStatusPending && len(order.Items) > 0 {
		switch {
		case order.Phone == "" && order.Address == "":
			return AskContactReply
		case order.Phone == "":
			return AskPhoneReply
		case order.Address == "":
			return AskAddressReply
		}
	}

	if IsGreeting(req.Turn) {
		return GreetingReply
	}

	match := req.Match
	if match == nil {
		return GreetingReply
	}

	switch match.Outcome {
	case entity.MatchOutcomeEmptyCatalog:
		return EmptyCatalogReply
	case entity.MatchOutcomeAlternatives:
		return AlternativesIntro + "\n\n" + FormatCatalog(match.Offerable)
	case entity.MatchOutcomeNoMatch:
		return NoMatchIntro + "\n\n" + FormatCatalog(match.Offerable)
	case entity.MatchOutcomeMatched:
		return MatchedIntro + "\n\n" + FormatCatalog(match.Offerable)
	default:
		return FormatCatalog(match.Offerable)
	}
}

// IsGreeting reports whether the turn holds nothing but greeting words.
func IsGreeting(text string) bool {
	words := strings.Fields(nlp.Canonical(text))
	if len(words) == 0 {
		return false
	}

	for _, word := range words {
		if _, ok := greetingWords[word]; !ok {
			return false
		}
	}

	return true
}
