package entity

// MatchOutcome classifies what the catalog offered for a turn.
type MatchOutcome string

const (
	// MatchOutcomeMatched means in-stock products matched the keywords.
	MatchOutcomeMatched MatchOutcome = "matched"
	// MatchOutcomeAlternatives means only out-of-stock products matched; in-stock ones are offered instead.
	MatchOutcomeAlternatives MatchOutcome = "alternatives"
	// MatchOutcomeNoMatch means nothing matched but the catalog has in-stock products.
	MatchOutcomeNoMatch MatchOutcome = "no_match"
	// MatchOutcomeEmptyCatalog means there is nothing in stock to offer.
	MatchOutcomeEmptyCatalog MatchOutcome = "empty_catalog"
	// MatchOutcomeBrowse means the turn had no keywords and the in-stock catalog is offered.
	MatchOutcomeBrowse MatchOutcome = "browse"
)

// MatchResult is the catalog view of a single turn.
type MatchResult struct {
	Keywords  []string
	Outcome   MatchOutcome
	InStock   []*Product // Matches restricted to available products, or the in-stock catalog when browsing.
	AnyStock  []*Product // Matches regardless of availability.
	Offerable []*Product // What the reply may offer.
}
