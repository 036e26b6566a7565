package usecase

import (
	"context"

	"shopbot/internal/domain/entity"
)

// CatalogMatcher looks products up by turn keywords.
type CatalogMatcher interface {
	// Match returns products where any searchable field matches any keyword, in catalog
	// order and capped by the configured limit. Without keywords it returns the catalog
	// itself, restricted to in-stock products when availableOnly is set.
	Match(ctx context.Context, keywords []string, availableOnly bool) ([]*entity.Product, error)

	// MatchTurn runs both stock scopes for a turn and classifies what can be offered.
	MatchTurn(ctx context.Context, keywords []string) (*entity.MatchResult, error)
}
