package repository

import (
	"context"
	"errors"

	"shopbot/internal/domain/entity"
)

// ErrProductNotFound is returned when a product ID is unknown.
var ErrProductNotFound = errors.New("product not found")

// CatalogSearchFields are the product columns matched against keywords.
var CatalogSearchFields = []string{"name", "description", "instruction"}

// CatalogQuery describes one keyword search.
type CatalogQuery struct {
	Keywords      []string
	Fields        []string // Defaults to CatalogSearchFields. Substring search always covers all of them.
	Threshold     float64  // Similarity threshold on a 0-1 scale. Ignored by substring search.
	AvailableOnly bool
	Limit         int
}

// CatalogRepository is the read-only product store.
type CatalogRepository interface {
	// FindAvailable returns in-stock products in catalog order.
	FindAvailable(ctx context.Context) ([]*entity.Product, error)

	// FindAll returns every product in catalog order.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID returns a single product.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// SimilaritySupported checks whether the store can score string similarity.
	SimilaritySupported(ctx context.Context) (bool, error)

	// SimilaritySearch returns products where any field/keyword pair scores above the threshold.
	SimilaritySearch(ctx context.Context, query CatalogQuery) ([]*entity.Product, error)

	// SubstringSearch returns products where any field contains any keyword, case-insensitively.
	SubstringSearch(ctx context.Context, query CatalogQuery) ([]*entity.Product, error)

	// Save creates or updates a product by name. Used by catalog seeding.
	Save(ctx context.Context, product *entity.Product) error
}
