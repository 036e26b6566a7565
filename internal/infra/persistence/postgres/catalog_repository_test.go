package postgres

import (
	"context"
	"testing"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, repo repository.CatalogRepository) {
	t.Helper()

	products := []*entity.Product{
		{Name: "Машины татлага олс", Price: 39900, Description: "5 м урт, 18 тн даац", Available: true},
		{Name: "Искра озон аппарат", Price: 52000, Description: "Озон үүсгэгч", Instruction: "Арьсаа угааж хуурайшуулах", Available: true},
		{Name: "Ухаалаг залгуур", Price: 25000, Description: "Wi-Fi удирдлагатай", Available: false},
	}
	for _, product := range products {
		require.NoError(t, repo.Save(context.Background(), product))
		require.NotZero(t, product.ID)
	}
}

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, product := range products {
		out = append(out, product.Name)
	}

	return out
}

func TestCatalogRepository_FindAvailableAndAll(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.FindAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	seedCatalog(t, repo)

	available, err := repo.FindAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Машины татлага олс", "Искра озон аппарат"}, names(available))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogRepository_SaveUpsertsByName(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()
	seedCatalog(t, repo)

	updated := &entity.Product{Name: "Ухаалаг залгуур", Price: 27000, Available: true}
	require.NoError(t, repo.Save(ctx, updated))

	product, err := repo.FindByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(27000), product.Price)
	assert.True(t, product.Available)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_SubstringSearch(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()
	seedCatalog(t, repo)

	tests := []struct {
		name     string
		query    repository.CatalogQuery
		expected []string
	}{
		{
			name:     "name keyword is case-insensitive",
			query:    repository.CatalogQuery{Keywords: []string{"искра"}, AvailableOnly: true},
			expected: []string{"Искра озон аппарат"},
		},
		{
			name:     "instruction keyword",
			query:    repository.CatalogQuery{Keywords: []string{"хуурайшуулах"}, AvailableOnly: true},
			expected: []string{"Искра озон аппарат"},
		},
		{
			name:     "any keyword matches",
			query:    repository.CatalogQuery{Keywords: []string{"олс", "озон"}, AvailableOnly: true},
			expected: []string{"Машины татлага олс", "Искра озон аппарат"},
		},
		{
			name:     "out of stock only in any-stock scope",
			query:    repository.CatalogQuery{Keywords: []string{"залгуур"}, AvailableOnly: true},
			expected: []string{},
		},
		{
			name:     "any-stock scope",
			query:    repository.CatalogQuery{Keywords: []string{"залгуур"}},
			expected: []string{"Ухаалаг залгуур"},
		},
		{
			name:     "limit",
			query:    repository.CatalogQuery{Keywords: []string{"о"}, Limit: 1},
			expected: []string{"Машины татлага олс"},
		},
		{
			name:     "no keywords",
			query:    repository.CatalogQuery{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.SubstringSearch(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(products))
		})
	}
}

func TestCatalogRepository_SimilarityCheckFailsOnSQLite(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))

	supported, err := repo.SimilaritySupported(context.Background())
	assert.Error(t, err)
	assert.False(t, supported)
}

func TestSearchFields(t *testing.T) {
	assert.Equal(t, repository.CatalogSearchFields, searchFields(nil))
	assert.Equal(t, []string{"name"}, searchFields([]string{"name", "price; DROP TABLE products"}))
	assert.Equal(t, repository.CatalogSearchFields, searchFields([]string{"unknown"}))
}
