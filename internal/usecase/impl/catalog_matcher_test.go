package impl

import (
	"context"
	"testing"
	"time"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"
	mockRepo "shopbot/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ropeProduct  = &entity.Product{ID: 1, Name: "Машины татлага олс", Price: 39900, Available: true}
	ozoneProduct = &entity.Product{ID: 2, Name: "Искра озон аппарат", Price: 52000, Available: true}
	plugProduct  = &entity.Product{ID: 3, Name: "Ухаалаг залгуур", Price: 25000, Available: false}
)

func newTestCatalogMatcher(t *testing.T) (*catalogMatcher, *mockRepo.MockCatalogRepository) {
	t.Helper()

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	matcher := NewCatalogMatcher(CatalogMatcherParams{
		CatalogRepo: catalogRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*catalogMatcher)

	return matcher, catalogRepo
}

func scopeQuery(availableOnly bool) any {
	return mock.MatchedBy(func(query repository.CatalogQuery) bool {
		return query.AvailableOnly == availableOnly
	})
}

func TestCatalogMatcher_Match_SimilarityTier(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()

	catalogRepo.EXPECT().SimilaritySupported(ctx).Return(true, nil).Once()
	catalogRepo.EXPECT().
		SimilaritySearch(ctx, repository.CatalogQuery{
			Keywords:      []string{"олс"},
			Fields:        repository.CatalogSearchFields,
			Threshold:     0.2,
			AvailableOnly: true,
			Limit:         10,
		}).
		Return([]*entity.Product{ropeProduct}, nil).
		Twice()

	for range 2 {
		products, err := matcher.Match(ctx, []string{"олс"}, true)
		require.NoError(t, err)
		assert.Equal(t, []*entity.Product{ropeProduct}, products)
	}
}

func TestCatalogMatcher_Match_SubstringTier(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()

	catalogRepo.EXPECT().SimilaritySupported(ctx).Return(false, nil).Once()
	catalogRepo.EXPECT().SubstringSearch(ctx, scopeQuery(false)).Return([]*entity.Product{plugProduct}, nil)

	products, err := matcher.Match(ctx, []string{"залгуур"}, false)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Product{plugProduct}, products)
	catalogRepo.AssertNotCalled(t, "SimilaritySearch", mock.Anything, mock.Anything)
}

func TestCatalogMatcher_Match_SupportCheckFailureFallsBack(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	matcher.now = func() time.Time { return now }

	catalogRepo.EXPECT().SimilaritySupported(ctx).Return(false, errors.New("no such table: pg_extension")).Once()
	catalogRepo.EXPECT().SubstringSearch(ctx, scopeQuery(true)).Return([]*entity.Product{ropeProduct}, nil).Twice()

	products, err := matcher.Match(ctx, []string{"олс"}, true)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	// Within the retry window the failed check is not repeated.
	now = now.Add(time.Minute)
	_, err = matcher.Match(ctx, []string{"олс"}, true)
	require.NoError(t, err)

	// After it the check runs again and a success is cached.
	now = now.Add(similarityCheckRetry)
	catalogRepo.EXPECT().SimilaritySupported(ctx).Return(true, nil).Once()
	catalogRepo.EXPECT().SimilaritySearch(ctx, scopeQuery(true)).Return([]*entity.Product{ropeProduct}, nil).Once()
	_, err = matcher.Match(ctx, []string{"олс"}, true)
	require.NoError(t, err)
}

func TestCatalogMatcher_Match_SearchFailurePropagates(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	catalogRepo.EXPECT().SimilaritySupported(ctx).Return(true, nil)
	catalogRepo.EXPECT().SimilaritySearch(ctx, mock.Anything).Return(nil, dbErr)

	_, err := matcher.Match(ctx, []string{"олс"}, true)
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogMatcher_Match_WithoutKeywordsReturnsCatalog(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()

	catalogRepo.EXPECT().FindAvailable(ctx).Return([]*entity.Product{ropeProduct, ozoneProduct}, nil)
	catalogRepo.EXPECT().FindAll(ctx).Return([]*entity.Product{ropeProduct, ozoneProduct, plugProduct}, nil)

	inStock, err := matcher.Match(ctx, nil, true)
	require.NoError(t, err)
	assert.Len(t, inStock, 2)

	all, err := matcher.Match(ctx, []string{}, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogMatcher_MatchTurn(t *testing.T) {
	tests := []struct {
		name          string
		keywords      []string
		inStock       []*entity.Product
		anyStock      []*entity.Product
		available     []*entity.Product
		wantOutcome   entity.MatchOutcome
		wantOfferable []*entity.Product
	}{
		{
			name:          "in-stock match",
			keywords:      []string{"олс"},
			inStock:       []*entity.Product{ropeProduct},
			anyStock:      []*entity.Product{ropeProduct},
			wantOutcome:   entity.MatchOutcomeMatched,
			wantOfferable: []*entity.Product{ropeProduct},
		},
		{
			name:          "only out of stock matches",
			keywords:      []string{"zalguur", "залгуур", "ухаалаг"},
			inStock:       []*entity.Product{},
			anyStock:      []*entity.Product{plugProduct},
			available:     []*entity.Product{ropeProduct, ozoneProduct},
			wantOutcome:   entity.MatchOutcomeAlternatives,
			wantOfferable: []*entity.Product{ropeProduct, ozoneProduct},
		},
		{
			name:          "nothing matches",
			keywords:      []string{"дугуй"},
			inStock:       []*entity.Product{},
			anyStock:      []*entity.Product{},
			available:     []*entity.Product{ropeProduct, ozoneProduct},
			wantOutcome:   entity.MatchOutcomeNoMatch,
			wantOfferable: []*entity.Product{ropeProduct, ozoneProduct},
		},
		{
			name:          "empty catalog",
			keywords:      []string{"олс"},
			inStock:       []*entity.Product{},
			anyStock:      []*entity.Product{},
			available:     []*entity.Product{},
			wantOutcome:   entity.MatchOutcomeEmptyCatalog,
			wantOfferable: []*entity.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, catalogRepo := newTestCatalogMatcher(t)
			ctx := context.Background()

			catalogRepo.EXPECT().SimilaritySupported(mock.Anything).Return(false, nil).Once()
			catalogRepo.EXPECT().SubstringSearch(mock.Anything, scopeQuery(true)).Return(tt.inStock, nil)
			catalogRepo.EXPECT().SubstringSearch(mock.Anything, scopeQuery(false)).Return(tt.anyStock, nil)
			if tt.available != nil {
				catalogRepo.EXPECT().FindAvailable(ctx).Return(tt.available, nil)
			}

			result, err := matcher.MatchTurn(ctx, tt.keywords)
			require.NoError(t, err)
			assert.Equal(t, tt.keywords, result.Keywords)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantOfferable, result.Offerable)
			assert.Equal(t, tt.inStock, result.InStock)
			assert.Equal(t, tt.anyStock, result.AnyStock)
		})
	}
}

func TestCatalogMatcher_MatchTurn_Browse(t *testing.T) {
	tests := []struct {
		name        string
		available   []*entity.Product
		wantOutcome entity.MatchOutcome
	}{
		{name: "in-stock catalog", available: []*entity.Product{ropeProduct}, wantOutcome: entity.MatchOutcomeBrowse},
		{name: "empty catalog", available: []*entity.Product{}, wantOutcome: entity.MatchOutcomeEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, catalogRepo := newTestCatalogMatcher(t)
			ctx := context.Background()

			catalogRepo.EXPECT().FindAvailable(ctx).Return(tt.available, nil)

			result, err := matcher.MatchTurn(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.available, result.Offerable)
			assert.Nil(t, result.AnyStock)
		})
	}
}

func TestCatalogMatcher_MatchTurn_StoreFailure(t *testing.T) {
	matcher, catalogRepo := newTestCatalogMatcher(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	catalogRepo.EXPECT().SimilaritySupported(mock.Anything).Return(false, nil).Maybe()
	catalogRepo.EXPECT().SubstringSearch(mock.Anything, mock.Anything).Return(nil, dbErr)

	result, err := matcher.MatchTurn(ctx, []string{"олс"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}
