package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"
	"shopbot/internal/errors"
	"shopbot/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// A failed similarity support check is retried after this long; substring search is used meanwhile.
const similarityCheckRetry = 5 * time.Minute

// catalogMatcher implements the CatalogMatcher interface.
type catalogMatcher struct {
	catalogRepo repository.CatalogRepository
	threshold   float64
	limit       int
	logger      *slog.Logger
	now         func() time.Time

	checkMu     sync.Mutex
	checked     bool
	supported   bool
	checkFailed time.Time
}

// CatalogMatcherParams holds dependencies for the catalog matcher, injected by Fx.
type CatalogMatcherParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogMatcher is the constructor for catalogMatcher.
func NewCatalogMatcher(params CatalogMatcherParams) usecase.CatalogMatcher {
	threshold, limit := 0.2, 10
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.SimilarityThreshold > 0 {
			threshold = params.Config.Catalog.SimilarityThreshold
		}
		if params.Config.Catalog.ResultLimit > 0 {
			limit = params.Config.Catalog.ResultLimit
		}
	}

	return &catalogMatcher{
		catalogRepo: params.CatalogRepo,
		threshold:   threshold,
		limit:       limit,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (m *catalogMatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

func (m *catalogMatcher) Match(ctx context.Context, keywords []string, availableOnly bool) ([]*entity.Product, error) {
	if len(keywords) == 0 {
		return m.catalog(ctx, availableOnly)
	}

	query := repository.CatalogQuery{
		Keywords:      keywords,
		Fields:        repository.CatalogSearchFields,
		Threshold:     m.threshold,
		AvailableOnly: availableOnly,
		Limit:         m.limit,
	}

	if m.similaritySupported(ctx) {
		products, err := m.catalogRepo.SimilaritySearch(ctx, query)
		if err != nil {
			return nil, errors.Wrap(err, "similarity search failed")
		}

		return products, nil
	}

	products, err := m.catalogRepo.SubstringSearch(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "substring search failed")
	}

	return products, nil
}

func (m *catalogMatcher) MatchTurn(ctx context.Context, keywords []string) (*entity.MatchResult, error) {
	result := &entity.MatchResult{Keywords: keywords}

	if len(keywords) == 0 {
		inStock, err := m.catalog(ctx, true)
		if err != nil {
			return nil, err
		}
		result.InStock = inStock
		result.Offerable = inStock
		result.Outcome = entity.MatchOutcomeBrowse
		if len(inStock) == 0 {
			result.Outcome = entity.MatchOutcomeEmptyCatalog
		}

		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := m.Match(gctx, keywords, true)
		result.InStock = products

		return err
	})
	g.Go(func() error {
		products, err := m.Match(gctx, keywords, false)
		result.AnyStock = products

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(result.InStock) > 0 {
		result.Outcome = entity.MatchOutcomeMatched
		result.Offerable = result.InStock

		return result, nil
	}

	available, err := m.catalog(ctx, true)
	if err != nil {
		return nil, err
	}
	result.Offerable = available

	switch {
	case len(result.AnyStock) > 0:
		result.Outcome = entity.MatchOutcomeAlternatives
	case len(available) > 0:
		result.Outcome = entity.MatchOutcomeNoMatch
	default:
		result.Outcome = entity.MatchOutcomeEmptyCatalog
	}

	return result, nil
}

func (m *catalogMatcher) catalog(ctx context.Context, availableOnly bool) ([]*entity.Product, error) {
	var (
		products []*entity.Product
		err      error
	)
	if availableOnly {
		products, err = m.catalogRepo.FindAvailable(ctx)
	} else {
		products, err = m.catalogRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	return products, nil
}

// similaritySupported caches a successful check for the matcher's lifetime.
func (m *catalogMatcher) similaritySupported(ctx context.Context) bool {
	m.checkMu.Lock()
	defer m.checkMu.Unlock()

	if m.checked {
		return m.supported
	}
	if !m.checkFailed.IsZero() && m.now().Sub(m.checkFailed) < similarityCheckRetry {
		return false
	}

	supported, err := m.catalogRepo.SimilaritySupported(ctx)
	if err != nil {
		m.checkFailed = m.now()
		m.log(ctx).Warn("Similarity support check failed, falling back to substring search", slog.Any("error", err))

		return false
	}

	m.checked = true
	m.supported = supported
	m.log(ctx).Info("Catalog similarity support checked", slog.Bool("supported", supported))

	return supported
}
