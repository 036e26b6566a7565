package postgres

import (
	"context"
	"slices"
	"strings"

	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const trigramExtension = "pg_trgm"

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) FindAvailable(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(ctx, repo.db.Where("available = ?", true), 0)
}

func (repo *catalogRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(ctx, repo.db, 0)
}

func (repo *catalogRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// SimilaritySupported checks for the pg_trgm extension. Non-Postgres stores report an error.
func (repo *catalogRepository) SimilaritySupported(ctx context.Context) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM pg_extension WHERE extname = ?", trigramExtension).
		Scan(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check similarity support")
	}

	return count > 0, nil
}

// SimilaritySearch scores every field/keyword pair with word_similarity.
func (repo *catalogRepository) SimilaritySearch(ctx context.Context, query repository.CatalogQuery) ([]*entity.Product, error) {
	if len(query.Keywords) == 0 {
		return []*entity.Product{}, nil
	}

	fields := searchFields(query.Fields)
	conditions := make([]string, 0, len(fields)*len(query.Keywords))
	args := make([]any, 0, len(fields)*len(query.Keywords)*2)
	for _, field := range fields {
		for _, keyword := range query.Keywords {
			conditions = append(conditions, "word_similarity(?, lower(coalesce("+field+", ''))) > ?")
			args = append(args, strings.ToLower(keyword), query.Threshold)
		}
	}

	db := repo.db.Where(strings.Join(conditions, " OR "), args...)
	if query.AvailableOnly {
		db = db.Where("available = ?", true)
	}

	return repo.find(ctx, db, query.Limit)
}

// SubstringSearch matches keywords against the lower-cased search text.
func (repo *catalogRepository) SubstringSearch(ctx context.Context, query repository.CatalogQuery) ([]*entity.Product, error) {
	if len(query.Keywords) == 0 {
		return []*entity.Product{}, nil
	}

	conditions := make([]string, 0, len(query.Keywords))
	args := make([]any, 0, len(query.Keywords))
	for _, keyword := range query.Keywords {
		conditions = append(conditions, "search_text LIKE ?")
		args = append(args, "%"+strings.ToLower(keyword)+"%")
	}

	db := repo.db.Where(strings.Join(conditions, " OR "), args...)
	if query.AvailableOnly {
		db = db.Where("available = ?", true)
	}

	return repo.find(ctx, db, query.Limit)
}

// Save upserts the product by name.
func (repo *catalogRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price", "description", "instruction", "available", "search_text", "updated_at",
			}),
		}).
		Create(productM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product")
	}

	var saved model.ProductModel
	if err := repo.db.WithContext(ctx).Where("name = ?", product.Name).First(&saved).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload product")
	}

	product.ID = saved.ID
	product.CreatedAt = saved.CreatedAt
	product.UpdatedAt = saved.UpdatedAt

	return nil
}

func (repo *catalogRepository) find(ctx context.Context, db *gorm.DB, limit int) ([]*entity.Product, error) {
	query := db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var productsM []model.ProductModel
	if err := query.Find(&productsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// searchFields keeps only known column names so they can be inlined in SQL.
func searchFields(requested []string) []string {
	if len(requested) == 0 {
		return repository.CatalogSearchFields
	}

	fields := make([]string, 0, len(requested))
	for _, field := range requested {
		if slices.Contains(repository.CatalogSearchFields, field) {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return repository.CatalogSearchFields
	}

	return fields
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Instruction: data.Instruction,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Instruction: data.Instruction,
		Available:   data.Available,
	}
}
