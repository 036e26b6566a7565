package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopbot/config"
	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"
	"shopbot/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Effects = &config.EffectsConfig{
		Labels:        []string{"Захиалга", "Төлбөр хүлээгдэж буй"},
		BankName:      "Хаан банк",
		AccountNumber: "5000123456",
		AccountHolder: "Дэлгүүр ХХК",
	}
	cfg.ApplyDefaults()

	return cfg
}

// newTestDB opens a migrated in-memory SQLite database on a single connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenSQLite(context.Background(), ":memory:", newDiscardLogger(), false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

var testCatalog = []entity.Product{
	{Name: "Машины татлага олс", Price: 39900, Description: "5 м урт, 18 тн даац", Available: true},
	{Name: "Искра озон аппарат", Price: 52000, Description: "Озон үүсгэгч", Instruction: "Арьсаа угааж хуурайшуулах", Available: true},
	{Name: "Ухаалаг залгуур", Price: 25000, Description: "Wi-Fi удирдлагатай", Available: false},
}

func seedCatalog(t *testing.T, repo repository.CatalogRepository) []*entity.Product {
	t.Helper()

	products := make([]*entity.Product, 0, len(testCatalog))
	for _, product := range testCatalog {
		require.NoError(t, repo.Save(context.Background(), &product))
		products = append(products, &product)
	}

	return products
}
