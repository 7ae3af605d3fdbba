package catalogues

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

func setupCataloguesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	catalogues := `
CREATE TABLE IF NOT EXISTS catalogues (
  id TEXT PRIMARY KEY,
  article_name TEXT NOT NULL,
  sole_color TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL,
  category_id TEXT,
  brand_id TEXT,
  manufacturer_company_id TEXT,
  unit_id TEXT,
  stage TEXT NOT NULL DEFAULT 'AVAILABLE',
  expected_at DATETIME,
  primary_image TEXT NOT NULL,
  secondary_images TEXT NOT NULL DEFAULT '[]',
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	variants := `
CREATE TABLE IF NOT EXISTS catalogue_variants (
  id TEXT PRIMARY KEY,
  catalogue_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  item_name TEXT NOT NULL,
  sku TEXT NOT NULL DEFAULT 'N/A',
  cost_price REAL NOT NULL DEFAULT 0,
  selling_price REAL NOT NULL DEFAULT 0,
  mrp REAL NOT NULL DEFAULT 0,
  sizes TEXT NOT NULL DEFAULT '[]',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(catalogues).Error)
	require.NoError(t, db.Exec(variants).Error)
	return db
}

func newCatalogue(t *testing.T, db *gorm.DB, articleName, soleColor string, variantNames ...string) *models.Catalogue {
	t.Helper()

	catalogue := &models.Catalogue{
		ID:           uuid.New(),
		ArticleName:  articleName,
		SoleColor:    soleColor,
		Gender:       enums.GenderMen,
		Stage:        enums.StageAvailable,
		PrimaryImage: types.ImageRef{URL: "https://img.example/" + articleName + ".jpg"},
	}
	for i, name := range variantNames {
		catalogue.Variants = append(catalogue.Variants, models.CatalogueVariant{
			ID:           uuid.New(),
			Position:     i,
			ItemName:     name,
			SellingPrice: 999,
			Sizes:        types.SizeQuantities{{Size: "8", Qty: 10}},
		})
	}
	require.NoError(t, db.Create(catalogue).Error)
	return catalogue
}

func TestRepositoryMarkDeletedHidesRecord(t *testing.T) {
	db := setupCataloguesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := newCatalogue(t, db, "runner-del-"+uuid.NewString(), "white", "Runner White")

	require.NoError(t, repo.MarkDeleted(ctx, created.ID))

	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rows, total, err := repo.List(ctx, ListFilter{Search: created.ArticleName}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	// The row survives the soft delete.
	var count int64
	require.NoError(t, db.Model(&models.Catalogue{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Deleting again reports not found rather than silently succeeding.
	assert.ErrorIs(t, repo.MarkDeleted(ctx, created.ID), gorm.ErrRecordNotFound)
}

func TestRepositoryReplaceVariantsWholesale(t *testing.T) {
	db := setupCataloguesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := newCatalogue(t, db, "court-"+uuid.NewString(), "black", "Court Black", "Court Navy")

	replacement := []models.CatalogueVariant{
		{ID: uuid.New(), CatalogueID: created.ID, Position: 0, ItemName: "Court Red", SellingPrice: 1099},
		{ID: uuid.New(), CatalogueID: created.ID, Position: 1, ItemName: "Court Green", SellingPrice: 1199},
		{ID: uuid.New(), CatalogueID: created.ID, Position: 2, ItemName: "Court Blue", SellingPrice: 1299},
	}
	require.NoError(t, repo.ReplaceVariants(ctx, created.ID, replacement))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Variants, 3)
	assert.Equal(t, "Court Red", found.Variants[0].ItemName)
	assert.Equal(t, "Court Green", found.Variants[1].ItemName)
	assert.Equal(t, "Court Blue", found.Variants[2].ItemName)

	// An empty replacement clears the set.
	require.NoError(t, repo.ReplaceVariants(ctx, created.ID, nil))
	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Variants)
}

func TestRepositoryListFiltersSoleColor(t *testing.T) {
	db := setupCataloguesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	marker := uuid.NewString()
	newCatalogue(t, db, "trail-"+uuid.NewString(), "gum-"+marker, "Trail Gum")
	newCatalogue(t, db, "trail-"+uuid.NewString(), "ice", "Trail Ice")

	rows, total, err := repo.List(ctx, ListFilter{Search: "GUM-" + marker}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "gum-"+marker, rows[0].SoleColor)
}
