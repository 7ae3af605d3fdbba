package masterdata

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/db/models"
)

func setupMasterdataTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	brands := `
CREATE TABLE IF NOT EXISTS brands (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(brands).Error)
	require.NoError(t, conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_brands_name ON brands (name);`).Error)
	return conn
}

func TestRepositoryDuplicateBrandNameIsUniqueViolation(t *testing.T) {
	conn := setupMasterdataTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	name := "brand-" + uuid.NewString()
	require.NoError(t, repo.CreateBrand(ctx, &models.Brand{ID: uuid.New(), Name: name}))

	err := repo.CreateBrand(ctx, &models.Brand{ID: uuid.New(), Name: name})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestRepositoryRenameBrand(t *testing.T) {
	conn := setupMasterdataTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created := &models.Brand{ID: uuid.New(), Name: "brand-" + uuid.NewString()}
	require.NoError(t, repo.CreateBrand(ctx, created))

	renamed, err := repo.RenameBrand(ctx, created.ID, "renamed-"+uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)
	assert.NotEqual(t, created.Name, renamed.Name)

	_, err = repo.RenameBrand(ctx, uuid.New(), "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
