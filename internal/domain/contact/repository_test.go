package contact

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("sqlite tests require CGO")
	}

	dsn := fmt.Sprintf("file:contact_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Contact{}))
	return NewRepository(db)
}

func TestRepository_ListByOrganization(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first, last := SplitName(func() *string { s := "Mary Jane Watson"; return &s }())
	require.NoError(t, repo.Create(ctx, &Contact{OrganizationID: "org-1", FirstName: first, LastName: last, IsPrimary: true}))
	require.NoError(t, repo.Create(ctx, &Contact{OrganizationID: "org-2"}))

	got, err := repo.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.True(t, got[0].IsPrimary)
	assert.Equal(t, "Jane Watson", *got[0].LastName)

	got, err = repo.ListByOrganization(ctx, "org-3")
	require.NoError(t, err)
	assert.Empty(t, got)
}
