package pagination

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type row struct {
	ID   int64  `gorm:"primaryKey"`
	Name string
}

func setupRows(t *testing.T, n int) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&row{}))
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&row{ID: int64(i), Name: fmt.Sprintf("row-%02d", i)}).Error)
	}
	return db
}

func TestPaginateDefaults(t *testing.T) {
	db := setupRows(t, 25)

	page, err := Paginate[row](db.Model(&row{}).Order("id ASC"), Request{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, int64(1), page.Items[0].ID)
}

func TestPaginateOffsets(t *testing.T) {
	db := setupRows(t, 25)

	page, err := Paginate[row](db.Model(&row{}).Order("id ASC"), Request{Page: 3, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	require.Len(t, page.Items, 5, "last page holds the remainder")
	assert.Equal(t, int64(21), page.Items[0].ID)
}

func TestPaginateClampsSize(t *testing.T) {
	db := setupRows(t, 5)

	page, err := Paginate[row](db.Model(&row{}).Order("id ASC"), Request{Page: -2, Size: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, MaxPageSize, page.Size)
	assert.Len(t, page.Items, 5)
}
