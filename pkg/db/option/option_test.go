package option

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type part struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Price float64
}

func setupParts(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&part{}))
	for i, p := range []part{
		{Name: "bujia", Price: 4},
		{Name: "filtro", Price: 10},
		{Name: "amortiguador", Price: 80},
	} {
		p.ID = int64(i + 1)
		require.NoError(t, db.Create(&p).Error)
	}
	return db
}

func TestApplyOperator(t *testing.T) {
	db := setupParts(t)

	var got []part
	stmt := ApplyOperator(Condition{Field: "price", Operator: GTE, Value: 10}).Apply(db.Model(&part{}))
	require.NoError(t, stmt.Order("id ASC").Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, "filtro", got[0].Name)

	got = nil
	stmt = ApplyOperator(Condition{Field: "name", Operator: LIKE, Value: "fil"}).Apply(db.Model(&part{}))
	require.NoError(t, stmt.Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "filtro", got[0].Name)
}

func TestApplyOperatorSkipsEmptyField(t *testing.T) {
	db := setupParts(t)

	var got []part
	stmt := ApplyOperator(Condition{Operator: EQ, Value: "bujia"}).Apply(db.Model(&part{}))
	require.NoError(t, stmt.Find(&got).Error)
	assert.Len(t, got, 3)
}

func TestWithSortBy(t *testing.T) {
	db := setupParts(t)
	allow := map[string]bool{"price": true}

	var got []part
	stmt := WithSortBy(WithQuerySortBy("price", "desc", allow)).Apply(db.Model(&part{}))
	require.NoError(t, stmt.Find(&got).Error)
	require.Len(t, got, 3)
	assert.Equal(t, "amortiguador", got[0].Name)

	// Columns outside the allow list must not reach the query.
	got = nil
	stmt = WithSortBy(WithQuerySortBy("name; DROP TABLE parts", "desc", allow)).Apply(db.Model(&part{}))
	require.NoError(t, stmt.Order("id ASC").Find(&got).Error)
	require.Len(t, got, 3)
	assert.Equal(t, "bujia", got[0].Name)
}
