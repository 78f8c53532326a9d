package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/internal/client/repository"
	"github.com/ventia/ventia/internal/integrity"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
)

func setupClientService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Client{}, &orderdomain.Order{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repository.Provide(),
		Checker: integrity.New(db),
	})
	return svc, db
}

func TestCreateClientNormalizesEmail(t *testing.T) {
	svc, _ := setupClientService(t)

	c, err := svc.Create(context.Background(), domain.CreateRequest{
		Email:     "  Ana@Example.COM ",
		FirstName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.True(t, c.Status, "clients default to active")
}

func TestCreateClientValidation(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "nope", FirstName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Create(ctx, domain.CreateRequest{Email: "ana@example.com", FirstName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "ana@example.com", FirstName: "Ana"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Email: "ANA@example.com", FirstName: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestBlankDocumentStoredAsNull(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	blank := "   "
	first, err := svc.Create(ctx, domain.CreateRequest{
		Email: "a@example.com", FirstName: "A", DocumentID: &blank,
	})
	require.NoError(t, err)
	assert.Nil(t, first.DocumentID)

	// A second blank document must not trip the unique index.
	second, err := svc.Create(ctx, domain.CreateRequest{
		Email: "b@example.com", FirstName: "B", DocumentID: &blank,
	})
	require.NoError(t, err)
	assert.Nil(t, second.DocumentID)
}

func TestUpdateClient(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.CreateRequest{Email: "ana@example.com", FirstName: "Ana"})
	require.NoError(t, err)

	phone := " 555-0101 "
	got, err := svc.Update(ctx, c.ID, domain.UpdateRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", got.Phone)
	assert.Equal(t, "ana@example.com", got.Email, "untouched fields survive the patch")
}

func TestDeleteClientReferencedByOrders(t *testing.T) {
	svc, db := setupClientService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.CreateRequest{Email: "ana@example.com", FirstName: "Ana"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&orderdomain.Order{
		ID: 1, ClientID: c.ID, EmployeeID: 1, Status: orderdomain.StatusPending,
	}).Error)

	assert.ErrorIs(t, svc.Delete(ctx, c.ID), domain.ErrReferenced)

	require.NoError(t, db.Exec(`DELETE FROM orders WHERE client_id = ?`, c.ID).Error)
	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchClients(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	doc := "12345678"
	_, err := svc.Create(ctx, domain.CreateRequest{Email: "ana@example.com", FirstName: "Ana", LastName: "Lopez", DocumentID: &doc})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Email: "luis@example.com", FirstName: "Luis", LastName: "Anaya"})
	require.NoError(t, err)

	page, err := svc.Search(ctx, domain.Filter{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total, "name matches first or last name")

	page, err = svc.Search(ctx, domain.Filter{DocumentID: doc})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "ana@example.com", page.Items[0].Email)
}

func TestLookupClientByEmailAndDocument(t *testing.T) {
	svc, _ := setupClientService(t)
	ctx := context.Background()

	doc := "12345678"
	created, err := svc.Create(ctx, domain.CreateRequest{
		Email:      "ana@example.com",
		FirstName:  "Ana",
		DocumentID: &doc,
	})
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, "  ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = svc.GetByDocument(ctx, " 12345678 ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetByDocument(ctx, "00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
