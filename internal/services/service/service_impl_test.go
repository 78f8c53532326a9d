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

	"github.com/ventia/ventia/internal/integrity"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/services/domain"
	"github.com/ventia/ventia/internal/services/repository"
)

const testProductID = int64(301)

func setupManager(t *testing.T) (domain.Manager, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Service{},
		&domain.ServiceInput{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderService{},
	))
	require.NoError(t, db.Create(&productdomain.Product{
		ID: testProductID, Name: "Aceite 10W40", Price: 8,
	}).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	mgr := New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repository.Provide(),
		Checker: integrity.New(db),
	})
	return mgr, db
}

func TestCreateService(t *testing.T) {
	mgr, _ := setupManager(t)

	svc, err := mgr.Create(context.Background(), domain.CreateRequest{
		Name:  "Cambio de aceite",
		Price: 30,
	})
	require.NoError(t, err)
	assert.NotZero(t, svc.ID)

	_, err = mgr.Create(context.Background(), domain.CreateRequest{Name: " ", Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
	_, err = mgr.Create(context.Background(), domain.CreateRequest{Name: "x", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestServiceInputs(t *testing.T) {
	mgr, _ := setupManager(t)
	ctx := context.Background()

	svc, err := mgr.Create(ctx, domain.CreateRequest{Name: "Cambio de aceite", Price: 30})
	require.NoError(t, err)

	require.NoError(t, mgr.AddInput(ctx, svc.ID, testProductID))
	assert.ErrorIs(t, mgr.AddInput(ctx, svc.ID, testProductID), domain.ErrDuplicateInput)
	assert.ErrorIs(t, mgr.AddInput(ctx, svc.ID, 999), domain.ErrProductNotFound)
	assert.ErrorIs(t, mgr.AddInput(ctx, 999, testProductID), domain.ErrNotFound)

	products, err := mgr.InputProducts(ctx, svc.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, testProductID, products[0].ID)

	require.NoError(t, mgr.RemoveInput(ctx, svc.ID, testProductID))
	assert.ErrorIs(t, mgr.RemoveInput(ctx, svc.ID, testProductID), domain.ErrInputNotFound)
}

func TestDeleteServiceDropsInputs(t *testing.T) {
	mgr, db := setupManager(t)
	ctx := context.Background()

	svc, err := mgr.Create(ctx, domain.CreateRequest{Name: "Cambio de aceite", Price: 30})
	require.NoError(t, err)
	require.NoError(t, mgr.AddInput(ctx, svc.ID, testProductID))

	require.NoError(t, mgr.Delete(ctx, svc.ID))

	var count int
	require.NoError(t, db.Raw(
		`SELECT COUNT(1) FROM service_inputs WHERE service_id = ?`, svc.ID,
	).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteServiceReferencedByOrders(t *testing.T) {
	mgr, db := setupManager(t)
	ctx := context.Background()

	svc, err := mgr.Create(ctx, domain.CreateRequest{Name: "Cambio de aceite", Price: 30})
	require.NoError(t, err)

	require.NoError(t, db.Create(&orderdomain.Order{
		ID: 1, ClientID: 1, EmployeeID: 1, Status: orderdomain.StatusPending,
	}).Error)
	require.NoError(t, db.Create(&orderdomain.OrderService{
		OrderID: 1, ServiceID: svc.ID, Quantity: 1,
	}).Error)

	assert.ErrorIs(t, mgr.Delete(ctx, svc.ID), domain.ErrReferenced)
}

func TestSearchServicesByName(t *testing.T) {
	mgr, _ := setupManager(t)
	ctx := context.Background()

	_, err := mgr.Create(ctx, domain.CreateRequest{Name: "Cambio de aceite", Price: 30})
	require.NoError(t, err)
	_, err = mgr.Create(ctx, domain.CreateRequest{Name: "Alineacion", Price: 45})
	require.NoError(t, err)

	page, err := mgr.Search(ctx, domain.Filter{Name: "aceite"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Cambio de aceite", page.Items[0].Name)
}
