package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	categorydomain "github.com/ventia/ventia/internal/category/domain"
	"github.com/ventia/ventia/internal/config"
	"github.com/ventia/ventia/internal/integrity"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
	"github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/product/repository"
	"github.com/ventia/ventia/internal/providers/completion"
	"github.com/ventia/ventia/internal/providers/storage"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type completionStub struct {
	text  string
	err   error
	input string
}

func (c *completionStub) ShortDescription(_ context.Context, description string) (string, error) {
	c.input = description
	return c.text, c.err
}

func setupProductService(t *testing.T, gen completion.Provider) (domain.Service, *gorm.DB, *storage.Memory) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Product{},
		&categorydomain.ProductCategory{},
		&orderdomain.Order{},
		&orderdomain.OrderProduct{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	store := storage.NewMemory()
	svc := New(Params{
		Config:     config.Config{Storage: config.StorageConfig{ImageFolder: "images"}},
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		Checker:    integrity.New(db),
		Storage:    store,
		Completion: gen,
	})
	return svc, db, store
}

func TestCreateProduct(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})

	p, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:  "  Bujia NGK  ",
		Price: 4.5,
		Stock: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bujia NGK", p.Name)
	assert.NotZero(t, p.ID)
}

func TestCreateGeneratesShortDescription(t *testing.T) {
	stub := &completionStub{text: "High performance spark plug."}
	svc, _, _ := setupProductService(t, stub)

	p, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:        "Bujia NGK",
		Description: "Iridium spark plug for motorcycles, long service life.",
		Price:       4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "High performance spark plug.", p.ShortDescription)
	assert.Equal(t, "Iridium spark plug for motorcycles, long service life.", stub.input,
		"the full description is what gets condensed")
}

func TestCreateShortDescriptionFallsBackToName(t *testing.T) {
	stub := &completionStub{text: "generated"}
	svc, _, _ := setupProductService(t, stub)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Bujia NGK", Price: 4.5})
	require.NoError(t, err)
	assert.Equal(t, "Bujia NGK", stub.input, "no description to condense, the name stands in")
}

func TestCreateSurvivesCompletionFailure(t *testing.T) {
	svc, _, _ := setupProductService(t, &completionStub{err: fmt.Errorf("upstream down")})

	p, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Bujia NGK", Price: 4.5})
	require.NoError(t, err)
	assert.Empty(t, p.ShortDescription)
}

func TestCreateKeepsProvidedShortDescription(t *testing.T) {
	svc, _, _ := setupProductService(t, &completionStub{text: "generated"})

	p, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:             "Bujia NGK",
		ShortDescription: "hand written",
		Price:            4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "hand written", p.ShortDescription)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "x", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "x", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	svc, _, store := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1})
	require.NoError(t, err)

	_, err = svc.UploadImage(ctx, p.ID, domain.ImageUpload{
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	assert.Zero(t, store.Len(), "rejected uploads must not reach the blob store")
}

func TestUploadImageSwapsPrevious(t *testing.T) {
	svc, _, store := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1})
	require.NoError(t, err)

	first, err := svc.UploadImage(ctx, p.ID, domain.ImageUpload{
		Filename:    "front.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("png1"),
	})
	require.NoError(t, err)
	require.NotNil(t, first.ImageKey)
	assert.True(t, strings.HasPrefix(*first.ImageKey, "images/"))
	assert.True(t, strings.HasSuffix(*first.ImageKey, "-front.png"))
	assert.Equal(t, 1, store.Len())

	second, err := svc.UploadImage(ctx, p.ID, domain.ImageUpload{
		Filename:    "back.webp",
		ContentType: "image/webp",
		Size:        4,
		Body:        strings.NewReader("img2"),
	})
	require.NoError(t, err)
	require.NotNil(t, second.ImageKey)
	assert.NotEqual(t, *first.ImageKey, *second.ImageKey)
	assert.Equal(t, 1, store.Len(), "previous image must be removed after swap")
}

func TestDeleteImage(t *testing.T) {
	svc, _, store := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1})
	require.NoError(t, err)

	_, err = svc.DeleteImage(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNoImage)

	_, err = svc.UploadImage(ctx, p.ID, domain.ImageUpload{
		Filename:    "front.jpg",
		ContentType: "image/jpeg",
		Size:        4,
		Body:        strings.NewReader("jpg1"),
	})
	require.NoError(t, err)

	got, err := svc.DeleteImage(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ImageKey)
	assert.Zero(t, store.Len())
}

func TestDeleteRefusesReferencedProduct(t *testing.T) {
	svc, db, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1})
	require.NoError(t, err)

	require.NoError(t, db.Create(&orderdomain.Order{
		ID: 1, ClientID: 1, EmployeeID: 1, Status: orderdomain.StatusPending,
	}).Error)
	require.NoError(t, db.Create(&orderdomain.OrderProduct{
		OrderID: 1, ProductID: p.ID, Quantity: 1,
	}).Error)

	err = svc.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestDeleteRemovesOrphanImage(t *testing.T) {
	svc, _, store := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1})
	require.NoError(t, err)
	_, err = svc.UploadImage(ctx, p.ID, domain.ImageUpload{
		Filename:    "front.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("png1"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.Zero(t, store.Len())
}

func TestStockAdjustments(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 1, Stock: 5})
	require.NoError(t, err)

	got, err := svc.SetStock(ctx, p.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Stock)

	_, err = svc.SetStock(ctx, p.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidStock)

	got, err = svc.AddStock(ctx, p.ID, -20)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock, "additive adjustments clamp at zero")

	got, err = svc.AddStock(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
}

func TestLowStock(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Low", Price: 1, Stock: 2, MinimumStock: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Fine", Price: 1, Stock: 50, MinimumStock: 5})
	require.NoError(t, err)

	page, err := svc.LowStock(ctx, pagination.Request{})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Low", page.Items[0].Name)
	assert.Equal(t, 1, page.Page)
}

func TestExpired(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	past := datatypes.Date(time.Now().AddDate(0, 0, -2))
	future := datatypes.Date(time.Now().AddDate(1, 0, 0))

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Old", Price: 1, ExpirationDate: &past})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Fresh", Price: 1, ExpirationDate: &future})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "NoDate", Price: 1})
	require.NoError(t, err)

	page, err := svc.Expired(ctx, pagination.Request{})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Old", page.Items[0].Name)
}

func TestSearchByPriceAndName(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Filtro de aceite", Price: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Filtro de aire", Price: 25})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 4})
	require.NoError(t, err)

	page, err := svc.Search(ctx, domain.Filter{Name: "Filtro"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	min := 5.0
	max := 20.0
	page, err = svc.Search(ctx, domain.Filter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Filtro de aceite", page.Items[0].Name)
}

func TestSearchSortsByAllowedColumn(t *testing.T) {
	svc, _, _ := setupProductService(t, completion.NoOp{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Filtro de aceite", Price: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Bujia", Price: 4})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Amortiguador", Price: 80})
	require.NoError(t, err)

	page, err := svc.Search(ctx, domain.Filter{SortBy: "price", OrderBy: "desc"})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	assert.Equal(t, "Amortiguador", page.Items[0].Name)
	assert.Equal(t, "Bujia", page.Items[2].Name)

	// Unknown columns fall back to the name ordering.
	page, err = svc.Search(ctx, domain.Filter{SortBy: "1; DROP TABLE products"})
	require.NoError(t, err)
	assert.Equal(t, "Amortiguador", page.Items[0].Name)
}
