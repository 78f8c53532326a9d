package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	clientdomain "github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/internal/payment/domain"
	"github.com/ventia/ventia/internal/payment/repository"
)

const testClientID = int64(11)

func setupPaymentService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&clientdomain.Client{}, &domain.Payment{}))
	require.NoError(t, db.Create(&clientdomain.Client{
		ID: testClientID, Email: "ana@example.com", FirstName: "Ana", Status: true,
	}).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repository.Provide(),
		Checker: integrity.New(db),
	})
}

func creditFields() (*datatypes.Date, *float64) {
	due := datatypes.Date(time.Now().AddDate(0, 1, 0))
	rate := 0.05
	return &due, &rate
}

func TestCreateCashPayment(t *testing.T) {
	svc := setupPaymentService(t)

	p, err := svc.Create(context.Background(), domain.CreateRequest{
		ClientID: testClientID,
		Amount:   100,
		Method:   "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodCash, p.Method, "method is normalized to upper case")
	assert.Equal(t, domain.StatusPending, p.Status, "payments always start pending")
}

func TestCreatePaymentValidation(t *testing.T) {
	svc := setupPaymentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{ClientID: testClientID, Amount: 0, Method: domain.MethodCash})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(ctx, domain.CreateRequest{ClientID: testClientID, Amount: 10, Method: "CHEQUE"})
	assert.ErrorIs(t, err, domain.ErrInvalidMethod)

	_, err = svc.Create(ctx, domain.CreateRequest{ClientID: 999, Amount: 10, Method: domain.MethodCash})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCreditFieldsRequiredIff(t *testing.T) {
	svc := setupPaymentService(t)
	ctx := context.Background()
	due, rate := creditFields()

	_, err := svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodOnCredit,
		DueDate: due, InterestRate: rate,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodOnCredit,
	})
	assert.ErrorIs(t, err, domain.ErrCreditFields, "credit requires both fields")

	_, err = svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodOnCredit,
		DueDate: due,
	})
	assert.ErrorIs(t, err, domain.ErrCreditFields, "partial credit fields are rejected")

	_, err = svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodCash,
		InterestRate: rate,
	})
	assert.ErrorIs(t, err, domain.ErrCreditFields, "cash must not carry credit fields")
}

func TestAccountNumberRequiredIff(t *testing.T) {
	svc := setupPaymentService(t)
	ctx := context.Background()
	account := "ES91-2100-0418"

	p, err := svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodBankTransfer,
		AccountNumber: &account,
	})
	require.NoError(t, err)
	require.NotNil(t, p.AccountNumber)

	_, err = svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodBankTransfer,
	})
	assert.ErrorIs(t, err, domain.ErrAccountField)

	_, err = svc.Create(ctx, domain.CreateRequest{
		ClientID: testClientID, Amount: 10, Method: domain.MethodCash,
		AccountNumber: &account,
	})
	assert.ErrorIs(t, err, domain.ErrAccountField)
}

func TestPaymentStatusTransitions(t *testing.T) {
	svc := setupPaymentService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, domain.CreateRequest{ClientID: testClientID, Amount: 10, Method: domain.MethodCash})
	require.NoError(t, err)

	_, err = svc.ChangeStatus(ctx, p.ID, "REFUNDED")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	_, err = svc.ChangeStatus(ctx, p.ID, "SHIPPED")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := svc.ChangeStatus(ctx, p.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	got, err = svc.ChangeStatus(ctx, p.ID, domain.StatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, got.Status)

	_, err = svc.ChangeStatus(ctx, p.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition, "refunded is terminal")
}

func TestSearchPayments(t *testing.T) {
	svc := setupPaymentService(t)
	ctx := context.Background()

	for _, amount := range []float64{10, 50, 200} {
		_, err := svc.Create(ctx, domain.CreateRequest{ClientID: testClientID, Amount: amount, Method: domain.MethodCash})
		require.NoError(t, err)
	}

	page, err := svc.Search(ctx, domain.Filter{MinAmount: 20, MaxAmount: 100})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.InDelta(t, 50.0, page.Items[0].Amount, 1e-9)

	page, err = svc.Search(ctx, domain.Filter{Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
}
