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

	"github.com/ventia/ventia/internal/employee/domain"
	"github.com/ventia/ventia/internal/employee/repository"
	"github.com/ventia/ventia/internal/integrity"
	orderdomain "github.com/ventia/ventia/internal/order/domain"
)

func setupEmployeeService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Employee{}, &orderdomain.Order{}))

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

func TestCreateEmployeeHashesPassword(t *testing.T) {
	svc, _ := setupEmployeeService(t)

	e, err := svc.Create(context.Background(), domain.CreateRequest{
		Email:     "Luis@Example.COM",
		FirstName: "Luis",
		Password:  "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, "luis@example.com", e.Email)
	assert.NotEqual(t, "correcthorse", e.Password)
	assert.Equal(t, domain.RoleEmployee, e.Role, "role defaults to employee")
	assert.True(t, e.Status)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "not-an-email", FirstName: "x", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Create(ctx, domain.CreateRequest{Email: "a@b.com", FirstName: " ", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateRequest{Email: "a@b.com", FirstName: "x", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = svc.Create(ctx, domain.CreateRequest{Email: "a@b.com", FirstName: "x", Password: "longenough", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "a@b.com", FirstName: "x", Password: "longenough"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Email: "A@B.com", FirstName: "y", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Email:     "luis@example.com",
		FirstName: "Luis",
		Password:  "correcthorse",
	})
	require.NoError(t, err)

	e, err := svc.Authenticate(ctx, "LUIS@example.com", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, e.ID)

	_, err = svc.Authenticate(ctx, "luis@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correcthorse")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	disabled := false
	_, err := svc.Create(ctx, domain.CreateRequest{
		Email:     "luis@example.com",
		FirstName: "Luis",
		Password:  "correcthorse",
		Status:    &disabled,
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "luis@example.com", "correcthorse")
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestUpdateEmployeeRehashesPassword(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, domain.CreateRequest{
		Email:     "luis@example.com",
		FirstName: "Luis",
		Password:  "correcthorse",
	})
	require.NoError(t, err)

	next := "batterystaple"
	_, err = svc.Update(ctx, e.ID, domain.UpdateRequest{Password: &next})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "luis@example.com", "batterystaple")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "luis@example.com", "correcthorse")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestDeleteEmployeeReferencedByOrders(t *testing.T) {
	svc, db := setupEmployeeService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, domain.CreateRequest{
		Email:     "luis@example.com",
		FirstName: "Luis",
		Password:  "correcthorse",
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&orderdomain.Order{
		ID: 1, ClientID: 1, EmployeeID: e.ID, Status: orderdomain.StatusPending,
	}).Error)

	err = svc.Delete(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestSearchEmployeesByRole(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "a@b.com", FirstName: "A", Password: "longenough", Role: "admin"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Email: "c@d.com", FirstName: "C", Password: "longenough"})
	require.NoError(t, err)

	page, err := svc.Search(ctx, domain.Filter{Role: "ADMIN"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "a@b.com", page.Items[0].Email)
}

func TestLookupEmployeeByEmailAndDocument(t *testing.T) {
	svc, _ := setupEmployeeService(t)
	ctx := context.Background()

	doc := "87654321"
	created, err := svc.Create(ctx, domain.CreateRequest{
		Email:      "luis@example.com",
		FirstName:  "Luis",
		Password:   "correcthorse",
		DocumentID: &doc,
	})
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, " LUIS@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = svc.GetByDocument(ctx, "87654321")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetByDocument(ctx, "00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
