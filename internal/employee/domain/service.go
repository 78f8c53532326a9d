package domain

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Employee, error)
	Get(ctx context.Context, id int64) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByDocument(ctx context.Context, documentID string) (*Employee, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Employee, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Employee], error)
	Authenticate(ctx context.Context, email, password string) (*Employee, error)
}

type CreateRequest struct {
	DocumentID *string         `json:"documentid"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	BirthDate  *datatypes.Date `json:"birth_date"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	Status     *bool           `json:"status"`
}

// UpdateRequest is a patch: only non-nil fields are applied. A non-nil
// Password is re-hashed before storage.
type UpdateRequest struct {
	DocumentID *string         `json:"documentid"`
	Email      *string         `json:"email"`
	Phone      *string         `json:"phone"`
	FirstName  *string         `json:"first_name"`
	LastName   *string         `json:"last_name"`
	BirthDate  *datatypes.Date `json:"birth_date"`
	Password   *string         `json:"password"`
	Role       *string         `json:"role"`
	Status     *bool           `json:"status"`
}

type Filter struct {
	pagination.Request
	Name       string `json:"name"`
	Email      string `json:"email"`
	DocumentID string `json:"documentid"`
	Role       string `json:"role"`
	Status     *bool  `json:"status"`
}

var (
	ErrNotFound        = errors.New("employee not found")
	ErrDuplicateEmail  = errors.New("an employee with that email already exists")
	ErrInvalidEmail    = errors.New("employee email is required")
	ErrInvalidName     = errors.New("employee first name is required")
	ErrInvalidRole     = errors.New("role must be admin or employee")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrAccountDisabled = errors.New("employee account is disabled")
	ErrReferenced      = errors.New("employee is referenced by existing orders")
)
