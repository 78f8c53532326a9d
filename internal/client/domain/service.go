package domain

import (
	"context"
	"errors"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Client, error)
	Get(ctx context.Context, id int64) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	GetByDocument(ctx context.Context, documentID string) (*Client, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Client, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Client], error)
}

type CreateRequest struct {
	DocumentID *string `json:"documentid"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Status     *bool   `json:"status"`
}

// UpdateRequest is a patch: only non-nil fields are applied.
type UpdateRequest struct {
	DocumentID *string `json:"documentid"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Status     *bool   `json:"status"`
}

type Filter struct {
	pagination.Request
	Name       string `json:"name"`
	Email      string `json:"email"`
	DocumentID string `json:"documentid"`
	Status     *bool  `json:"status"`
}

var (
	ErrNotFound       = errors.New("client not found")
	ErrDuplicateEmail = errors.New("a client with that email already exists")
	ErrInvalidEmail   = errors.New("client email is required")
	ErrInvalidName    = errors.New("client first name is required")
	ErrReferenced     = errors.New("client is referenced by existing orders")
)
