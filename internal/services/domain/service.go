package domain

import (
	"context"
	"errors"

	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

// Manager is the service-catalog contract. The entity itself is named Service,
// so the usual interface name is taken.
type Manager interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	Get(ctx context.Context, id int64) (*Service, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Service], error)

	AddInput(ctx context.Context, serviceID, productID int64) error
	RemoveInput(ctx context.Context, serviceID, productID int64) error
	InputProducts(ctx context.Context, serviceID int64) ([]productdomain.Product, error)
}

type CreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
}

// UpdateRequest is a patch: only non-nil fields are applied.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
}

type Filter struct {
	pagination.Request
	Name     string   `json:"name"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

var (
	ErrNotFound        = errors.New("service not found")
	ErrInvalidName     = errors.New("service name is required")
	ErrInvalidPrice    = errors.New("service price must be zero or greater")
	ErrReferenced      = errors.New("service is referenced by existing order lines")
	ErrProductNotFound = errors.New("product does not exist")
	ErrDuplicateInput  = errors.New("service already consumes that product")
	ErrInputNotFound   = errors.New("service input not found")
)
