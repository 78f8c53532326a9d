package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id int64) error

	AssignProduct(ctx context.Context, categoryID, productID int64) error
	RemoveProduct(ctx context.Context, categoryID, productID int64) error
	CategoriesForProduct(ctx context.Context, productID int64) ([]Category, error)
}

type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

var (
	ErrNotFound        = errors.New("category not found")
	ErrDuplicateName   = errors.New("a category with that name already exists")
	ErrInvalidName     = errors.New("category name is required")
	ErrProductNotFound = errors.New("product does not exist")
	ErrAlreadyAssigned = errors.New("product already belongs to that category")
	ErrNotAssigned     = errors.New("product does not belong to that category")
)
