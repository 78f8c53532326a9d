package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, category *Category) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Category, error)
	Update(ctx context.Context, db *gorm.DB, category *Category) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	Assign(ctx context.Context, db *gorm.DB, membership *ProductCategory) error
	Unassign(ctx context.Context, db *gorm.DB, categoryID, productID int64) error
	Assigned(ctx context.Context, db *gorm.DB, categoryID, productID int64) (bool, error)
	ForProduct(ctx context.Context, db *gorm.DB, productID int64) ([]Category, error)
}
