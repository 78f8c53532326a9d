package domain

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Product], error)

	SetImageKey(ctx context.Context, db *gorm.DB, id int64, key *string) error
	LowStock(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[Product], error)
	Expired(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[Product], error)
}
