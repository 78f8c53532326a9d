package domain

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, employee *Employee) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Employee, error)
	Update(ctx context.Context, db *gorm.DB, employee *Employee) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Employee], error)
}
