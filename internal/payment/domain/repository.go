package domain

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Payment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Payment], error)
}
