package domain

import (
	"context"

	"gorm.io/gorm"

	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, service *Service) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Service, error)
	Update(ctx context.Context, db *gorm.DB, service *Service) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Service], error)

	AddInput(ctx context.Context, db *gorm.DB, input *ServiceInput) error
	RemoveInput(ctx context.Context, db *gorm.DB, serviceID, productID int64) error
	InputExists(ctx context.Context, db *gorm.DB, serviceID, productID int64) (bool, error)
	InputProducts(ctx context.Context, db *gorm.DB, serviceID int64) ([]productdomain.Product, error)
}
