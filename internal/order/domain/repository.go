package domain

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	UpdateHeader(ctx context.Context, db *gorm.DB, order *Order) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status Status) error
	AddToTotal(ctx context.Context, db *gorm.DB, id int64, delta float64) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Order], error)

	AddProduct(ctx context.Context, db *gorm.DB, line *OrderProduct) error
	FindProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (*OrderProduct, error)
	UpdateProductQuantity(ctx context.Context, db *gorm.DB, orderID, productID int64, quantity int) error
	RemoveProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) error
	Products(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderProduct, error)

	AddService(ctx context.Context, db *gorm.DB, line *OrderService) error
	FindService(ctx context.Context, db *gorm.DB, orderID, serviceID int64) (*OrderService, error)
	UpdateServiceQuantity(ctx context.Context, db *gorm.DB, orderID, serviceID int64, quantity int) error
	RemoveService(ctx context.Context, db *gorm.DB, orderID, serviceID int64) error
	Services(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderService, error)

	DecrementStock(ctx context.Context, db *gorm.DB, productID int64, quantity int) error
}
