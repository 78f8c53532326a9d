package repository

import (
	"context"

	"gorm.io/gorm"

	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/services/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, service *domain.Service) error {
	return db.WithContext(ctx).Create(service).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Service, error) {
	var s domain.Service
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, price, cost, created_at, updated_at
		 FROM services WHERE id = ?`,
		id,
	).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, service *domain.Service) error {
	if service == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE services SET name = ?, description = ?, price = ?, cost = ?, updated_at = ? WHERE id = ?`,
		service.Name,
		service.Description,
		service.Price,
		service.Cost,
		service.UpdatedAt,
		service.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM service_inputs WHERE service_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM services WHERE id = ?`, id).Error
	})
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Service], error) {
	stmt := db.WithContext(ctx).Model(&domain.Service{})

	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.MinPrice != nil {
		stmt = stmt.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where("price <= ?", *filter.MaxPrice)
	}

	stmt = stmt.Order("name ASC")
	return pagination.Paginate[domain.Service](stmt, filter.Request)
}

func (r *repo) AddInput(ctx context.Context, db *gorm.DB, input *domain.ServiceInput) error {
	return db.WithContext(ctx).Create(input).Error
}

func (r *repo) RemoveInput(ctx context.Context, db *gorm.DB, serviceID, productID int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM service_inputs WHERE service_id = ? AND product_id = ?`,
		serviceID, productID,
	).Error
}

func (r *repo) InputExists(ctx context.Context, db *gorm.DB, serviceID, productID int64) (bool, error) {
	var one int
	err := db.WithContext(ctx).Raw(
		`SELECT 1 FROM service_inputs WHERE service_id = ? AND product_id = ? LIMIT 1`,
		serviceID, productID,
	).Scan(&one).Error
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

func (r *repo) InputProducts(ctx context.Context, db *gorm.DB, serviceID int64) ([]productdomain.Product, error) {
	var items []productdomain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, p.short_description, p.description, p.price, p.cost, p.stock,
		        p.minimum_stock, p.image_key, p.expiration_date, p.created_at, p.updated_at
		 FROM products p
		 JOIN service_inputs si ON si.product_id = p.id
		 WHERE si.service_id = ?
		 ORDER BY p.name ASC`,
		serviceID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
