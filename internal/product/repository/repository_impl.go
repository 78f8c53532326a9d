package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/pkg/db/option"
	"github.com/ventia/ventia/pkg/db/pagination"
)

var sortableProductColumns = map[string]bool{
	"name":       true,
	"price":      true,
	"stock":      true,
	"created_at": true,
}

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, short_description, description, price, cost, stock, minimum_stock,
		        image_key, expiration_date, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET name = ?, short_description = ?, description = ?, price = ?, cost = ?,
		     stock = ?, minimum_stock = ?, image_key = ?, expiration_date = ?, updated_at = ?
		 WHERE id = ?`,
		product.Name,
		product.ShortDescription,
		product.Description,
		product.Price,
		product.Cost,
		product.Stock,
		product.MinimumStock,
		product.ImageKey,
		product.ExpirationDate,
		product.UpdatedAt,
		product.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM product_categories WHERE product_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM products WHERE id = ?`, id).Error
	})
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Product], error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{})

	var opts []option.QueryOption
	if filter.Name != "" {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "name", Operator: option.LIKE, Value: filter.Name}))
	}
	if filter.MinPrice != nil {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "price", Operator: option.GTE, Value: *filter.MinPrice}))
	}
	if filter.MaxPrice != nil {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "price", Operator: option.LTE, Value: *filter.MaxPrice}))
	}
	if filter.MinStock != nil {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "stock", Operator: option.GTE, Value: *filter.MinStock}))
	}
	if filter.MaxStock != nil {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "stock", Operator: option.LTE, Value: *filter.MaxStock}))
	}
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}

	if filter.CategoryID != 0 {
		stmt = stmt.Where(
			"id IN (SELECT product_id FROM product_categories WHERE category_id = ?)",
			filter.CategoryID,
		)
	}

	if sortableProductColumns[filter.SortBy] {
		stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, sortableProductColumns)).Apply(stmt)
	} else {
		stmt = stmt.Order("name ASC")
	}
	return pagination.Paginate[domain.Product](stmt, filter.Request)
}

func (r *repo) SetImageKey(ctx context.Context, db *gorm.DB, id int64, key *string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET image_key = ?, updated_at = ? WHERE id = ?`,
		key, time.Now().UTC(), id,
	).Error
}

func (r *repo) LowStock(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[domain.Product], error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{}).
		Where("stock <= minimum_stock").
		Order("stock ASC")
	return pagination.Paginate[domain.Product](stmt, req)
}

func (r *repo) Expired(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[domain.Product], error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{}).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", time.Now().UTC().Format("2006-01-02")).
		Order("expiration_date ASC")
	return pagination.Paginate[domain.Product](stmt, req)
}
