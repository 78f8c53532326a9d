package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/category/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, description, created_at, updated_at FROM categories WHERE id = ?`, id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, description, created_at, updated_at FROM categories ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	if category == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE categories SET name = ?, slug = ?, description = ?, updated_at = ? WHERE id = ?`,
		category.Name,
		category.Slug,
		category.Description,
		category.UpdatedAt,
		category.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM product_categories WHERE category_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM categories WHERE id = ?`, id).Error
	})
}

func (r *repo) Assign(ctx context.Context, db *gorm.DB, membership *domain.ProductCategory) error {
	return db.WithContext(ctx).Create(membership).Error
}

func (r *repo) Unassign(ctx context.Context, db *gorm.DB, categoryID, productID int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM product_categories WHERE category_id = ? AND product_id = ?`,
		categoryID, productID,
	).Error
}

func (r *repo) Assigned(ctx context.Context, db *gorm.DB, categoryID, productID int64) (bool, error) {
	var one int
	err := db.WithContext(ctx).Raw(
		`SELECT 1 FROM product_categories WHERE category_id = ? AND product_id = ? LIMIT 1`,
		categoryID, productID,
	).Scan(&one).Error
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

func (r *repo) ForProduct(ctx context.Context, db *gorm.DB, productID int64) ([]domain.Category, error) {
	var items []domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at
		 FROM categories c
		 JOIN product_categories pc ON pc.category_id = c.id
		 WHERE pc.product_id = ?
		 ORDER BY c.name ASC`,
		productID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
