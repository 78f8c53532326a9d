package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Client, error) {
	var c domain.Client
	err := db.WithContext(ctx).Raw(
		`SELECT id, documentid, email, phone, first_name, last_name, status, created_at, updated_at
		 FROM clients WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	if client == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE clients
		 SET documentid = ?, email = ?, phone = ?, first_name = ?, last_name = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		client.DocumentID,
		client.Email,
		client.Phone,
		client.FirstName,
		client.LastName,
		client.Status,
		client.UpdatedAt,
		client.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM clients WHERE id = ?`, id).Error
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Client], error) {
	stmt := db.WithContext(ctx).Model(&domain.Client{})

	if filter.Name != "" {
		like := "%" + filter.Name + "%"
		stmt = stmt.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if filter.Email != "" {
		stmt = stmt.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.DocumentID != "" {
		stmt = stmt.Where("documentid = ?", filter.DocumentID)
	}
	if filter.Status != nil {
		stmt = stmt.Where("status = ?", *filter.Status)
	}

	stmt = stmt.Order("created_at DESC")
	return pagination.Paginate[domain.Client](stmt, filter.Request)
}
