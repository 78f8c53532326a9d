package domain

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Client, error)
	Update(ctx context.Context, db *gorm.DB, client *Client) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Search(ctx context.Context, db *gorm.DB, filter Filter) (pagination.Page[Client], error)
}
