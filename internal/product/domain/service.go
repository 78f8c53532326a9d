package domain

import (
	"context"
	"errors"
	"io"

	"gorm.io/datatypes"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Product], error)

	SetStock(ctx context.Context, id int64, stock int) (*Product, error)
	AddStock(ctx context.Context, id int64, delta int) (*Product, error)
	LowStock(ctx context.Context, req pagination.Request) (pagination.Page[Product], error)
	Expired(ctx context.Context, req pagination.Request) (pagination.Page[Product], error)

	UploadImage(ctx context.Context, id int64, upload ImageUpload) (*Product, error)
	DeleteImage(ctx context.Context, id int64) (*Product, error)
}

// ImageUpload carries one multipart file. ContentType must be one of the
// accepted image types or the upload is rejected before any blob write.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type CreateRequest struct {
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	Description      string          `json:"description"`
	Price            float64         `json:"price"`
	Cost             float64         `json:"cost"`
	Stock            int             `json:"stock"`
	MinimumStock     int             `json:"minimum_stock"`
	ExpirationDate   *datatypes.Date `json:"expiration_date"`
}

// UpdateRequest is a patch: only non-nil fields are applied.
type UpdateRequest struct {
	Name             *string         `json:"name"`
	ShortDescription *string         `json:"short_description"`
	Description      *string         `json:"description"`
	Price            *float64        `json:"price"`
	Cost             *float64        `json:"cost"`
	MinimumStock     *int            `json:"minimum_stock"`
	ExpirationDate   *datatypes.Date `json:"expiration_date"`
}

type Filter struct {
	pagination.Request
	Name       string   `json:"name"`
	CategoryID int64    `json:"category_id"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	MinStock   *int     `json:"min_stock"`
	MaxStock   *int     `json:"max_stock"`
	SortBy     string   `json:"sort_by"`
	OrderBy    string   `json:"order_by"`
}

var (
	ErrNotFound         = errors.New("product not found")
	ErrInvalidName      = errors.New("product name is required")
	ErrInvalidPrice     = errors.New("product price must be zero or greater")
	ErrInvalidStock     = errors.New("product stock must be zero or greater")
	ErrReferenced       = errors.New("product is referenced by existing order lines")
	ErrUnsupportedImage = errors.New("image must be png, jpeg or webp")
	ErrNoImage          = errors.New("product has no image")
)
