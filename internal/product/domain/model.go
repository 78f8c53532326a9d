package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a stocked catalog item. ImageKey addresses an object in the blob
// store owned by this row; Stock is clamped at zero on decrement.
type Product struct {
	ID               int64           `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"not null"`
	ShortDescription string          `json:"short_description"`
	Description      string          `json:"description"`
	Price            float64         `json:"price" gorm:"not null"`
	Cost             float64         `json:"cost"`
	Stock            int             `json:"stock" gorm:"not null;default:0"`
	MinimumStock     int             `json:"minimum_stock" gorm:"not null;default:0"`
	ImageKey         *string         `json:"image_key,omitempty"`
	ExpirationDate   *datatypes.Date `json:"expiration_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
