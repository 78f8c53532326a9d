package domain

import "time"

type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

// ProductCategory links a product to a category. Membership is many-to-many.
type ProductCategory struct {
	ProductID  int64 `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64 `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ProductCategory) TableName() string { return "product_categories" }
