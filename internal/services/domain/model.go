package domain

import "time"

// Service is a sellable unit of work. Its bill of materials lives in
// ServiceInput rows pointing at shared product rows.
type Service struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Service) TableName() string { return "services" }

// ServiceInput marks a product as consumed when the service is performed.
// At most one row per (service, product) pair.
type ServiceInput struct {
	ServiceID int64 `json:"service_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ServiceInput) TableName() string { return "service_inputs" }
