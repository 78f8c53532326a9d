package domain

import "time"

// Order is the sales aggregate. TotalPrice is a running sum: product lines add
// quantity times unit price on insertion and nothing ever subtracts (the
// documented ledger contract).
type Order struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ClientID   int64     `json:"client_id" gorm:"not null;index"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;index"`
	TotalPrice float64   `json:"total_price" gorm:"not null;default:0"`
	Status     Status    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Order) TableName() string { return "orders" }

type OrderProduct struct {
	OrderID   int64 `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int   `json:"quantity" gorm:"not null"`
}

func (OrderProduct) TableName() string { return "order_products" }

type OrderService struct {
	OrderID   int64 `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ServiceID int64 `json:"service_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int   `json:"quantity" gorm:"not null"`
}

func (OrderService) TableName() string { return "order_services" }
