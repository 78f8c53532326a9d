package domain

import (
	"context"
	"errors"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Order, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Order], error)

	ChangeStatus(ctx context.Context, id int64, target Status) (*Order, error)

	AddProduct(ctx context.Context, req LineRequest) (*OrderProduct, error)
	UpdateProduct(ctx context.Context, req LineRequest) (*OrderProduct, error)
	RemoveProduct(ctx context.Context, orderID, productID int64) error
	AddService(ctx context.Context, req ServiceLineRequest) (*OrderService, error)
	UpdateService(ctx context.Context, req ServiceLineRequest) (*OrderService, error)
	RemoveService(ctx context.Context, orderID, serviceID int64) error

	Products(ctx context.Context, orderID int64) ([]OrderProduct, error)
	Services(ctx context.Context, orderID int64) ([]OrderService, error)
}

// StoreOps is the slice of catalog lookups order composition needs. The
// integrity checker satisfies it; tests substitute a stub.
type StoreOps interface {
	ClientExists(ctx context.Context, clientID int64) (bool, error)
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	ProductExists(ctx context.Context, productID int64) (bool, error)
	ServiceExists(ctx context.Context, serviceID int64) (bool, error)
	ProductPrice(ctx context.Context, productID int64) (float64, error)
}

type CreateRequest struct {
	ClientID   int64   `json:"client_id"`
	EmployeeID int64   `json:"employee_id"`
	TotalPrice float64 `json:"total_price"`
	Status     Status  `json:"status"`
}

// UpdateRequest patches the order header. A status field delegates to the
// state machine, so illegal transitions fail the whole patch.
type UpdateRequest struct {
	ClientID   *int64   `json:"client_id"`
	EmployeeID *int64   `json:"employee_id"`
	TotalPrice *float64 `json:"total_price"`
	Status     *Status  `json:"status"`
}

type LineRequest struct {
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ServiceLineRequest struct {
	OrderID   int64 `json:"order_id"`
	ServiceID int64 `json:"service_id"`
	Quantity  int   `json:"quantity"`
}

type Filter struct {
	pagination.Request
	ClientID   int64   `json:"client_id"`
	EmployeeID int64   `json:"employee_id"`
	Status     Status  `json:"status"`
	MinTotal   float64 `json:"min_total"`
	MaxTotal   float64 `json:"max_total"`
	From       string  `json:"from"`
	To         string  `json:"to"`
}

var (
	ErrNotFound          = errors.New("order not found")
	ErrClientNotFound    = errors.New("order client does not exist")
	ErrEmployeeNotFound  = errors.New("order employee does not exist")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrServiceNotFound   = errors.New("service does not exist")
	ErrLineNotFound      = errors.New("order line not found")
	ErrDuplicateLine     = errors.New("the order already contains that item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("status transition not allowed")
	ErrOrderCompleted    = errors.New("Cannot modify a completed order")
)
