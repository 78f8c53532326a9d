package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/order/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, client_id, employee_id, total_price, status, created_at, updated_at
		 FROM orders WHERE id = ?`,
		id,
	).Scan(&o).Error
	if err != nil {
		return nil, err
	}
	if o.ID == 0 {
		return nil, nil
	}
	return &o, nil
}

func (r *repo) UpdateHeader(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	if order == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET client_id = ?, employee_id = ?, total_price = ?, updated_at = ? WHERE id = ?`,
		order.ClientID,
		order.EmployeeID,
		order.TotalPrice,
		order.UpdatedAt,
		order.ID,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status domain.Status) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	).Error
}

func (r *repo) AddToTotal(ctx context.Context, db *gorm.DB, id int64, delta float64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET total_price = total_price + ?, updated_at = ? WHERE id = ?`,
		delta, time.Now().UTC(), id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM orders WHERE id = ?`, id).Error
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Order], error) {
	stmt := db.WithContext(ctx).Model(&domain.Order{})

	if filter.ClientID != 0 {
		stmt = stmt.Where("client_id = ?", filter.ClientID)
	}
	if filter.EmployeeID != 0 {
		stmt = stmt.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.MinTotal > 0 {
		stmt = stmt.Where("total_price >= ?", filter.MinTotal)
	}
	if filter.MaxTotal > 0 {
		stmt = stmt.Where("total_price <= ?", filter.MaxTotal)
	}
	if filter.From != "" {
		stmt = stmt.Where("created_at >= ?", filter.From)
	}
	if filter.To != "" {
		stmt = stmt.Where("created_at <= ?", filter.To)
	}

	stmt = stmt.Order("created_at DESC")
	return pagination.Paginate[domain.Order](stmt, filter.Request)
}

func (r *repo) AddProduct(ctx context.Context, db *gorm.DB, line *domain.OrderProduct) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *repo) FindProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (*domain.OrderProduct, error) {
	var line domain.OrderProduct
	err := db.WithContext(ctx).Raw(
		`SELECT order_id, product_id, quantity FROM order_products WHERE order_id = ? AND product_id = ?`,
		orderID, productID,
	).Scan(&line).Error
	if err != nil {
		return nil, err
	}
	if line.OrderID == 0 {
		return nil, nil
	}
	return &line, nil
}

func (r *repo) UpdateProductQuantity(ctx context.Context, db *gorm.DB, orderID, productID int64, quantity int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE order_products SET quantity = ? WHERE order_id = ? AND product_id = ?`,
		quantity, orderID, productID,
	).Error
}

func (r *repo) RemoveProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM order_products WHERE order_id = ? AND product_id = ?`,
		orderID, productID,
	).Error
}

func (r *repo) Products(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.OrderProduct, error) {
	var lines []domain.OrderProduct
	err := db.WithContext(ctx).Raw(
		`SELECT order_id, product_id, quantity FROM order_products WHERE order_id = ? ORDER BY product_id ASC`,
		orderID,
	).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *repo) AddService(ctx context.Context, db *gorm.DB, line *domain.OrderService) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *repo) FindService(ctx context.Context, db *gorm.DB, orderID, serviceID int64) (*domain.OrderService, error) {
	var line domain.OrderService
	err := db.WithContext(ctx).Raw(
		`SELECT order_id, service_id, quantity FROM order_services WHERE order_id = ? AND service_id = ?`,
		orderID, serviceID,
	).Scan(&line).Error
	if err != nil {
		return nil, err
	}
	if line.OrderID == 0 {
		return nil, nil
	}
	return &line, nil
}

func (r *repo) UpdateServiceQuantity(ctx context.Context, db *gorm.DB, orderID, serviceID int64, quantity int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE order_services SET quantity = ? WHERE order_id = ? AND service_id = ?`,
		quantity, orderID, serviceID,
	).Error
}

func (r *repo) RemoveService(ctx context.Context, db *gorm.DB, orderID, serviceID int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM order_services WHERE order_id = ? AND service_id = ?`,
		orderID, serviceID,
	).Error
}

func (r *repo) Services(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.OrderService, error) {
	var lines []domain.OrderService
	err := db.WithContext(ctx).Raw(
		`SELECT order_id, service_id, quantity FROM order_services WHERE order_id = ? ORDER BY service_id ASC`,
		orderID,
	).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// DecrementStock clamps at zero. CASE keeps it portable across the supported
// dialects.
func (r *repo) DecrementStock(ctx context.Context, db *gorm.DB, productID int64, quantity int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET stock = CASE WHEN stock - ? < 0 THEN 0 ELSE stock - ? END
		 WHERE id = ?`,
		quantity, quantity, productID,
	).Error
}
