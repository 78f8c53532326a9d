package integrity

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("lookup resolved nothing")

// Checker answers referential questions with single-row probes. It never
// fetches whole rows; higher layers consult it before mutating.
type Checker struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

func (c *Checker) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := c.db.WithContext(ctx).Raw(query, args...).Scan(&one).Error
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

func (c *Checker) OrderExists(ctx context.Context, orderID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM orders WHERE id = ? LIMIT 1`, orderID)
}

func (c *Checker) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM clients WHERE id = ? LIMIT 1`, clientID)
}

func (c *Checker) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM employees WHERE id = ? LIMIT 1`, employeeID)
}

func (c *Checker) ProductExists(ctx context.Context, productID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM products WHERE id = ? LIMIT 1`, productID)
}

func (c *Checker) ServiceExists(ctx context.Context, serviceID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM services WHERE id = ? LIMIT 1`, serviceID)
}

func (c *Checker) OrdersExistForClient(ctx context.Context, clientID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM orders WHERE client_id = ? LIMIT 1`, clientID)
}

func (c *Checker) OrdersExistForEmployee(ctx context.Context, employeeID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM orders WHERE employee_id = ? LIMIT 1`, employeeID)
}

func (c *Checker) OrderProductExists(ctx context.Context, orderID, productID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_products WHERE order_id = ? AND product_id = ? LIMIT 1`, orderID, productID)
}

func (c *Checker) OrderServiceExists(ctx context.Context, orderID, serviceID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_services WHERE order_id = ? AND service_id = ? LIMIT 1`, orderID, serviceID)
}

func (c *Checker) ProductReferenced(ctx context.Context, productID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_products WHERE product_id = ? LIMIT 1`, productID)
}

func (c *Checker) ServiceReferenced(ctx context.Context, serviceID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_services WHERE service_id = ? LIMIT 1`, serviceID)
}

func (c *Checker) OrderProductInCompletedOrder(ctx context.Context, orderID, productID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_products op
		JOIN orders o ON o.id = op.order_id
		WHERE op.order_id = ? AND op.product_id = ? AND o.status = 'Completada' LIMIT 1`, orderID, productID)
}

func (c *Checker) OrderServiceInCompletedOrder(ctx context.Context, orderID, serviceID int64) (bool, error) {
	return c.exists(ctx, `SELECT 1 FROM order_services os
		JOIN orders o ON o.id = os.order_id
		WHERE os.order_id = ? AND os.service_id = ? AND o.status = 'Completada' LIMIT 1`, orderID, serviceID)
}

// ProductPrice reads the current unit price of a product.
func (c *Checker) ProductPrice(ctx context.Context, productID int64) (float64, error) {
	var row struct {
		ID    int64
		Price float64
	}
	err := c.db.WithContext(ctx).Raw(`SELECT id, price FROM products WHERE id = ?`, productID).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.ID == 0 {
		return 0, ErrNotFound
	}
	return row.Price, nil
}

func (c *Checker) translate(ctx context.Context, query string, value string) (int64, error) {
	var id int64
	err := c.db.WithContext(ctx).Raw(query, value).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

func (c *Checker) ClientIDByEmail(ctx context.Context, email string) (int64, error) {
	return c.translate(ctx, `SELECT id FROM clients WHERE email = ?`, email)
}

func (c *Checker) ClientIDByDocument(ctx context.Context, documentID string) (int64, error) {
	return c.translate(ctx, `SELECT id FROM clients WHERE documentid = ?`, documentID)
}

func (c *Checker) EmployeeIDByEmail(ctx context.Context, email string) (int64, error) {
	return c.translate(ctx, `SELECT id FROM employees WHERE email = ?`, email)
}

func (c *Checker) EmployeeIDByDocument(ctx context.Context, documentID string) (int64, error) {
	return c.translate(ctx, `SELECT id FROM employees WHERE documentid = ?`, documentID)
}
