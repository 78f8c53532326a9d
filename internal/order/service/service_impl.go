package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/order/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Store domain.StoreOps
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	store domain.StoreOps
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("order.service"),
		genID: p.GenID,
		repo:  p.Repo,
		store: p.Store,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Order, error) {
	ok, err := s.store.ClientExists(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	ok, err = s.store.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	o := &domain.Order{
		ID:         s.genID.Generate().Int64(),
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		TotalPrice: req.TotalPrice,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, o); err != nil {
			return err
		}
		// Creation straight into Completada runs the completion effects in
		// the creating transaction.
		if status == domain.StatusCompleted {
			return s.applyInventory(ctx, tx, o.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if req.ClientID != nil {
		ok, err := s.store.ClientExists(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrClientNotFound
		}
		o.ClientID = *req.ClientID
	}
	if req.EmployeeID != nil {
		ok, err := s.store.EmployeeExists(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrEmployeeNotFound
		}
		o.EmployeeID = *req.EmployeeID
	}
	if req.TotalPrice != nil {
		o.TotalPrice = *req.TotalPrice
	}
	o.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateHeader(ctx, s.db, o); err != nil {
		return nil, err
	}

	// A patched status rides the state machine so completion effects and
	// transition rules apply exactly as on the status route.
	if req.Status != nil && *req.Status != o.Status {
		return s.ChangeStatus(ctx, id, *req.Status)
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if o.Status == domain.StatusCompleted {
		return domain.ErrOrderCompleted
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM order_products WHERE order_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM order_services WHERE order_id = ?`, id).Error; err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *Service) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Order], error) {
	return s.repo.Search(ctx, s.db, filter)
}

func (s *Service) ChangeStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	var o *domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if !current.Status.CanTransitionTo(target) {
			return domain.ErrIllegalTransition
		}

		if err := s.repo.UpdateStatus(ctx, tx, id, target); err != nil {
			return err
		}
		// The decrement rides the same transaction as the status write, and
		// runs exactly once per entry since Completada is unreachable from
		// itself.
		if target == domain.StatusCompleted {
			if err := s.applyInventory(ctx, tx, id); err != nil {
				return err
			}
		}

		current.Status = target
		current.UpdatedAt = time.Now().UTC()
		o = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// applyInventory decrements stock for every product line of the order,
// clamped at zero. No service-input expansion and no reversal on refund.
func (s *Service) applyInventory(ctx context.Context, tx *gorm.DB, orderID int64) error {
	lines, err := s.repo.Products(ctx, tx, orderID)
	if err != nil {
		return err
	}

	totals := make(map[int64]int, len(lines))
	for _, line := range lines {
		totals[line.ProductID] += line.Quantity
	}

	for productID, quantity := range totals {
		if err := s.repo.DecrementStock(ctx, tx, productID, quantity); err != nil {
			return err
		}
	}
	return nil
}

// mutableOrder loads the order inside tx and refuses completed ones.
func (s *Service) mutableOrder(ctx context.Context, tx *gorm.DB, orderID int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Status == domain.StatusCompleted {
		return nil, domain.ErrOrderCompleted
	}
	return o, nil
}

func (s *Service) AddProduct(ctx context.Context, req domain.LineRequest) (*domain.OrderProduct, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var line *domain.OrderProduct
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, req.OrderID); err != nil {
			return err
		}

		ok, err := s.store.ProductExists(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrProductNotFound
		}

		existing, err := s.repo.FindProduct(ctx, tx, req.OrderID, req.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateLine
		}

		price, err := s.store.ProductPrice(ctx, req.ProductID)
		if err != nil {
			return err
		}

		line = &domain.OrderProduct{
			OrderID:   req.OrderID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := s.repo.AddProduct(ctx, tx, line); err != nil {
			return err
		}
		// The running total accrues on insertion only; later quantity edits
		// and removals leave it untouched.
		return s.repo.AddToTotal(ctx, tx, req.OrderID, float64(req.Quantity)*price)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *Service) UpdateProduct(ctx context.Context, req domain.LineRequest) (*domain.OrderProduct, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var line *domain.OrderProduct
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, req.OrderID); err != nil {
			return err
		}

		existing, err := s.repo.FindProduct(ctx, tx, req.OrderID, req.ProductID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrLineNotFound
		}

		if err := s.repo.UpdateProductQuantity(ctx, tx, req.OrderID, req.ProductID, req.Quantity); err != nil {
			return err
		}
		existing.Quantity = req.Quantity
		line = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *Service) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, orderID); err != nil {
			return err
		}

		existing, err := s.repo.FindProduct(ctx, tx, orderID, productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrLineNotFound
		}
		return s.repo.RemoveProduct(ctx, tx, orderID, productID)
	})
}

func (s *Service) AddService(ctx context.Context, req domain.ServiceLineRequest) (*domain.OrderService, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var line *domain.OrderService
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, req.OrderID); err != nil {
			return err
		}

		ok, err := s.store.ServiceExists(ctx, req.ServiceID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrServiceNotFound
		}

		existing, err := s.repo.FindService(ctx, tx, req.OrderID, req.ServiceID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateLine
		}

		// Service lines never touch total_price; they are billed through the
		// invoice workflow.
		line = &domain.OrderService{
			OrderID:   req.OrderID,
			ServiceID: req.ServiceID,
			Quantity:  req.Quantity,
		}
		return s.repo.AddService(ctx, tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *Service) UpdateService(ctx context.Context, req domain.ServiceLineRequest) (*domain.OrderService, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var line *domain.OrderService
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, req.OrderID); err != nil {
			return err
		}

		existing, err := s.repo.FindService(ctx, tx, req.OrderID, req.ServiceID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrLineNotFound
		}

		if err := s.repo.UpdateServiceQuantity(ctx, tx, req.OrderID, req.ServiceID, req.Quantity); err != nil {
			return err
		}
		existing.Quantity = req.Quantity
		line = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *Service) RemoveService(ctx context.Context, orderID, serviceID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.mutableOrder(ctx, tx, orderID); err != nil {
			return err
		}

		existing, err := s.repo.FindService(ctx, tx, orderID, serviceID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrLineNotFound
		}
		return s.repo.RemoveService(ctx, tx, orderID, serviceID)
	})
}

func (s *Service) Products(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	if _, err := s.Get(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.Products(ctx, s.db, orderID)
}

func (s *Service) Services(ctx context.Context, orderID int64) ([]domain.OrderService, error) {
	if _, err := s.Get(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.Services(ctx, s.db, orderID)
}
