package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/integrity"
	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/services/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Checker *integrity.Checker
}

type Manager struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	checker *integrity.Checker
}

func New(p Params) domain.Manager {
	return &Manager{
		db:      p.DB,
		log:     p.Log.Named("services.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		checker: p.Checker,
	}
}

func (m *Manager) Create(ctx context.Context, req domain.CreateRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:          m.genID.Generate().Int64(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Cost:        req.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.repo.Create(ctx, m.db, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (m *Manager) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := m.repo.FindByID(ctx, m.db, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return svc, nil
}

func (m *Manager) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Service, error) {
	svc, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		svc.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrInvalidPrice
		}
		svc.Price = *req.Price
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.Cost != nil {
		svc.Cost = *req.Cost
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := m.repo.Update(ctx, m.db, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (m *Manager) Delete(ctx context.Context, id int64) error {
	if _, err := m.Get(ctx, id); err != nil {
		return err
	}

	referenced, err := m.checker.ServiceReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrReferenced
	}
	return m.repo.Delete(ctx, m.db, id)
}

func (m *Manager) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Service], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	return m.repo.Search(ctx, m.db, filter)
}

func (m *Manager) AddInput(ctx context.Context, serviceID, productID int64) error {
	if _, err := m.Get(ctx, serviceID); err != nil {
		return err
	}
	exists, err := m.checker.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	present, err := m.repo.InputExists(ctx, m.db, serviceID, productID)
	if err != nil {
		return err
	}
	if present {
		return domain.ErrDuplicateInput
	}
	return m.repo.AddInput(ctx, m.db, &domain.ServiceInput{
		ServiceID: serviceID,
		ProductID: productID,
	})
}

func (m *Manager) RemoveInput(ctx context.Context, serviceID, productID int64) error {
	present, err := m.repo.InputExists(ctx, m.db, serviceID, productID)
	if err != nil {
		return err
	}
	if !present {
		return domain.ErrInputNotFound
	}
	return m.repo.RemoveInput(ctx, m.db, serviceID, productID)
}

func (m *Manager) InputProducts(ctx context.Context, serviceID int64) ([]productdomain.Product, error) {
	if _, err := m.Get(ctx, serviceID); err != nil {
		return nil, err
	}
	return m.repo.InputProducts(ctx, m.db, serviceID)
}
