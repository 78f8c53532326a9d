package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/category/domain"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/pkg/db"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Checker *integrity.Checker
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	checker *integrity.Checker
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("category.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		checker: p.Checker,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	c := &domain.Category{
		ID:          s.genID.Generate().Int64(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		c.Name = name
		c.Slug = slug.Make(name)
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) AssignProduct(ctx context.Context, categoryID, productID int64) error {
	if _, err := s.Get(ctx, categoryID); err != nil {
		return err
	}
	exists, err := s.checker.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	assigned, err := s.repo.Assigned(ctx, s.db, categoryID, productID)
	if err != nil {
		return err
	}
	if assigned {
		return domain.ErrAlreadyAssigned
	}
	return s.repo.Assign(ctx, s.db, &domain.ProductCategory{
		ProductID:  productID,
		CategoryID: categoryID,
	})
}

func (s *Service) RemoveProduct(ctx context.Context, categoryID, productID int64) error {
	assigned, err := s.repo.Assigned(ctx, s.db, categoryID, productID)
	if err != nil {
		return err
	}
	if !assigned {
		return domain.ErrNotAssigned
	}
	return s.repo.Unassign(ctx, s.db, categoryID, productID)
}

func (s *Service) CategoriesForProduct(ctx context.Context, productID int64) ([]domain.Category, error) {
	exists, err := s.checker.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return s.repo.ForProduct(ctx, s.db, productID)
}
