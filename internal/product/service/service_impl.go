package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/config"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/internal/providers/completion"
	"github.com/ventia/ventia/internal/providers/storage"
	"github.com/ventia/ventia/pkg/db/pagination"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type Params struct {
	fx.In

	Config     config.Config
	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Checker    *integrity.Checker
	Storage    storage.Provider
	Completion completion.Provider
}

type Service struct {
	cfg        config.StorageConfig
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	checker    *integrity.Checker
	storage    storage.Provider
	completion completion.Provider
}

func New(p Params) domain.Service {
	return &Service{
		cfg:        p.Config.Storage,
		db:         p.DB,
		log:        p.Log.Named("product.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		checker:    p.Checker,
		storage:    p.Storage,
		completion: p.Completion,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.Stock < 0 || req.MinimumStock < 0 {
		return nil, domain.ErrInvalidStock
	}

	short := strings.TrimSpace(req.ShortDescription)
	if short == "" {
		source := strings.TrimSpace(req.Description)
		if source == "" {
			source = name
		}
		generated, err := s.completion.ShortDescription(ctx, source)
		if err != nil {
			s.log.Warn("short description generation failed",
				zap.String("product", name), zap.Error(err))
		} else {
			short = generated
		}
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:               s.genID.Generate().Int64(),
		Name:             name,
		ShortDescription: short,
		Description:      strings.TrimSpace(req.Description),
		Price:            req.Price,
		Cost:             req.Cost,
		Stock:            req.Stock,
		MinimumStock:     req.MinimumStock,
		ExpirationDate:   req.ExpirationDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		p.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrInvalidPrice
		}
		p.Price = *req.Price
	}
	if req.MinimumStock != nil {
		if *req.MinimumStock < 0 {
			return nil, domain.ErrInvalidStock
		}
		p.MinimumStock = *req.MinimumStock
	}
	if req.ShortDescription != nil {
		p.ShortDescription = strings.TrimSpace(*req.ShortDescription)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.ExpirationDate != nil {
		p.ExpirationDate = req.ExpirationDate
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := s.checker.ProductReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrReferenced
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	if p.ImageKey != nil {
		if err := s.storage.Delete(ctx, *p.ImageKey); err != nil {
			s.log.Warn("orphaned product image",
				zap.String("key", *p.ImageKey), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Product], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	return s.repo.Search(ctx, s.db, filter)
}

func (s *Service) SetStock(ctx context.Context, id int64, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) AddStock(ctx context.Context, id int64, delta int) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := p.Stock + delta
	if next < 0 {
		next = 0
	}
	p.Stock = next
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) LowStock(ctx context.Context, req pagination.Request) (pagination.Page[domain.Product], error) {
	return s.repo.LowStock(ctx, s.db, req)
}

func (s *Service) Expired(ctx context.Context, req pagination.Request) (pagination.Page[domain.Product], error) {
	return s.repo.Expired(ctx, s.db, req)
}

func (s *Service) UploadImage(ctx context.Context, id int64, upload domain.ImageUpload) (*domain.Product, error) {
	if !allowedImageTypes[upload.ContentType] {
		return nil, domain.ErrUnsupportedImage
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := s.imageKey(upload.Filename)
	if err := s.storage.Put(ctx, key, upload.ContentType, upload.Body, upload.Size); err != nil {
		return nil, err
	}

	previous := p.ImageKey
	if err := s.repo.SetImageKey(ctx, s.db, id, &key); err != nil {
		return nil, err
	}
	p.ImageKey = &key

	if previous != nil && *previous != key {
		if err := s.storage.Delete(ctx, *previous); err != nil {
			s.log.Warn("orphaned product image",
				zap.String("key", *previous), zap.Error(err))
		}
	}
	return p, nil
}

func (s *Service) DeleteImage(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ImageKey == nil {
		return nil, domain.ErrNoImage
	}

	key := *p.ImageKey
	if err := s.repo.SetImageKey(ctx, s.db, id, nil); err != nil {
		return nil, err
	}
	p.ImageKey = nil

	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Warn("orphaned product image", zap.String("key", key), zap.Error(err))
	}
	return p, nil
}

func (s *Service) imageKey(filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	name := slug.Make(base)
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("%s/%s-%s%s", s.cfg.ImageFolder, uuid.NewString(), name, strings.ToLower(path.Ext(filename)))
}
