package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/client/domain"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/pkg/db"
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
		log:     p.Log.Named("client.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		checker: p.Checker,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Client, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, domain.ErrInvalidName
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now().UTC()
	c := &domain.Client{
		ID:         s.genID.Generate().Int64(),
		DocumentID: normalizeDocument(req.DocumentID),
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		FirstName:  firstName,
		LastName:   strings.TrimSpace(req.LastName),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	id, err := s.checker.ClientIDByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, integrity.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) GetByDocument(ctx context.Context, documentID string) (*domain.Client, error) {
	id, err := s.checker.ClientIDByDocument(ctx, strings.TrimSpace(documentID))
	if err != nil {
		if errors.Is(err, integrity.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Client, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.ErrInvalidEmail
		}
		c.Email = email
	}
	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if firstName == "" {
			return nil, domain.ErrInvalidName
		}
		c.FirstName = firstName
	}
	if req.DocumentID != nil {
		c.DocumentID = normalizeDocument(req.DocumentID)
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.LastName != nil {
		c.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	referenced, err := s.checker.OrdersExistForClient(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrReferenced
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Client], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Email = strings.TrimSpace(filter.Email)
	filter.DocumentID = strings.TrimSpace(filter.DocumentID)
	return s.repo.Search(ctx, s.db, filter)
}

func normalizeDocument(doc *string) *string {
	if doc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*doc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
