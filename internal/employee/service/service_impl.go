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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/employee/domain"
	"github.com/ventia/ventia/internal/integrity"
	"github.com/ventia/ventia/pkg/db"
	"github.com/ventia/ventia/pkg/db/pagination"
)

const minPasswordLen = 8

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
		log:     p.Log.Named("employee.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		checker: p.Checker,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Employee, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, domain.ErrInvalidName
	}

	role := strings.TrimSpace(strings.ToLower(req.Role))
	if role == "" {
		role = domain.RoleEmployee
	}
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return nil, domain.ErrInvalidRole
	}

	if len(req.Password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now().UTC()
	e := &domain.Employee{
		ID:         s.genID.Generate().Int64(),
		DocumentID: normalizeDocument(req.DocumentID),
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		FirstName:  firstName,
		LastName:   strings.TrimSpace(req.LastName),
		BirthDate:  req.BirthDate,
		Password:   string(hash),
		Role:       role,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, s.db, e); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	id, err := s.checker.EmployeeIDByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, integrity.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) GetByDocument(ctx context.Context, documentID string) (*domain.Employee, error) {
	id, err := s.checker.EmployeeIDByDocument(ctx, strings.TrimSpace(documentID))
	if err != nil {
		if errors.Is(err, integrity.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.ErrInvalidEmail
		}
		e.Email = email
	}
	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if firstName == "" {
			return nil, domain.ErrInvalidName
		}
		e.FirstName = firstName
	}
	if req.Role != nil {
		role := strings.TrimSpace(strings.ToLower(*req.Role))
		if role != domain.RoleAdmin && role != domain.RoleEmployee {
			return nil, domain.ErrInvalidRole
		}
		e.Role = role
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLen {
			return nil, domain.ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Password = string(hash)
	}
	if req.DocumentID != nil {
		e.DocumentID = normalizeDocument(req.DocumentID)
	}
	if req.Phone != nil {
		e.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.LastName != nil {
		e.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.BirthDate != nil {
		e.BirthDate = req.BirthDate
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, e); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	referenced, err := s.checker.OrdersExistForEmployee(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrReferenced
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Employee], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Email = strings.TrimSpace(filter.Email)
	filter.DocumentID = strings.TrimSpace(filter.DocumentID)
	filter.Role = strings.TrimSpace(strings.ToLower(filter.Role))
	return s.repo.Search(ctx, s.db, filter)
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Employee, error) {
	e, err := s.repo.FindByEmail(ctx, s.db, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrBadCredentials
	}
	if !e.Status {
		return nil, domain.ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	return e, nil
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
