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
	"github.com/ventia/ventia/internal/payment/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

var statusTransitions = map[string][]string{
	domain.StatusPending:   {domain.StatusCompleted, domain.StatusFailed},
	domain.StatusCompleted: {domain.StatusRefunded},
	domain.StatusFailed:    {},
	domain.StatusRefunded:  {},
}

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
		log:     p.Log.Named("payment.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		checker: p.Checker,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	switch method {
	case domain.MethodCash, domain.MethodBankTransfer, domain.MethodOnCredit:
	default:
		return nil, domain.ErrInvalidMethod
	}

	// Method-conditional fields are required-iff: present for their method,
	// absent for every other.
	onCredit := method == domain.MethodOnCredit
	if onCredit != (req.DueDate != nil && req.InterestRate != nil) {
		return nil, domain.ErrCreditFields
	}
	if !onCredit && (req.DueDate != nil || req.InterestRate != nil) {
		return nil, domain.ErrCreditFields
	}
	bankTransfer := method == domain.MethodBankTransfer
	if bankTransfer != (req.AccountNumber != nil && strings.TrimSpace(*req.AccountNumber) != "") {
		return nil, domain.ErrAccountField
	}

	ok, err := s.checker.ClientExists(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		ID:            s.genID.Generate().Int64(),
		ClientID:      req.ClientID,
		Amount:        req.Amount,
		Method:        method,
		Status:        domain.StatusPending,
		DueDate:       req.DueDate,
		InterestRate:  req.InterestRate,
		AccountNumber: req.AccountNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) ChangeStatus(ctx context.Context, id int64, status string) (*domain.Payment, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if _, ok := statusTransitions[status]; !ok {
		return nil, domain.ErrInvalidStatus
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	legal := false
	for _, next := range statusTransitions[p.Status] {
		if next == status {
			legal = true
			break
		}
	}
	if !legal {
		return nil, domain.ErrIllegalTransition
	}

	if err := s.repo.UpdateStatus(ctx, s.db, id, status); err != nil {
		return nil, err
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) Search(ctx context.Context, filter domain.Filter) (pagination.Page[domain.Payment], error) {
	filter.Method = strings.ToUpper(strings.TrimSpace(filter.Method))
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	return s.repo.Search(ctx, s.db, filter)
}
