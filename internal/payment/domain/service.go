package domain

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"github.com/ventia/ventia/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Payment, error)
	Get(ctx context.Context, id int64) (*Payment, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*Payment, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter) (pagination.Page[Payment], error)
}

type CreateRequest struct {
	ClientID      int64           `json:"client_id"`
	Amount        float64         `json:"amount"`
	Method        string          `json:"method"`
	DueDate       *datatypes.Date `json:"due_date"`
	InterestRate  *float64        `json:"interest_rate"`
	AccountNumber *string         `json:"account_number"`
}

type Filter struct {
	pagination.Request
	ClientID  int64   `json:"client_id"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount"`
}

var (
	ErrNotFound          = errors.New("payment not found")
	ErrClientNotFound    = errors.New("payment client does not exist")
	ErrInvalidAmount     = errors.New("payment amount must be greater than zero")
	ErrInvalidMethod     = errors.New("payment method must be CASH, BANK_TRANSFER or ON_CREDIT")
	ErrCreditFields      = errors.New("due_date and interest_rate are required exactly for ON_CREDIT payments")
	ErrAccountField      = errors.New("account_number is required exactly for BANK_TRANSFER payments")
	ErrInvalidStatus     = errors.New("unknown payment status")
	ErrIllegalTransition = errors.New("payment status transition not allowed")
)
