package domain

import (
	"context"
	"errors"
	"time"
)

// Invoice is materialized per request and never persisted as a row; only its
// rendered PDF lives on, in the blob store.
type Invoice struct {
	Number      int64      `json:"number"`
	Date        time.Time  `json:"date"`
	Client      ClientInfo `json:"client"`
	Items       []Item     `json:"items"`
	TaxRate     float64    `json:"tax_rate"`
	Subtotal    float64    `json:"subtotal"`
	TaxAmount   float64    `json:"tax_amount"`
	Total       float64    `json:"total"`
	PDFKey      string     `json:"pdf_key"`
	EmailQueued bool       `json:"email_queued"`
}

// ClientInfo is the client snapshot frozen into the invoice.
type ClientInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DocumentID string `json:"documentid,omitempty"`
}

type Item struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

type GenerateRequest struct {
	OrderID int64   `json:"order_id"`
	TaxRate float64 `json:"tax_rate"`
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*Invoice, error)
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("order client does not exist")
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 1")
)
