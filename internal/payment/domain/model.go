package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MethodCash         = "CASH"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodOnCredit     = "ON_CREDIT"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

// Payment records money against a client. DueDate and InterestRate are set
// exactly when Method is ON_CREDIT; AccountNumber exactly when BANK_TRANSFER.
type Payment struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	ClientID      int64           `json:"client_id" gorm:"not null;index"`
	Amount        float64         `json:"amount" gorm:"not null"`
	Method        string          `json:"method" gorm:"type:varchar(20);not null"`
	Status        string          `json:"status" gorm:"type:varchar(20);not null;default:PENDING"`
	DueDate       *datatypes.Date `json:"due_date,omitempty"`
	InterestRate  *float64        `json:"interest_rate,omitempty"`
	AccountNumber *string         `json:"account_number,omitempty"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Payment) TableName() string { return "payments" }
