package domain

import "time"

// Client is a buyer on record. Email is unique among clients; DocumentID is
// the optional national/business identifier.
type Client struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	DocumentID *string   `json:"documentid,omitempty" gorm:"column:documentid;uniqueIndex"`
	Email      string    `json:"email" gorm:"not null;uniqueIndex"`
	Phone      string    `json:"phone"`
	FirstName  string    `json:"first_name" gorm:"not null"`
	LastName   string    `json:"last_name"`
	Status     bool      `json:"status" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Client) TableName() string { return "clients" }
