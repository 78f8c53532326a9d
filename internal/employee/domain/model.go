package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee is a staff account. Password holds the bcrypt hash and never
// leaves the server.
type Employee struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	DocumentID *string         `json:"documentid,omitempty" gorm:"column:documentid;uniqueIndex"`
	Email      string          `json:"email" gorm:"not null;uniqueIndex"`
	Phone      string          `json:"phone"`
	FirstName  string          `json:"first_name" gorm:"not null"`
	LastName   string          `json:"last_name"`
	BirthDate  *datatypes.Date `json:"birth_date,omitempty"`
	Password   string          `json:"-" gorm:"not null"`
	Role       string          `json:"role" gorm:"type:varchar(20);not null;default:employee"`
	Status     bool            `json:"status" gorm:"not null;default:true"`
	CreatedAt  time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Employee) TableName() string { return "employees" }
