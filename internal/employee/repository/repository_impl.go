package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/employee/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Create(employee).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := db.WithContext(ctx).Raw(
		`SELECT id, documentid, email, phone, first_name, last_name, birth_date, password, role, status, created_at, updated_at
		 FROM employees WHERE id = ?`,
		id,
	).Scan(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Employee, error) {
	var e domain.Employee
	err := db.WithContext(ctx).Raw(
		`SELECT id, documentid, email, phone, first_name, last_name, birth_date, password, role, status, created_at, updated_at
		 FROM employees WHERE email = ?`,
		email,
	).Scan(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	if employee == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE employees
		 SET documentid = ?, email = ?, phone = ?, first_name = ?, last_name = ?, birth_date = ?, password = ?, role = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		employee.DocumentID,
		employee.Email,
		employee.Phone,
		employee.FirstName,
		employee.LastName,
		employee.BirthDate,
		employee.Password,
		employee.Role,
		employee.Status,
		employee.UpdatedAt,
		employee.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM employees WHERE id = ?`, id).Error
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Employee], error) {
	stmt := db.WithContext(ctx).Model(&domain.Employee{})

	if filter.Name != "" {
		like := "%" + filter.Name + "%"
		stmt = stmt.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if filter.Email != "" {
		stmt = stmt.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.DocumentID != "" {
		stmt = stmt.Where("documentid = ?", filter.DocumentID)
	}
	if filter.Role != "" {
		stmt = stmt.Where("role = ?", filter.Role)
	}
	if filter.Status != nil {
		stmt = stmt.Where("status = ?", *filter.Status)
	}

	stmt = stmt.Order("created_at DESC")
	return pagination.Paginate[domain.Employee](stmt, filter.Request)
}
