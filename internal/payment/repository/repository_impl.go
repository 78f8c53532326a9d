package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ventia/ventia/internal/payment/domain"
	"github.com/ventia/ventia/pkg/db/option"
	"github.com/ventia/ventia/pkg/db/pagination"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Payment, error) {
	var p domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, client_id, amount, method, status, due_date, interest_rate, account_number, created_at, updated_at
		 FROM payments WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE payments SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM payments WHERE id = ?`, id).Error
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, filter domain.Filter) (pagination.Page[domain.Payment], error) {
	stmt := db.WithContext(ctx).Model(&domain.Payment{})

	var opts []option.QueryOption
	if filter.ClientID != 0 {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "client_id", Operator: option.EQ, Value: filter.ClientID}))
	}
	if filter.Method != "" {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "method", Operator: option.EQ, Value: filter.Method}))
	}
	if filter.Status != "" {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "status", Operator: option.EQ, Value: filter.Status}))
	}
	if filter.MinAmount > 0 {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "amount", Operator: option.GTE, Value: filter.MinAmount}))
	}
	if filter.MaxAmount > 0 {
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "amount", Operator: option.LTE, Value: filter.MaxAmount}))
	}
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}

	stmt = stmt.Order("created_at DESC")
	return pagination.Paginate[domain.Payment](stmt, filter.Request)
}
