package option

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type optionFunc func(*gorm.DB) *gorm.DB

func (f optionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

type Operator string

const (
	EQ   Operator = "="
	GT   Operator = ">"
	GTE  Operator = ">="
	LT   Operator = "<"
	LTE  Operator = "<="
	LIKE Operator = "LIKE"
)

type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// ApplyOperator conjoins a single predicate onto the query.
func ApplyOperator(c Condition) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		if c.Field == "" {
			return stmt
		}
		if c.Operator == LIKE {
			return stmt.Where(fmt.Sprintf("%s LIKE ?", c.Field), "%"+fmt.Sprint(c.Value)+"%")
		}
		return stmt.Where(fmt.Sprintf("%s %s ?", c.Field, c.Operator), c.Value)
	})
}

type QuerySortBy struct {
	Field     string
	Direction string
	Allow     map[string]bool
}

func WithQuerySortBy(sortBy, orderBy string, allow map[string]bool) QuerySortBy {
	return QuerySortBy{Field: sortBy, Direction: orderBy, Allow: allow}
}

// WithSortBy orders by an allow-listed column and leaves the query
// untouched when the column is empty or not allowed.
func WithSortBy(s QuerySortBy) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		field := strings.TrimSpace(s.Field)
		if field == "" || (s.Allow != nil && !s.Allow[field]) {
			return stmt
		}
		direction := "ASC"
		if strings.EqualFold(strings.TrimSpace(s.Direction), "desc") {
			direction = "DESC"
		}
		return stmt.Order(fmt.Sprintf("%s %s", field, direction))
	})
}
