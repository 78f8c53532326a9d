package pagination

import "gorm.io/gorm"

const (
	DefaultPageSize = 10
	MaxPageSize     = 250
)

type Request struct {
	Page int `json:"page" form:"page"`
	Size int `json:"size" form:"size"`
}

func (r Request) normalize() (int, int) {
	page := r.Page
	if page < 1 {
		page = 1
	}
	size := r.Size
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// Paginate materializes one page of stmt along with the unpaged total.
func Paginate[T any](stmt *gorm.DB, req Request) (Page[T], error) {
	page, size := req.normalize()

	var total int64
	if err := stmt.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0, size)
	err := stmt.Session(&gorm.Session{}).
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return Page[T]{}, err
	}

	return Page[T]{Items: items, Total: total, Page: page, Size: size}, nil
}
