package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/taskmate-api/internal/utils"
)

// Paginate applies pagination to a GORM query. A zero limit leaves the query unbounded.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Limit <= 0 {
			return db
		}
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// NewestFirst orders rows by creation time, newest first, with the id as tie breaker.
// An empty table leaves the columns unqualified.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if table != "" {
		prefix = table + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(prefix + "created_at DESC").Order(prefix + "id DESC")
	}
}
