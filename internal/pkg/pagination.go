package pkg

import (
	"gorm.io/gorm"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

// Paginate returns a GORM scope that applies LIMIT and OFFSET for an
// already-normalized beneficiary filter.
func Paginate(f domain.BeneficiaryFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (f.Page - 1) * f.PageSize
		return db.Offset(offset).Limit(f.PageSize)
	}
}
