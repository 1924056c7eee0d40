package beneficiary

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/beneficiarios/beneficiarios/internal/domain"
	"github.com/beneficiarios/beneficiarios/internal/pkg"
)

// beneficiaryRepository implements domain.BeneficiaryRepository using GORM.
type beneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository creates a new BeneficiaryRepository backed by the given GORM database.
func NewBeneficiaryRepository(db *gorm.DB) domain.BeneficiaryRepository {
	return &beneficiaryRepository{db: db}
}

// Add inserts a new beneficiary and returns the generated id. The caller's
// entity is not mutated; assigning the id stays a domain-level operation.
func (r *beneficiaryRepository) Add(ctx context.Context, b *domain.Beneficiary) (int, error) {
	row := *b
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapError(err)
	}
	return row.ID, nil
}

// Update saves changes to an existing beneficiary.
func (r *beneficiaryRepository) Update(ctx context.Context, b *domain.Beneficiary) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a beneficiary by id. Zero affected rows is success: the
// delete contract is idempotent.
func (r *beneficiaryRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Beneficiary{}, id).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a beneficiary by its primary key.
func (r *beneficiaryRepository) GetByID(ctx context.Context, id int) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

// ListPaged returns one page of beneficiaries matching the filter.
// Pagination is normalized at this boundary, and the count and page queries
// run inside one transaction so both see the same snapshot.
func (r *beneficiaryRepository) ListPaged(ctx context.Context, filter domain.BeneficiaryFilter) (*domain.PageResult[domain.Beneficiary], error) {
	f := filter.Normalized()

	var total int64
	var items []domain.Beneficiary

	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		base := tx.Model(&domain.Beneficiary{}).Scopes(filterScope(f))

		if err := base.Count(&total).Error; err != nil {
			return err
		}
		return base.Order("id").Scopes(pkg.Paginate(f)).Find(&items).Error
	})
	if err != nil {
		return nil, mapError(err)
	}

	return domain.NewPageResult(items, total, f.Page, f.PageSize), nil
}

// filterScope applies the optional list filters: Name matches against first
// or last names as a substring, DocumentNumber and IdentityDocumentID are
// exact matches.
func filterScope(f domain.BeneficiaryFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Name != "" {
			pattern := "%" + f.Name + "%"
			db = db.Where("first_names LIKE ? OR last_names LIKE ?", pattern, pattern)
		}
		if f.DocumentNumber != "" {
			db = db.Where("document_number = ?", f.DocumentNumber)
		}
		if f.IdentityDocumentID > 0 {
			db = db.Where("identity_document_id = ?", f.IdentityDocumentID)
		}
		return db
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
