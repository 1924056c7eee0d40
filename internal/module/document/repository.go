package document

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

// documentRepository implements domain.IdentityDocumentRepository using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new IdentityDocumentRepository backed by the given GORM database.
func NewDocumentRepository(db *gorm.DB) domain.IdentityDocumentRepository {
	return &documentRepository{db: db}
}

// GetByID retrieves a document type by its primary key.
func (r *documentRepository) GetByID(ctx context.Context, id int) (*domain.IdentityDocument, error) {
	var d domain.IdentityDocument
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

// ListActive retrieves all active document types ordered by id.
func (r *documentRepository) ListActive(ctx context.Context) ([]domain.IdentityDocument, error) {
	var docs []domain.IdentityDocument
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&docs).Error; err != nil {
		return nil, mapError(err)
	}
	return docs, nil
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
