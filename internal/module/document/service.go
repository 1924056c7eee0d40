package document

import (
	"context"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

// documentService implements domain.IdentityDocumentService.
type documentService struct {
	repo domain.IdentityDocumentRepository
}

// NewDocumentService creates a new IdentityDocumentService with the given repository.
func NewDocumentService(repo domain.IdentityDocumentRepository) domain.IdentityDocumentService {
	return &documentService{repo: repo}
}

// ListActive returns the active document types in repository order.
func (s *documentService) ListActive(ctx context.Context) ([]domain.IdentityDocument, error) {
	return s.repo.ListActive(ctx)
}
