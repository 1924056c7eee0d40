package beneficiary

import (
	"context"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

// Validation messages for missing-reference and invalid-id checks.
const (
	msgInvalidID        = "beneficiary id is required and must be greater than zero"
	msgNotFound         = "beneficiary not found"
	msgDocumentNotFound = "identity document not found or inactive"
)

// beneficiaryService implements domain.BeneficiaryService.
type beneficiaryService struct {
	repo    domain.BeneficiaryRepository
	docRepo domain.IdentityDocumentRepository
}

// NewBeneficiaryService creates a new BeneficiaryService with the given repositories.
func NewBeneficiaryService(repo domain.BeneficiaryRepository, docRepo domain.IdentityDocumentRepository) domain.BeneficiaryService {
	return &beneficiaryService{repo: repo, docRepo: docRepo}
}

// Create validates the referenced document type, builds a Beneficiary, and
// persists it. The generated id is assigned after the insert returns.
func (s *beneficiaryService) Create(ctx context.Context, in domain.BeneficiaryInput) (*domain.Beneficiary, error) {
	document, err := s.lookupDocument(ctx, in.IdentityDocumentID)
	if err != nil {
		return nil, err
	}

	b, err := domain.NewBeneficiary(0, in.FirstNames, in.LastNames, document, in.DocumentNumber, in.BirthDate, in.Gender)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Add(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := b.SetID(id); err != nil {
		return nil, err
	}

	return b, nil
}

// Update loads the existing beneficiary, re-validates the basic data and the
// document assignment, and persists the result. Both mutations must succeed
// before the repository is called.
func (s *beneficiaryService) Update(ctx context.Context, id int, in domain.BeneficiaryInput) (*domain.Beneficiary, error) {
	if id <= 0 {
		return nil, domain.NewValidationError(msgInvalidID)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError(msgNotFound)
		}
		return nil, err
	}

	document, err := s.lookupDocument(ctx, in.IdentityDocumentID)
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateBasicData(in.FirstNames, in.LastNames, in.BirthDate, in.Gender); err != nil {
		return nil, err
	}
	if err := existing.AssignDocument(document, in.DocumentNumber); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes a beneficiary by id. There is no existence check: deleting
// an already-absent id is accepted as an idempotent no-op.
func (s *beneficiaryService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewValidationError(msgInvalidID)
	}
	return s.repo.Delete(ctx, id)
}

// Get retrieves a beneficiary by id. Absence surfaces as ErrNotFound, not as
// a validation error.
func (s *beneficiaryService) Get(ctx context.Context, id int) (*domain.Beneficiary, error) {
	return s.repo.GetByID(ctx, id)
}

// List passes the filter straight through to the repository, preserving the
// paging metadata unchanged.
func (s *beneficiaryService) List(ctx context.Context, filter domain.BeneficiaryFilter) (*domain.PageResult[domain.Beneficiary], error) {
	return s.repo.ListPaged(ctx, filter)
}

// lookupDocument fetches the referenced document type, translating absence
// into the write-path validation error.
func (s *beneficiaryService) lookupDocument(ctx context.Context, id int) (*domain.IdentityDocument, error) {
	document, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError(msgDocumentNotFound)
		}
		return nil, err
	}
	return document, nil
}
