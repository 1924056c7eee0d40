package domain

import (
	"context"
	"fmt"
	"strings"
)

// Allowed gender values after normalization.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Beneficiary represents a person record linked to one identity document.
//
// Use NewBeneficiary to construct values and the mutator methods to change
// them; both enforce the domain invariants and report violations as
// validation errors. The beneficiary keeps a copy of the assigned document's
// id and number, not a live reference.
type Beneficiary struct {
	ID                 int    `gorm:"primaryKey" json:"id"`
	FirstNames         string `gorm:"size:100;not null" json:"firstNames"`
	LastNames          string `gorm:"size:100;not null" json:"lastNames"`
	IdentityDocumentID int    `gorm:"not null;index" json:"identityDocumentId"`
	DocumentNumber     string `gorm:"size:50;not null" json:"documentNumber"`
	BirthDate          Date   `gorm:"type:date;not null" json:"birthDate"`
	Gender             string `gorm:"size:1;not null" json:"gender"`
}

// TableName sets the table name used by GORM.
func (Beneficiary) TableName() string {
	return "beneficiaries"
}

// NewBeneficiary creates a validated beneficiary. An id of 0 means "not yet
// persisted"; SetID assigns the generated id after the insert. The document
// and its number are validated together via AssignDocument. Validation stops
// at the first failing check.
func NewBeneficiary(id int, firstNames, lastNames string, document *IdentityDocument, documentNumber string, birthDate Date, gender string) (*Beneficiary, error) {
	firstNames, lastNames, gender, err := validateBasicData(firstNames, lastNames, gender)
	if err != nil {
		return nil, err
	}

	b := &Beneficiary{
		ID:         id,
		FirstNames: firstNames,
		LastNames:  lastNames,
		BirthDate:  birthDate,
		Gender:     gender,
	}

	if err := b.AssignDocument(document, documentNumber); err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBasicData re-validates and replaces names, birth date, and gender.
// Document fields are untouched. No field is mutated unless every check passes.
func (b *Beneficiary) UpdateBasicData(firstNames, lastNames string, birthDate Date, gender string) error {
	firstNames, lastNames, gender, err := validateBasicData(firstNames, lastNames, gender)
	if err != nil {
		return err
	}

	b.FirstNames = firstNames
	b.LastNames = lastNames
	b.BirthDate = birthDate
	b.Gender = gender
	return nil
}

// AssignDocument validates the document and number together and stores the
// document's id alongside the trimmed number. The document must be active,
// the trimmed number must match the document's exact length, and when the
// document is numeric-only every character must be a digit.
func (b *Beneficiary) AssignDocument(document *IdentityDocument, documentNumber string) error {
	if document == nil {
		return NewValidationError("identity document is required")
	}
	if !document.IsActive {
		return NewValidationError("identity document must be active")
	}

	clean := strings.TrimSpace(documentNumber)
	if clean == "" {
		return NewValidationError("document number is required")
	}
	if len(clean) != document.Length {
		return NewValidationError(fmt.Sprintf("document number must have %d characters", document.Length))
	}
	if document.NumericOnly && !isDigits(clean) {
		return NewValidationError("document number only accepts digits")
	}

	b.IdentityDocumentID = document.ID
	b.DocumentNumber = clean
	return nil
}

// SetID assigns the identifier generated by the persistence layer.
// Intended to be called exactly once, after the insert returns. A
// non-positive id fails and leaves the current id unchanged.
func (b *Beneficiary) SetID(id int) error {
	if id <= 0 {
		return NewValidationError("identifier must be greater than zero")
	}
	b.ID = id
	return nil
}

// validateBasicData checks names and gender, returning the trimmed names and
// the normalized gender. The first failing check wins.
func validateBasicData(firstNames, lastNames, gender string) (string, string, string, error) {
	firstNames = strings.TrimSpace(firstNames)
	if firstNames == "" {
		return "", "", "", NewValidationError("first names are required")
	}

	lastNames = strings.TrimSpace(lastNames)
	if lastNames == "" {
		return "", "", "", NewValidationError("last names are required")
	}

	gender, err := normalizeGender(gender)
	if err != nil {
		return "", "", "", err
	}

	return firstNames, lastNames, gender, nil
}

// normalizeGender trims and uppercases the value and requires exactly "M" or "F".
func normalizeGender(gender string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(gender))
	if normalized == "" {
		return "", NewValidationError("gender is required")
	}
	if normalized != GenderMale && normalized != GenderFemale {
		return "", NewValidationError("gender must be 'M' or 'F'")
	}
	return normalized, nil
}

// isDigits reports whether s consists only of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BeneficiaryInput carries the caller-supplied fields for creating or
// updating a beneficiary.
type BeneficiaryInput struct {
	FirstNames         string
	LastNames          string
	IdentityDocumentID int
	DocumentNumber     string
	BirthDate          Date
	Gender             string
}

// BeneficiaryRepository defines the data access interface for beneficiaries.
// Repositories perform no validation: entities enforce every domain rule
// before a repository call is made.
type BeneficiaryRepository interface {
	// Add inserts the beneficiary and returns the generated id.
	Add(ctx context.Context, b *Beneficiary) (int, error)
	Update(ctx context.Context, b *Beneficiary) error
	// Delete removes a beneficiary by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*Beneficiary, error)
	ListPaged(ctx context.Context, filter BeneficiaryFilter) (*PageResult[Beneficiary], error)
}

// BeneficiaryService defines the business logic interface for beneficiaries.
type BeneficiaryService interface {
	Create(ctx context.Context, in BeneficiaryInput) (*Beneficiary, error)
	Update(ctx context.Context, id int, in BeneficiaryInput) (*Beneficiary, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Beneficiary, error)
	List(ctx context.Context, filter BeneficiaryFilter) (*PageResult[Beneficiary], error)
}
