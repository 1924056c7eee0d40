package domain

import (
	"context"
	"strings"
)

// IdentityDocument represents an identity document type: reference data
// describing a category of identification document and the format rules
// its numbers must follow.
//
// Use NewIdentityDocument to construct values so the field invariants hold.
// All fields except IsActive are immutable once constructed.
type IdentityDocument struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Abbreviation string `gorm:"size:20;not null" json:"abbreviation"`
	Country      string `gorm:"size:100;not null" json:"country"`
	Length       int    `gorm:"not null" json:"length"`
	NumericOnly  bool   `gorm:"not null" json:"numericOnly"`
	IsActive     bool   `gorm:"not null" json:"isActive"`
}

// TableName sets the table name used by GORM.
func (IdentityDocument) TableName() string {
	return "identity_documents"
}

// NewIdentityDocument creates a validated identity document type.
// Name, abbreviation, and country must be non-empty after trimming,
// and length must be greater than zero.
func NewIdentityDocument(id int, name, abbreviation, country string, length int, numericOnly, isActive bool) (*IdentityDocument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("document name is required")
	}

	abbreviation = strings.TrimSpace(abbreviation)
	if abbreviation == "" {
		return nil, NewValidationError("document abbreviation is required")
	}

	country = strings.TrimSpace(country)
	if country == "" {
		return nil, NewValidationError("document country is required")
	}

	if length <= 0 {
		return nil, NewValidationError("document length must be greater than zero")
	}

	return &IdentityDocument{
		ID:           id,
		Name:         name,
		Abbreviation: abbreviation,
		Country:      country,
		Length:       length,
		NumericOnly:  numericOnly,
		IsActive:     isActive,
	}, nil
}

// Activate marks the document type as active. Idempotent.
func (d *IdentityDocument) Activate() {
	d.IsActive = true
}

// Deactivate marks the document type as inactive. Idempotent.
func (d *IdentityDocument) Deactivate() {
	d.IsActive = false
}

// IdentityDocumentRepository defines the data access interface for identity
// document types. Document types are pre-seeded reference data; only reads
// go through this port.
type IdentityDocumentRepository interface {
	GetByID(ctx context.Context, id int) (*IdentityDocument, error)
	ListActive(ctx context.Context) ([]IdentityDocument, error)
}

// IdentityDocumentService defines the business logic interface for identity
// document types.
type IdentityDocumentService interface {
	ListActive(ctx context.Context) ([]IdentityDocument, error)
}
