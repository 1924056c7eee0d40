package document

import "github.com/beneficiarios/beneficiarios/internal/domain"

// DocumentResponse is the transfer shape for identity document types.
type DocumentResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Country      string `json:"country"`
	Length       int    `json:"length"`
	NumericOnly  bool   `json:"numericOnly"`
	IsActive     bool   `json:"isActive"`
}

// toResponse maps a domain document type to its transfer shape.
func toResponse(d domain.IdentityDocument) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Abbreviation: d.Abbreviation,
		Country:      d.Country,
		Length:       d.Length,
		NumericOnly:  d.NumericOnly,
		IsActive:     d.IsActive,
	}
}
