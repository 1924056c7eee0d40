package beneficiary

import "github.com/beneficiarios/beneficiarios/internal/domain"

// BeneficiaryRequest is the body shape for creating and updating a
// beneficiary. On update, the route id always wins; the body carries no id.
type BeneficiaryRequest struct {
	FirstNames         string      `json:"firstNames" binding:"required"`
	LastNames          string      `json:"lastNames" binding:"required"`
	IdentityDocumentID int         `json:"identityDocumentId" binding:"required,gt=0"`
	DocumentNumber     string      `json:"documentNumber" binding:"required"`
	BirthDate          domain.Date `json:"birthDate" binding:"required"`
	Gender             string      `json:"gender" binding:"required"`
}

// toInput maps the request body to the service input shape.
func (r BeneficiaryRequest) toInput() domain.BeneficiaryInput {
	return domain.BeneficiaryInput{
		FirstNames:         r.FirstNames,
		LastNames:          r.LastNames,
		IdentityDocumentID: r.IdentityDocumentID,
		DocumentNumber:     r.DocumentNumber,
		BirthDate:          r.BirthDate,
		Gender:             r.Gender,
	}
}

// ListRequest holds the query parameters for the paginated list endpoint.
type ListRequest struct {
	Name               string `form:"Name"`
	DocumentNumber     string `form:"DocumentNumber"`
	IdentityDocumentID int    `form:"IdentityDocumentId"`
	Page               int    `form:"Page"`
	PageSize           int    `form:"PageSize"`
}

// toFilter maps the query parameters to the domain filter.
func (r ListRequest) toFilter() domain.BeneficiaryFilter {
	return domain.BeneficiaryFilter{
		Name:               r.Name,
		DocumentNumber:     r.DocumentNumber,
		IdentityDocumentID: r.IdentityDocumentID,
		Page:               r.Page,
		PageSize:           r.PageSize,
	}
}

// BeneficiaryResponse is the transfer shape returned by the API.
type BeneficiaryResponse struct {
	ID                 int         `json:"id"`
	FirstNames         string      `json:"firstNames"`
	LastNames          string      `json:"lastNames"`
	IdentityDocumentID int         `json:"identityDocumentId"`
	DocumentNumber     string      `json:"documentNumber"`
	BirthDate          domain.Date `json:"birthDate"`
	Gender             string      `json:"gender"`
}

// toResponse maps a domain beneficiary to its transfer shape.
func toResponse(b domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		ID:                 b.ID,
		FirstNames:         b.FirstNames,
		LastNames:          b.LastNames,
		IdentityDocumentID: b.IdentityDocumentID,
		DocumentNumber:     b.DocumentNumber,
		BirthDate:          b.BirthDate,
		Gender:             b.Gender,
	}
}
