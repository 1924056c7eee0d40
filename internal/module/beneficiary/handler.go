package beneficiary

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beneficiarios/beneficiarios/internal/domain"
	"github.com/beneficiarios/beneficiarios/internal/pkg"
)

// BeneficiaryHandler handles REST API requests for the beneficiary resource.
type BeneficiaryHandler struct {
	svc domain.BeneficiaryService
}

// NewBeneficiaryHandler creates a new BeneficiaryHandler with the given service.
func NewBeneficiaryHandler(svc domain.BeneficiaryService) *BeneficiaryHandler {
	return &BeneficiaryHandler{svc: svc}
}

// Create handles POST /api/beneficiaries.
func (h *BeneficiaryHandler) Create(c *gin.Context) {
	var req BeneficiaryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/beneficiaries/%d", b.ID))
	c.JSON(http.StatusCreated, toResponse(*b))
}

// Get handles GET /api/beneficiaries/:id.
func (h *BeneficiaryHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewValidationError(err.Error()))
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*b))
}

// List handles GET /api/beneficiaries.
func (h *BeneficiaryHandler) List(c *gin.Context) {
	var req ListRequest
	if !pkg.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.List(c.Request.Context(), req.toFilter())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.MapPage(result, toResponse))
}

// Update handles PUT /api/beneficiaries/:id. The route id always overrides
// any id in the body.
func (h *BeneficiaryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewValidationError(err.Error()))
		return
	}

	var req BeneficiaryRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*b))
}

// Delete handles DELETE /api/beneficiaries/:id.
func (h *BeneficiaryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewValidationError(err.Error()))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts the :id route parameter. Non-numeric values are rejected
// here; range checks stay in the service so that, for example, a negative id
// on delete produces the domain's own message.
func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("invalid beneficiary id %q", c.Param("id"))
	}
	return id, nil
}
