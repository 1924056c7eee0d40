package document

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beneficiarios/beneficiarios/internal/domain"
	"github.com/beneficiarios/beneficiarios/internal/pkg"
)

// DocumentHandler handles REST API requests for identity document types.
type DocumentHandler struct {
	svc domain.IdentityDocumentService
}

// NewDocumentHandler creates a new DocumentHandler with the given service.
func NewDocumentHandler(svc domain.IdentityDocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListActive handles GET /api/documents/active. Items come back in
// repository order; no re-sorting happens here.
func (h *DocumentHandler) ListActive(c *gin.Context) {
	docs, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toResponse(d))
	}

	c.JSON(http.StatusOK, out)
}
