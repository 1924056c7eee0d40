package document

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for identity document types.
type Module struct {
	handler *DocumentHandler
}

// NewModule creates a new document Module. Panics if h is nil.
func NewModule(h *DocumentHandler) *Module {
	if h == nil {
		panic("document.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the document API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/documents/active", m.handler.ListActive)
}
