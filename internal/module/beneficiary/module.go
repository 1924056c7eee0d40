package beneficiary

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the beneficiary domain.
type Module struct {
	handler *BeneficiaryHandler
}

// NewModule creates a new beneficiary Module. Panics if h is nil.
func NewModule(h *BeneficiaryHandler) *Module {
	if h == nil {
		panic("beneficiary.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the beneficiary API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/beneficiaries", m.handler.List)
	api.GET("/beneficiaries/:id", m.handler.Get)
	api.POST("/beneficiaries", m.handler.Create)
	api.PUT("/beneficiaries/:id", m.handler.Update)
	api.DELETE("/beneficiaries/:id", m.handler.Delete)
}
