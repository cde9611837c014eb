package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for LabTrack
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListComponents godoc
// @Summary List components
// @Description List inventory components, optionally filtered by search text, category, location and stock status
// @Tags Components
// @Produce json
// @Param search query string false "Substring match on name or part number"
// @Param category query string false "Exact category or 'all'"
// @Param location query string false "Exact location or 'all'"
// @Param stock query string false "Stock bucket: in-stock, low-stock, out-of-stock or 'all'"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/components [get]
func (h *ComponentHandler) ListComponentsDoc() {}

// GetComponent godoc
// @Summary Get component by ID
// @Description Get a single component by its id
// @Tags Components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/components/{id} [get]
func (h *ComponentHandler) GetComponentDoc() {}

// CreateComponent godoc
// @Summary Create component
// @Description Add a new component to the inventory
// @Tags Components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,partNumber=string,manufacturer=string,description=string,category=string,location=string,quantity=int,lowStockThreshold=int,unitPrice=number,datasheetUrl=string} true "Component data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/components [post]
func (h *ComponentHandler) CreateComponentDoc() {}

// UpdateComponent godoc
// @Summary Update component
// @Description Replace the editable fields of a component
// @Tags Components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body object{name=string,partNumber=string,manufacturer=string,description=string,category=string,location=string,quantity=int,lowStockThreshold=int,unitPrice=number,datasheetUrl=string} true "Component data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/components/{id} [put]
func (h *ComponentHandler) UpdateComponentDoc() {}

// DeleteComponent godoc
// @Summary Delete component
// @Description Remove a component from the inventory
// @Tags Components
// @Security BearerAuth
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/components/{id} [delete]
func (h *ComponentHandler) DeleteComponentDoc() {}

// ApplyMovement godoc
// @Summary Record a stock movement
// @Description Apply an inward or outward stock movement to a component
// @Tags Components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body object{type=string,quantity=int,reason=string} true "Movement data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/components/{id}/movements [post]
func (h *ComponentHandler) ApplyMovementDoc() {}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Stock bucket counts, total inventory value, low stock and stale stock lists
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/summary [get]
func (h *ComponentHandler) GetSummaryDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ComponentHandler) HealthCheckDoc() {}
