// controllers/service.go
package controllers

import (
	"encoding/json"
	"net/http"

	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceRequest is the body for creating or editing a catalog service.
// Price accepts a JSON number or a form string.
type ServiceRequest struct {
	Name        string      `json:"name" form:"name"`
	Price       json.Number `json:"price" form:"price"`
	Description string      `json:"description" form:"description"`
	Duration    string      `json:"duration" form:"duration"`
}

func (r ServiceRequest) input() services.ServiceInput {
	return services.ServiceInput{
		Name:        r.Name,
		Price:       r.Price.String(),
		Description: r.Description,
		Duration:    r.Duration,
	}
}

type ServiceController struct {
	catalog *services.CatalogService
}

func NewServiceController(catalog *services.CatalogService) *ServiceController {
	return &ServiceController{catalog: catalog}
}

// CreateService adds a service to the catalog (admin)
func (h *ServiceController) CreateService(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := h.catalog.AddService(c.Request.Context(), caller, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices returns the catalog ordered by price
func (h *ServiceController) GetServices(c *gin.Context) {
	list, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ServiceController) GetService(c *gin.Context) {
	id, ok := paramID(c, "service")
	if !ok {
		return
	}

	service, found, err := h.catalog.FindService(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService overwrites a catalog service (admin)
func (h *ServiceController) UpdateService(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "service")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := h.catalog.EditService(c.Request.Context(), caller, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}
