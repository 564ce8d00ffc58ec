package controllers

import (
	"net/http"

	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterPetRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Species string `json:"species" form:"species" binding:"required"`
}

type PetController struct {
	catalog *services.CatalogService
}

func NewPetController(catalog *services.CatalogService) *PetController {
	return &PetController{catalog: catalog}
}

func (h *PetController) GetPets(c *gin.Context) {
	pets, err := h.catalog.ListPets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetController) RegisterPet(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req RegisterPetRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	pet, err := h.catalog.RegisterPet(c.Request.Context(), caller, req.Name, req.Species)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pet)
}
