// controllers/booking.go
package controllers

import (
	"net/http"

	"groomingshop-backend/models"
	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingRequest books either a registered pet (PetID) or a walk-in
// pet described by PetName and PetSpecies.
type CreateBookingRequest struct {
	PetID      string `json:"petId" form:"pet_id"`
	PetName    string `json:"petName" form:"pet_name"`
	PetSpecies string `json:"petSpecies" form:"pet_species"`
	OwnerName  string `json:"ownerName" form:"owner_name"`
	ServiceID  string `json:"serviceId" form:"service_id"`
	Date       string `json:"date" form:"date"`
	Time       string `json:"time" form:"time"`
}

type EditBookingRequest struct {
	PetName    string `json:"petName" form:"pet_name"`
	PetSpecies string `json:"petSpecies" form:"pet_species"`
	OwnerName  string `json:"ownerName" form:"owner_name"`
	ServiceID  string `json:"serviceId" form:"service_id"`
	Date       string `json:"date" form:"date"`
	Time       string `json:"time" form:"time"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBooking creates a pending booking for the calling staff member
func (h *BookingController) CreateBooking(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceID, ok := optionalID(c, req.ServiceID, "service")
	if !ok {
		return
	}

	var pet services.PetSelection = services.NewPet{Name: req.PetName, Species: req.PetSpecies}
	if req.PetID != "" {
		petID, ok := optionalID(c, req.PetID, "pet")
		if !ok {
			return
		}
		pet = services.ExistingPet{ID: petID}
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), caller, services.CreateBookingInput{
		Pet:       pet,
		ServiceID: serviceID,
		Date:      req.Date,
		Time:      req.Time,
		OwnerName: req.OwnerName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists the bookings visible to the caller
func (h *BookingController) GetBookings(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	bookings, err := h.bookings.ListBookings(c.Request.Context(), caller)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingController) GetBooking(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), caller, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateStatus moves a booking through its lifecycle (staff)
func (h *BookingController) UpdateStatus(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "booking")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := h.bookings.TransitionStatus(c.Request.Context(), caller, id, models.BookingStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking overwrites a booking's details (admin)
func (h *BookingController) UpdateBooking(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "booking")
	if !ok {
		return
	}

	var req EditBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	serviceID, ok := optionalID(c, req.ServiceID, "service")
	if !ok {
		return
	}

	booking, err := h.bookings.EditBooking(c.Request.Context(), caller, id, services.EditBookingInput{
		PetName:    req.PetName,
		PetSpecies: req.PetSpecies,
		OwnerName:  req.OwnerName,
		Date:       req.Date,
		Time:       req.Time,
		ServiceID:  serviceID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking permanently removes a booking (admin)
func (h *BookingController) DeleteBooking(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "booking")
	if !ok {
		return
	}

	if err := h.bookings.DeleteBooking(c.Request.Context(), caller, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
