package controllers

import (
	"net/http"

	"groomingshop-backend/models"
	"groomingshop-backend/services"

	"github.com/gin-gonic/gin"
)

// DashboardOverview is the landing page payload. TotalRevenue is null for
// staff, which is not the same as zero revenue.
type DashboardOverview struct {
	Bookings         []models.Booking             `json:"bookings"`
	BookingsByStatus map[models.BookingStatus]int `json:"bookingsByStatus"`
	Services         []models.Service             `json:"services"`
	TotalRevenue     *float64                     `json:"totalRevenue"`
}

type DashboardController struct {
	bookings *services.BookingService
	catalog  *services.CatalogService
}

func NewDashboardController(bookings *services.BookingService, catalog *services.CatalogService) *DashboardController {
	return &DashboardController{bookings: bookings, catalog: catalog}
}

func (h *DashboardController) GetDashboardOverview(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	bookings, err := h.bookings.ListBookings(ctx, caller)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	catalog, err := h.catalog.ListServices(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	overview := DashboardOverview{
		Bookings:         bookings,
		BookingsByStatus: make(map[models.BookingStatus]int, len(models.BookingStatuses)),
		Services:         catalog,
	}
	for _, status := range models.BookingStatuses {
		overview.BookingsByStatus[status] = 0
	}
	for _, b := range bookings {
		overview.BookingsByStatus[b.Status]++
	}

	total, computed, err := h.bookings.TotalRevenue(ctx, caller)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if computed {
		overview.TotalRevenue = &total
	}

	c.JSON(http.StatusOK, overview)
}
