// controllers/report.go
package controllers

import (
	"net/http"

	"groomingshop-backend/services"

	"github.com/gin-gonic/gin"
)

// ReportController handles revenue reporting
type ReportController struct {
	bookings *services.BookingService
}

func NewReportController(bookings *services.BookingService) *ReportController {
	return &ReportController{bookings: bookings}
}

// RevenueReport represents completed-booking revenue
type RevenueReport struct {
	TotalRevenue float64                   `json:"totalRevenue"`
	ByService    []services.ServiceRevenue `json:"byService"`
}

// GetRevenueReport returns total and per-service revenue (admin)
func (rc *ReportController) GetRevenueReport(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	byService, err := rc.bookings.RevenueByService(ctx, caller)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	total, _, err := rc.bookings.TotalRevenue(ctx, caller)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if byService == nil {
		byService = []services.ServiceRevenue{}
	}
	c.JSON(http.StatusOK, RevenueReport{TotalRevenue: total, ByService: byService})
}
