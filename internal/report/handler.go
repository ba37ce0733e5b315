package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SJ-Slasher/FMS/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) respond(c *gin.Context, report interface{}, err error) {
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// BookingReport godoc
// @Summary      Booking report
// @Description  Booking counts and revenue for a date range (default: last 30 days)
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Success      200 {object} report.BookingReport
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/reports/bookings [get]
func (h *Handler) BookingReport(c *gin.Context) {
	report, err := h.service.BookingReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	h.respond(c, report, err)
}

// RevenueReport godoc
// @Summary      Revenue report
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Success      200 {object} report.RevenueReport
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/reports/revenue [get]
func (h *Handler) RevenueReport(c *gin.Context) {
	report, err := h.service.RevenueReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	h.respond(c, report, err)
}

// UtilizationReport godoc
// @Summary      Court utilization
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Success      200 {object} report.UtilizationReport
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/reports/utilization [get]
func (h *Handler) UtilizationReport(c *gin.Context) {
	report, err := h.service.UtilizationReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	h.respond(c, report, err)
}
