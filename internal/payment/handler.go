package payment

import (
	"errors"
	"net/http"

	"github.com/SJ-Slasher/FMS/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListPayments godoc
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        bookingId query int    false "Booking ID"
// @Param        status    query string false "Payment status"
// @Success      200 {object} map[string][]payment.PaymentWithDetails
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	bookingID, err := api.OptionalIntQuery(c, "bookingId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid bookingId"})
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), ListFilter{
		BookingID: bookingID,
		Status:    c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// CreatePayment godoc
// @Summary      Record a payment
// @Description  A completed payment confirms its booking when the booking is still pending.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body payment.CreatePaymentRequest true "Payment payload"
// @Success      201 {object} map[string]payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}
