package booking

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

// respondError writes the HTTP form of a booking service error.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No fields to update"})
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrSlotAlreadyBooked):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "This time slot is already booked"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

// CheckAvailability godoc
// @Summary      Check slot availability
// @Description  Lists every active time slot for the court and date, flagged with whether it is free.
// @Tags         bookings
// @Produce      json
// @Param        courtId query int    true "Court ID"
// @Param        date    query string true "Booking date (YYYY-MM-DD)"
// @Success      200 {object} map[string][]booking.SlotAvailability
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings/check-availability [get]
func (h *Handler) CheckAvailability(c *gin.Context) {
	courtID, err := api.OptionalIntQuery(c, "courtId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid courtId"})
		return
	}

	availability, err := h.service.GetAvailability(c.Request.Context(), courtID, c.Query("date"))
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": availability})
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        courtId    query int    false "Court ID"
// @Param        customerId query int    false "Customer ID"
// @Param        status     query string false "Booking status"
// @Param        date       query string false "Exact booking date"
// @Param        startDate  query string false "Range start, used together with endDate"
// @Param        endDate    query string false "Range end, used together with startDate"
// @Success      200 {object} map[string][]booking.BookingWithDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	courtID, err := api.OptionalIntQuery(c, "courtId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid courtId"})
		return
	}
	customerID, err := api.OptionalIntQuery(c, "customerId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customerId"})
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), ListFilter{
		CourtID:    courtID,
		CustomerID: customerID,
		Status:     c.Query("status"),
		Date:       c.Query("date"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	})
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Admits the booking unless the court is already taken for that date and slot.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} map[string]booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id path int true "Booking ID"
// @Success      200 {object} map[string]booking.BookingWithDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBooking godoc
// @Summary      Update a booking
// @Description  Partial update of status, notes and total_amount. Status changes follow pending -> confirmed -> completed, with cancellation allowed from pending or confirmed.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id      path int                          true "Booking ID"
// @Param        request body booking.UpdateBookingRequest true "Fields to change"
// @Success      200 {object} map[string]booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      422 {object} api.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req UpdateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	booking, err := h.service.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Frees the slot and queues a cancellation email.
// @Tags         bookings
// @Produce      json
// @Param        id path int true "Booking ID"
// @Success      200 {object} map[string]booking.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      422 {object} api.ErrorResponse
// @Router       /api/bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	booking, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBooking godoc
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Param        id path int true "Booking ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/bookings/{id} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking deleted successfully"})
}
