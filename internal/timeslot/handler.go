package timeslot

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

// @Summary      List time slots
// @Tags         time-slots
// @Produce      json
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} map[string][]timeslot.TimeSlot
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/time-slots [get]
func (h *Handler) ListTimeSlots(c *gin.Context) {
	slots, err := h.service.ListTimeSlots(c.Request.Context(), api.OptionalBoolQuery(c, "active"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlots": slots})
}

// @Summary      Get a time slot
// @Tags         time-slots
// @Produce      json
// @Param        id path int true "Time slot ID"
// @Success      200 {object} map[string]timeslot.TimeSlot
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/time-slots/{id} [get]
func (h *Handler) GetTimeSlot(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot ID"})
		return
	}

	slot, err := h.service.GetTimeSlot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTimeSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlot": slot})
}

// @Summary      Create a time slot
// @Description  Admin-only: add a window to the slot catalog
// @Tags         admin,time-slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body timeslot.CreateTimeSlotRequest true "Time slot payload"
// @Success      201 {object} map[string]timeslot.TimeSlot
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/time-slots [post]
func (h *Handler) CreateTimeSlot(c *gin.Context) {
	var req CreateTimeSlotRequest
	if !api.BindJSON(c, &req) {
		return
	}

	slot, err := h.service.CreateTimeSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTimeSlotInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot data"})
		case errors.Is(err, ErrTimeSlotExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Time slot already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create time slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"timeSlot": slot})
}

// @Summary      Activate or deactivate a time slot
// @Tags         admin,time-slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Time slot ID"
// @Param        request body timeslot.SetActiveRequest true "Active flag"
// @Success      200 {object} map[string]timeslot.TimeSlot
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/time-slots/{id}/active [patch]
func (h *Handler) SetActive(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot ID"})
		return
	}

	var req SetActiveRequest
	if !api.BindJSON(c, &req) {
		return
	}

	slot, err := h.service.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		if errors.Is(err, ErrTimeSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update time slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlot": slot})
}
