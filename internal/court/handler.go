package court

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

// @Summary      List courts
// @Tags         courts
// @Produce      json
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} map[string][]court.Court
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.service.ListCourts(c.Request.Context(), api.OptionalBoolQuery(c, "active"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courts": courts})
}

// @Summary      Create a court
// @Tags         admin,courts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body court.CreateCourtRequest true "Court payload"
// @Success      201 {object} map[string]court.Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts [post]
func (h *Handler) CreateCourt(c *gin.Context) {
	var req CreateCourtRequest
	if !api.BindJSON(c, &req) {
		return
	}

	court, err := h.service.CreateCourt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCourt) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"court": court})
}

// @Summary      Get a court
// @Tags         courts
// @Produce      json
// @Param        id path int true "Court ID"
// @Success      200 {object} map[string]court.Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [get]
func (h *Handler) GetCourt(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	court, err := h.service.GetCourt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch court"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"court": court})
}

// @Summary      Update a court
// @Description  Partial update; only the supplied fields change.
// @Tags         admin,courts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Court ID"
// @Param        request body court.UpdateCourtRequest true "Fields to change"
// @Success      200 {object} map[string]court.Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [put]
func (h *Handler) UpdateCourt(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	var req UpdateCourtRequest
	if !api.BindJSON(c, &req) {
		return
	}

	court, err := h.service.UpdateCourt(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No fields to update"})
		case errors.Is(err, ErrInvalidCourt):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrCourtNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update court"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"court": court})
}

// @Summary      Delete a court
// @Tags         admin,courts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Court ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [delete]
func (h *Handler) DeleteCourt(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	if err := h.service.DeleteCourt(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete court"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Court deleted successfully"})
}
