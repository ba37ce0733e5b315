package customer

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

// ListCustomers godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]customer.Customer
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Customer ID"
// @Success      200 {object} map[string]customer.Customer
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := api.PathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// CreateCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body customer.CreateCustomerRequest true "Customer payload"
// @Success      201 {object} map[string]customer.Customer
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/customers [post]
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if !api.BindJSON(c, &req) {
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCustomer):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, ErrEmailExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create customer"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}
