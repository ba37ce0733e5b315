package report

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct{ mock.Mock }

func (m *MockService) BookingReport(ctx context.Context, start, end string) (*BookingReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingReport), args.Error(1)
}

func (m *MockService) RevenueReport(ctx context.Context, start, end string) (*RevenueReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RevenueReport), args.Error(1)
}

func (m *MockService) UtilizationReport(ctx context.Context, start, end string) (*UtilizationReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UtilizationReport), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.GET("/reports/bookings", h.BookingReport)
	router.GET("/reports/revenue", h.RevenueReport)
	router.GET("/reports/utilization", h.UtilizationReport)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestBookingReport_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("BookingReport", mock.Anything, "2024-06-01", "2024-06-30").
		Return(&BookingReport{DateRange: DateRange{"2024-06-01", "2024-06-30"}}, nil)

	w := get(setupRouter(svc), "/reports/bookings?startDate=2024-06-01&endDate=2024-06-30")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date_range":{"start":"2024-06-01","end":"2024-06-30"}`)
}

func TestRevenueReport_Handler_InvalidRange(t *testing.T) {
	svc := new(MockService)
	svc.On("RevenueReport", mock.Anything, "bad", "").
		Return(nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidRange))

	w := get(setupRouter(svc), "/reports/revenue?startDate=bad")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUtilizationReport_Handler_Failure(t *testing.T) {
	svc := new(MockService)
	svc.On("UtilizationReport", mock.Anything, "", "").Return(nil, assert.AnError)

	w := get(setupRouter(svc), "/reports/utilization")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate report")
}
