package payment

import (
	"bytes"
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

func (m *MockService) ListPayments(ctx context.Context, f ListFilter) ([]PaymentWithDetails, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentWithDetails), args.Error(1)
}

func (m *MockService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.GET("/payments", h.ListPayments)
	router.POST("/payments", h.CreatePayment)
	return router
}

func postPayment(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePayment_Handler(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid", fmt.Errorf("%w: missing required fields", ErrInvalidPayment), http.StatusBadRequest},
		{"unknown booking", ErrBookingNotFound, http.StatusNotFound},
		{"storage", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.serviceErr == nil {
				svc.On("CreatePayment", mock.Anything, mock.Anything).Return(&Payment{ID: 1}, nil)
			} else {
				svc.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			w := postPayment(setupRouter(svc), `{"booking_id":1,"amount":"50.00","payment_method":"card"}`)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListPayments_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListPayments", mock.Anything, ListFilter{BookingID: 4, Status: "completed"}).
		Return([]PaymentWithDetails{{Payment: Payment{ID: 1}, CourtName: "Arena A"}}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments?bookingId=4&status=completed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"court_name":"Arena A"`)
}
