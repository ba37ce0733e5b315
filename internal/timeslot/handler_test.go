package timeslot

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct{ mock.Mock }

func (m *MockService) ListTimeSlots(ctx context.Context, active *bool) ([]TimeSlot, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockService) GetTimeSlot(ctx context.Context, id int) (*TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockService) CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockService) SetActive(ctx context.Context, id int, active bool) (*TimeSlot, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.GET("/time-slots", h.ListTimeSlots)
	router.GET("/time-slots/:id", h.GetTimeSlot)
	router.POST("/time-slots", h.CreateTimeSlot)
	router.PATCH("/time-slots/:id/active", h.SetActive)
	return router
}

func TestListTimeSlots_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListTimeSlots", mock.Anything, mock.MatchedBy(func(active *bool) bool {
		return active != nil && *active
	})).Return([]TimeSlot{{ID: 1, StartTime: "08:00:00", EndTime: "09:00:00", IsActive: true}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/time-slots?active=true", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"timeSlots"`)
	assert.Contains(t, w.Body.String(), `"08:00:00"`)
	svc.AssertExpectations(t)
}

func TestGetTimeSlot_Handler_NotFound(t *testing.T) {
	svc := new(MockService)
	svc.On("GetTimeSlot", mock.Anything, 4).Return(nil, ErrTimeSlotNotFound)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/time-slots/4", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTimeSlot_Handler_Validation(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/time-slots", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(new(MockService)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "StartTime")
	assert.Contains(t, w.Body.String(), "required")
}

func TestCreateTimeSlot_Handler_Conflict(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateTimeSlot", mock.Anything, CreateTimeSlotRequest{StartTime: "18:00", EndTime: "19:00"}).
		Return(nil, ErrTimeSlotExists)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/time-slots", bytes.NewBufferString(`{"start_time":"18:00","end_time":"19:00"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSetActive_Handler(t *testing.T) {
	svc := new(MockService)
	svc.On("SetActive", mock.Anything, 2, false).
		Return(&TimeSlot{ID: 2, StartTime: "08:00:00", EndTime: "09:00:00", IsActive: false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/time-slots/2/active", bytes.NewBufferString(`{"is_active":false}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":false`)
}
