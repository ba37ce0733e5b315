package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SJ-Slasher/FMS/internal/auth"
	"github.com/SJ-Slasher/FMS/internal/booking"
	"github.com/SJ-Slasher/FMS/internal/config"
	"github.com/SJ-Slasher/FMS/internal/court"
	"github.com/SJ-Slasher/FMS/internal/customer"
	"github.com/SJ-Slasher/FMS/internal/payment"
	"github.com/SJ-Slasher/FMS/internal/report"
	"github.com/SJ-Slasher/FMS/internal/timeslot"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

func New(cfg *config.Config, svc *Services) *Server {
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		limiter.Middleware(),
	)

	router.GET("/health", Health(svc.DB))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	api := router.Group("/api")
	adminOnly := []gin.HandlerFunc{}
	if cfg.AuthEnabled() {
		api.Use(auth.AuthMiddleware(cfg.JWTSecret))
		adminOnly = append(adminOnly, auth.RequireRole(auth.RoleAdmin))
	}
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, adminOnly...), h)
	}

	courtHandler := court.NewHandler(svc.Courts)
	courts := api.Group("/courts")
	{
		courts.GET("", courtHandler.ListCourts)
		courts.GET("/:id", courtHandler.GetCourt)
		courts.POST("", admin(courtHandler.CreateCourt)...)
		courts.PUT("/:id", admin(courtHandler.UpdateCourt)...)
		courts.DELETE("/:id", admin(courtHandler.DeleteCourt)...)
	}

	slotHandler := timeslot.NewHandler(svc.Slots)
	slots := api.Group("/time-slots")
	{
		slots.GET("", slotHandler.ListTimeSlots)
		slots.GET("/:id", slotHandler.GetTimeSlot)
		slots.POST("", admin(slotHandler.CreateTimeSlot)...)
		slots.PATCH("/:id/active", admin(slotHandler.SetActive)...)
	}

	customerHandler := customer.NewHandler(svc.Customers)
	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("", customerHandler.CreateCustomer)
	}

	bookingHandler := booking.NewHandler(svc.Bookings)
	bookings := api.Group("/bookings")
	{
		bookings.GET("/check-availability", bookingHandler.CheckAvailability)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PUT("/:id", bookingHandler.UpdateBooking)
		bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
		bookings.DELETE("/:id", admin(bookingHandler.DeleteBooking)...)
	}

	paymentHandler := payment.NewHandler(svc.Payments)
	payments := api.Group("/payments")
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.POST("", paymentHandler.CreatePayment)
	}

	reportHandler := report.NewHandler(svc.Reports)
	reports := api.Group("/reports")
	{
		reports.GET("/bookings", admin(reportHandler.BookingReport)...)
		reports.GET("/revenue", admin(reportHandler.RevenueReport)...)
		reports.GET("/utilization", admin(reportHandler.UtilizationReport)...)
	}

	if svc.Email != nil {
		api.POST("/system/test-email", admin(TestEmail(svc.Email))...)
	}

	return &Server{
		router:  router,
		limiter: limiter,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. It returns http.ErrServerClosed after
// Shutdown.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}
