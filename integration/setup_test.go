package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SJ-Slasher/FMS/internal/config"
	"github.com/SJ-Slasher/FMS/internal/court"
	"github.com/SJ-Slasher/FMS/internal/customer"
	"github.com/SJ-Slasher/FMS/internal/db"
	"github.com/SJ-Slasher/FMS/internal/server"
	"github.com/SJ-Slasher/FMS/internal/timeslot"
)

type fixture struct {
	db       *sqlx.DB
	services *server.Services
	router   http.Handler

	courtID    int
	customerID int
	slotIDs    []int
}

func setupTestDB(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("Skipping integration tests: TEST_DSN not set")
	}

	database, err := db.Connect(context.Background(), dsn, db.PoolConfig{MaxOpenConns: 20, PingTimeout: 5 * time.Second})
	if err != nil {
		t.Skipf("Skipping integration tests: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database, "../migrations"))
	cleanDatabase(t, database)
	return database
}

func cleanDatabase(t *testing.T, database *sqlx.DB) {
	_, err := database.Exec(`TRUNCATE payments, bookings, users, time_slots, courts RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// newFixture builds the full service graph over a clean schema with one
// court, one customer and three active evening slots.
func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	database := setupTestDB(t)
	ctx := context.Background()

	services := server.NewServices(database, nil)
	srv := server.New(&config.Config{Port: "0", RateLimitRPS: 0}, services)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	price := decimal.NewFromInt(50)
	c, err := services.Courts.CreateCourt(ctx, court.CreateCourtRequest{Name: "Arena A", CourtType: "indoor", PricePerHour: &price})
	require.NoError(t, err)

	cu, err := services.Customers.CreateCustomer(ctx, customer.CreateCustomerRequest{FullName: "Alice Doe", Email: "alice@example.com"})
	require.NoError(t, err)

	f := &fixture{db: database, services: services, router: srv.Handler(), courtID: c.ID, customerID: cu.ID}
	for _, w := range [][2]string{{"18:00", "19:00"}, {"19:00", "20:00"}, {"20:00", "21:00"}} {
		slot, err := services.Slots.CreateTimeSlot(ctx, timeslot.CreateTimeSlotRequest{StartTime: w[0], EndTime: w[1]})
		require.NoError(t, err)
		f.slotIDs = append(f.slotIDs, slot.ID)
	}
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
