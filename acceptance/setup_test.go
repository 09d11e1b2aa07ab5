package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/wazehfarhan/rento/api"
	"github.com/wazehfarhan/rento/booking"
	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/hub"
	"github.com/wazehfarhan/rento/internal/keyval"
	"github.com/wazehfarhan/rento/internal/o11y"
	"github.com/wazehfarhan/rento/internal/seed"
	"github.com/wazehfarhan/rento/user"
	"github.com/wazehfarhan/rento/vehicle"
)

type TestServer struct {
	Router      *gin.Engine
	Store       *keyval.Store
	HubRepo     *hub.Repository
	VehicleRepo *vehicle.Repository
	DriverRepo  *driver.Repository
	UserRepo    *user.Repository
	BookingRepo *booking.Repository
	Engine      *booking.Engine
}

// NewTestServer wires the full route table against an in-process redis
// seeded with the demo catalog.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := keyval.NewStore(rdb)
	if err := seed.Initialize(context.Background(), store); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	hr := hub.NewRepository(store)
	vr := vehicle.NewRepository(store)
	dr := driver.NewRepository(store)
	ur := user.NewRepository(store)
	bkr := booking.NewRepository(store)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := booking.NewEngine(hr, vr, dr, bkr, logger)

	obs := &o11y.Observability{
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	a := api.New(obs, hr, vr, dr, ur, bkr, engine, store, "", "")

	return &TestServer{
		Router:      a.Router(),
		Store:       store,
		HubRepo:     hr,
		VehicleRepo: vr,
		DriverRepo:  dr,
		UserRepo:    ur,
		BookingRepo: bkr,
		Engine:      engine,
	}
}

func (ts *TestServer) GET(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) POST(path string, body any) *httptest.ResponseRecorder {
	return ts.send(http.MethodPost, path, body)
}

func (ts *TestServer) PUT(path string, body any) *httptest.ResponseRecorder {
	return ts.send(http.MethodPut, path, body)
}

func (ts *TestServer) DELETE(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) send(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// Login signs in the seeded demo user.
func (ts *TestServer) Login(t *testing.T) {
	t.Helper()
	w := ts.PUT("/session", map[string]any{"userId": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("failed to log in: %d: %s", w.Code, w.Body.String())
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v: %s", err, w.Body.String())
	}
	return v
}

// twoHourBooking is a valid request for the seeded Nissan Leaf, pickup
// and dropoff at Green Hub, two hours apart.
func twoHourBooking() map[string]any {
	return map[string]any{
		"vehicleId":    1,
		"pickupHubId":  1,
		"dropoffHubId": 1,
		"pickupDate":   "2026-09-10",
		"pickupTime":   "10:00",
		"dropoffDate":  "2026-09-10",
		"dropoffTime":  "12:00",
		"userAge":      25,
	}
}
