package acceptance

import (
	"net/http"
	"testing"
)

type bookingResponse struct {
	ID           int     `json:"id"`
	UserID       int     `json:"userId"`
	VehicleID    int     `json:"vehicleId"`
	VehicleName  string  `json:"vehicleName"`
	PickupHubID  int     `json:"pickupHubId"`
	DropoffHubID int     `json:"dropoffHubId"`
	HasDriver    bool    `json:"hasDriver"`
	DriverID     *int    `json:"driverId"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
}

type priceResponse struct {
	VehicleCost   float64 `json:"vehicleCost"`
	DriverCost    float64 `json:"driverCost"`
	HubFees       float64 `json:"hubFees"`
	Total         float64 `json:"total"`
	DurationHours int     `json:"durationHours"`
}

func TestQuoteBooking_DemoScenario(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.POST("/bookings/quote", twoHourBooking())
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	price := decode[priceResponse](t, w)
	if price.VehicleCost != 20 || price.DriverCost != 0 || price.HubFees != 5 || price.Total != 25 {
		t.Errorf("expected {20 0 5 25}, got %+v", price)
	}
	if price.DurationHours != 2 {
		t.Errorf("expected duration 2, got %d", price.DurationHours)
	}
}

func TestQuoteBooking_NoSessionRequired(t *testing.T) {
	ts := NewTestServer(t)

	// Quoting works for browsing visitors who are not signed in.
	w := ts.POST("/bookings/quote", twoHourBooking())
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestQuoteBooking_BadDate(t *testing.T) {
	ts := NewTestServer(t)

	req := twoHourBooking()
	req["pickupDate"] = "10-09-2026"
	w := ts.POST("/bookings/quote", req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestCreateBooking_RequiresSession(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.POST("/bookings", twoHourBooking())
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}

func TestCreateBooking_RecomputesPriceServerSide(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	// A tampered client total is ignored.
	req := twoHourBooking()
	req["totalPrice"] = 0.01
	w := ts.POST("/bookings", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	b := decode[bookingResponse](t, w)
	if b.TotalPrice != 25 {
		t.Errorf("expected recomputed total 25, got %v", b.TotalPrice)
	}
	if b.Status != "confirmed" {
		t.Errorf("expected status confirmed, got %s", b.Status)
	}
	if b.UserID != 1 {
		t.Errorf("expected booking owned by user 1, got %d", b.UserID)
	}
	if b.VehicleName != "Nissan Leaf" {
		t.Errorf("expected vehicle name in response, got %q", b.VehicleName)
	}
}

func TestCreateBooking_WithDriverHoldsDriver(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := twoHourBooking()
	req["hasDriver"] = true
	req["driverId"] = 1
	w := ts.POST("/bookings", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	// Driver 1 charges $5/hr, so the total gains $10 over the base 25.
	b := decode[bookingResponse](t, w)
	if b.TotalPrice != 35 {
		t.Errorf("expected total 35, got %v", b.TotalPrice)
	}

	dw := ts.GET("/drivers/1")
	if dw.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, dw.Code)
	}
	d := decode[driverResponse](t, dw)
	if d.Available {
		t.Error("expected booked driver to be unavailable")
	}
}

func TestCreateBooking_Under18ICERejected(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := twoHourBooking()
	req["vehicleId"] = 3 // Toyota Axio, ICE
	req["pickupHubId"] = 2
	req["dropoffHubId"] = 2
	req["userAge"] = 17
	req["hasDriver"] = true
	req["driverId"] = 1
	w := ts.POST("/bookings", req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d: %s", http.StatusUnprocessableEntity, w.Code, w.Body.String())
	}
}

func TestCreateBooking_Under18EVWithDriverAccepted(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := twoHourBooking()
	req["userAge"] = 17
	req["hasDriver"] = true
	req["driverId"] = 1
	w := ts.POST("/bookings", req)
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestGetBookings_RequiresSession(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.GET("/bookings")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}

func TestGetBookings_WithStatusFilter(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	first := ts.POST("/bookings", twoHourBooking())
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, first.Code, first.Body.String())
	}
	second := ts.POST("/bookings", twoHourBooking())
	if second.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, second.Code, second.Body.String())
	}

	created := decode[bookingResponse](t, second)
	cancel := ts.POST("/bookings/2/cancel", nil)
	if cancel.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, cancel.Code, cancel.Body.String())
	}
	if created.ID != 2 {
		t.Fatalf("expected second booking id 2, got %d", created.ID)
	}

	all := decode[[]bookingResponse](t, ts.GET("/bookings"))
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}

	confirmed := decode[[]bookingResponse](t, ts.GET("/bookings?status=confirmed"))
	if len(confirmed) != 1 || confirmed[0].ID != 1 {
		t.Errorf("expected only booking 1 confirmed, got %+v", confirmed)
	}

	cancelled := decode[[]bookingResponse](t, ts.GET("/bookings?status=cancelled"))
	if len(cancelled) != 1 || cancelled[0].ID != 2 {
		t.Errorf("expected only booking 2 cancelled, got %+v", cancelled)
	}
}

func TestCancelBooking_ReleasesDriverAndRepeats(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := twoHourBooking()
	req["hasDriver"] = true
	req["driverId"] = 1
	w := ts.POST("/bookings", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	b := decode[bookingResponse](t, w)

	cw := ts.POST("/bookings/1/cancel", nil)
	if cw.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, cw.Code, cw.Body.String())
	}
	cancelled := decode[bookingResponse](t, cw)
	if cancelled.ID != b.ID || cancelled.Status != "cancelled" {
		t.Errorf("expected booking %d cancelled, got %+v", b.ID, cancelled)
	}

	d := decode[driverResponse](t, ts.GET("/drivers/1"))
	if !d.Available {
		t.Error("expected driver released after cancellation")
	}

	// Cancelling again is harmless.
	again := ts.POST("/bookings/1/cancel", nil)
	if again.Code != http.StatusOK {
		t.Errorf("expected status %d on repeat cancel, got %d", http.StatusOK, again.Code)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.POST("/bookings/404/cancel", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d: %s", http.StatusNotFound, w.Code, w.Body.String())
	}
}
