package acceptance

import (
	"net/http"
	"testing"
)

type driverResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	HourlyRate   float64  `json:"hourlyRate"`
	Available    bool     `json:"available"`
	VehicleTypes []string `json:"vehicleTypes"`
}

func TestListDrivers_ReturnsSeedCatalog(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.GET("/drivers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	drivers := decode[[]driverResponse](t, w)
	if len(drivers) != 3 {
		t.Fatalf("expected 3 drivers, got %d", len(drivers))
	}
}

func TestListDrivers_AvailableForVan(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.GET("/drivers?available=true&type=van")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	drivers := decode[[]driverResponse](t, w)
	if len(drivers) != 1 || drivers[0].Name != "Anika Chowdhury" {
		t.Errorf("expected only the van driver, got %+v", drivers)
	}
}

func TestListDrivers_AvailableExcludesHeld(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := twoHourBooking()
	req["hasDriver"] = true
	req["driverId"] = 1
	if w := ts.POST("/bookings", req); w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	drivers := decode[[]driverResponse](t, ts.GET("/drivers?available=true"))
	for _, d := range drivers {
		if d.ID == 1 {
			t.Errorf("expected driver 1 excluded while booked, got %+v", drivers)
		}
	}
}

func TestDriverCRUD(t *testing.T) {
	ts := NewTestServer(t)

	created := ts.POST("/drivers", map[string]any{
		"name": "Farida Begum", "rating": 4.5, "hourlyRate": 5.5,
		"vehicleTypes": []string{"car", "suv"},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, created.Code, created.Body.String())
	}
	d := decode[driverResponse](t, created)
	if d.ID != 4 {
		t.Errorf("expected next id 4, got %d", d.ID)
	}
	if !d.Available {
		t.Error("expected new driver to default to available")
	}

	updated := ts.PUT("/drivers/4", map[string]any{
		"name": "Farida Begum", "rating": 4.9, "hourlyRate": 6,
		"available": false, "vehicleTypes": []string{"car"},
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, updated.Code, updated.Body.String())
	}
	if got := decode[driverResponse](t, updated); got.Available {
		t.Error("expected driver unavailable after update")
	}

	deleted := ts.DELETE("/drivers/4")
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, deleted.Code, deleted.Body.String())
	}
}

func TestCreateDriver_RejectsBadRating(t *testing.T) {
	ts := NewTestServer(t)

	w := ts.POST("/drivers", map[string]any{"name": "Nobody", "rating": 5.5})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}
}
