package booking

import (
	"errors"
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotEligible      = errors.New("under-18 requires EV and driver")
)

// Stored layouts for the pickup/dropoff date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Booking is a confirmed or cancelled rental. Bookings are never
// physically deleted; cancellation only flips the status.
type Booking struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userId"`
	VehicleID    int    `json:"vehicleId"`
	PickupHubID  int    `json:"pickupHubId"`
	DropoffHubID int    `json:"dropoffHubId"`
	PickupDate   string `json:"pickupDate"`
	PickupTime   string `json:"pickupTime"`
	DropoffDate  string `json:"dropoffDate"`
	DropoffTime  string `json:"dropoffTime"`
	UserAge      int    `json:"userAge"`
	HasDriver    bool   `json:"hasDriver"`
	// DriverID is nil when the booking has no driver assigned.
	DriverID   *int      `json:"driverId"`
	TotalPrice float64   `json:"totalPrice"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Session identifies the user a request is made on behalf of. It is
// passed explicitly so the engine never reads ambient current-user
// state; a zero UserID means nobody is signed in.
type Session struct {
	UserID int
}

// Request is a proposed booking assembled by the caller.
type Request struct {
	VehicleID    int
	PickupHubID  int
	DropoffHubID int
	Pickup       time.Time
	Dropoff      time.Time
	UserAge      int
	HasDriver    bool
	DriverID     *int
}

// PriceBreakdown is the quoted cost of a request, with each component
// rounded to two decimal places.
type PriceBreakdown struct {
	VehicleCost   float64 `json:"vehicleCost"`
	DriverCost    float64 `json:"driverCost"`
	HubFees       float64 `json:"hubFees"`
	Total         float64 `json:"total"`
	DurationHours int     `json:"durationHours"`
}

// ParseDateTime combines a stored date and wall-clock time pair into a
// single instant.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+"T"+TimeLayout, date+"T"+clock)
}
