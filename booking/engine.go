package booking

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/hub"
	"github.com/wazehfarhan/rento/vehicle"
)

// Engine validates, prices and persists bookings. It holds no state of
// its own beyond the repositories it reads and writes through.
type Engine struct {
	hubs     *hub.Repository
	vehicles *vehicle.Repository
	drivers  *driver.Repository
	bookings *Repository
	logger   *slog.Logger

	now func() time.Time
}

func NewEngine(hr *hub.Repository, vr *vehicle.Repository, dr *driver.Repository, br *Repository, logger *slog.Logger) *Engine {
	return &Engine{
		hubs:     hr,
		vehicles: vr,
		drivers:  dr,
		bookings: br,
		logger:   logger,
		now:      time.Now,
	}
}

// Quote prices a request against the current catalog. It has no side
// effects. Vehicle, driver and hub IDs that do not resolve contribute
// zero to their component; only storage failures surface as errors.
func (e *Engine) Quote(ctx context.Context, req Request) (PriceBreakdown, error) {
	hours := durationHours(req.Pickup, req.Dropoff)

	var vehicleCost float64
	v, err := e.vehicles.GetVehicle(ctx, req.VehicleID)
	if err == nil {
		vehicleCost = v.PricePerHour * float64(hours)
	} else if !errors.Is(err, vehicle.ErrNotFound) {
		return PriceBreakdown{}, err
	}

	var driverCost float64
	if req.HasDriver && req.DriverID != nil {
		d, err := e.drivers.GetDriver(ctx, *req.DriverID)
		if err == nil {
			driverCost = d.HourlyRate * float64(hours)
		} else if !errors.Is(err, driver.ErrNotFound) {
			return PriceBreakdown{}, err
		}
	}

	var hubFees float64
	if h, err := e.hubs.GetHub(ctx, req.PickupHubID); err == nil {
		hubFees += h.Fee
	} else if !errors.Is(err, hub.ErrNotFound) {
		return PriceBreakdown{}, err
	}
	// The dropoff fee applies only when it is a different hub.
	if req.DropoffHubID != req.PickupHubID {
		if h, err := e.hubs.GetHub(ctx, req.DropoffHubID); err == nil {
			hubFees += h.Fee
		} else if !errors.Is(err, hub.ErrNotFound) {
			return PriceBreakdown{}, err
		}
	}

	return PriceBreakdown{
		VehicleCost:   round2(vehicleCost),
		DriverCost:    round2(driverCost),
		HubFees:       round2(hubFees),
		Total:         round2(vehicleCost + driverCost + hubFees),
		DurationHours: hours,
	}, nil
}

// ValidateEligibility enforces the age rule: a renter under 18 must pick
// an EV and add a driver. This is the authoritative check; any
// pre-filtering of vehicle choices in the client is a convenience only.
func (e *Engine) ValidateEligibility(ctx context.Context, req Request) error {
	if req.UserAge >= 18 {
		return nil
	}
	v, err := e.vehicles.GetVehicle(ctx, req.VehicleID)
	if err != nil && !errors.Is(err, vehicle.ErrNotFound) {
		return err
	}
	// A vehicle that does not resolve cannot be verified as an EV.
	if err != nil || v.FuelType != vehicle.FuelEV || !req.HasDriver {
		return ErrNotEligible
	}
	return nil
}

// Submit validates the request, recomputes the price and persists a
// confirmed booking. The total is always recomputed here; a total
// supplied by the caller is never trusted.
func (e *Engine) Submit(ctx context.Context, sess Session, req Request) (Booking, error) {
	if sess.UserID == 0 {
		return Booking{}, ErrNotAuthenticated
	}
	if err := e.ValidateEligibility(ctx, req); err != nil {
		return Booking{}, err
	}

	price, err := e.Quote(ctx, req)
	if err != nil {
		return Booking{}, err
	}
	id, err := e.bookings.NextID(ctx)
	if err != nil {
		return Booking{}, err
	}

	b := Booking{
		ID:           id,
		UserID:       sess.UserID,
		VehicleID:    req.VehicleID,
		PickupHubID:  req.PickupHubID,
		DropoffHubID: req.DropoffHubID,
		PickupDate:   req.Pickup.Format(DateLayout),
		PickupTime:   req.Pickup.Format(TimeLayout),
		DropoffDate:  req.Dropoff.Format(DateLayout),
		DropoffTime:  req.Dropoff.Format(TimeLayout),
		UserAge:      req.UserAge,
		HasDriver:    req.HasDriver,
		DriverID:     req.DriverID,
		TotalPrice:   price.Total,
		Status:       StatusConfirmed,
		CreatedAt:    e.now().UTC(),
	}
	if err := e.bookings.Create(ctx, b); err != nil {
		return Booking{}, err
	}

	if b.DriverID != nil {
		e.holdDriver(ctx, *b.DriverID, false)
	}
	return b, nil
}

// Cancel flips a booking to cancelled and releases its driver. Calling
// it again on an already-cancelled booking re-runs the release, which is
// harmless, and returns the record rather than an error.
func (e *Engine) Cancel(ctx context.Context, bookingID int) (Booking, error) {
	b, err := e.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return Booking{}, err
	}

	b.Status = StatusCancelled
	if b.DriverID != nil {
		e.holdDriver(ctx, *b.DriverID, true)
	}
	if err := e.bookings.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// holdDriver flips driver availability after the booking write has
// already been persisted. The two writes are not transactional: a failed
// flip is retried once, then logged and left for Reconcile to repair. A
// driver ID that does not resolve is skipped silently.
func (e *Engine) holdDriver(ctx context.Context, id int, available bool) {
	err := e.drivers.SetAvailable(ctx, id, available)
	if err != nil && !errors.Is(err, driver.ErrNotFound) {
		err = e.drivers.SetAvailable(ctx, id, available)
	}
	if err != nil && !errors.Is(err, driver.ErrNotFound) {
		e.logger.ErrorContext(ctx, "driver availability write failed",
			"driverId", id, "available", available, "error", err)
	}
}

// Reconcile repairs driver availability drift left behind when the
// second write of Submit or Cancel failed. A driver is available exactly
// when no confirmed booking holds them. Returns the number of drivers
// repaired.
func (e *Engine) Reconcile(ctx context.Context) (int, error) {
	bookings, err := e.bookings.GetBookings(ctx)
	if err != nil {
		return 0, err
	}
	drivers, err := e.drivers.GetDrivers(ctx)
	if err != nil {
		return 0, err
	}

	held := make(map[int]bool)
	for _, b := range bookings {
		if b.Status == StatusConfirmed && b.DriverID != nil {
			held[*b.DriverID] = true
		}
	}

	repaired := 0
	for i := range drivers {
		want := !held[drivers[i].ID]
		if drivers[i].Available != want {
			drivers[i].Available = want
			repaired++
		}
	}
	if repaired == 0 {
		return 0, nil
	}
	if err := e.drivers.Replace(ctx, drivers); err != nil {
		return 0, err
	}
	e.logger.InfoContext(ctx, "reconciled driver availability", "repaired", repaired)
	return repaired, nil
}

// durationHours rounds the rental window up to whole hours with a one
// hour floor. Same-hour and misordered windows bill as one hour rather
// than failing.
func durationHours(pickup, dropoff time.Time) int {
	hours := int(math.Ceil(dropoff.Sub(pickup).Hours()))
	if hours < 1 {
		return 1
	}
	return hours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
