package driver

import (
	"context"
	"errors"

	"github.com/wazehfarhan/rento/internal/keyval"
	"github.com/wazehfarhan/rento/vehicle"
)

var ErrNotFound = errors.New("driver not found")

type Repository struct {
	store *keyval.Store
}

func NewRepository(store *keyval.Store) *Repository {
	return &Repository{store: store}
}

// GetDrivers fetches all drivers in insertion order.
func (r *Repository) GetDrivers(ctx context.Context) ([]Driver, error) {
	var drivers []Driver
	_, err := r.store.Load(ctx, keyval.KeyDrivers, &drivers)
	return drivers, err
}

// GetDriver fetches a single driver by its ID.
func (r *Repository) GetDriver(ctx context.Context, id int) (Driver, error) {
	drivers, err := r.GetDrivers(ctx)
	if err != nil {
		return Driver{}, err
	}
	for _, d := range drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return Driver{}, ErrNotFound
}

// Available fetches available drivers, optionally filtered to those
// licensed for a vehicle type.
func (r *Repository) Available(ctx context.Context, vehicleType vehicle.Type) ([]Driver, error) {
	drivers, err := r.GetDrivers(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.Available {
			continue
		}
		if vehicleType != "" && !d.CanDrive(vehicleType) {
			continue
		}
		available = append(available, d)
	}
	return available, nil
}

// SetAvailable flips a driver's availability and persists the collection.
func (r *Repository) SetAvailable(ctx context.Context, id int, available bool) error {
	drivers, err := r.GetDrivers(ctx)
	if err != nil {
		return err
	}
	for i := range drivers {
		if drivers[i].ID == id {
			drivers[i].Available = available
			return r.Replace(ctx, drivers)
		}
	}
	return ErrNotFound
}

func (r *Repository) Replace(ctx context.Context, drivers []Driver) error {
	return r.store.Save(ctx, keyval.KeyDrivers, drivers)
}

// Upsert creates the driver when its ID is zero, otherwise replaces the
// record with that ID.
func (r *Repository) Upsert(ctx context.Context, d Driver) (Driver, error) {
	drivers, err := r.GetDrivers(ctx)
	if err != nil {
		return Driver{}, err
	}
	if d.ID == 0 {
		d.ID = 1
		for _, existing := range drivers {
			if existing.ID >= d.ID {
				d.ID = existing.ID + 1
			}
		}
		drivers = append(drivers, d)
		return d, r.Replace(ctx, drivers)
	}
	for i := range drivers {
		if drivers[i].ID == d.ID {
			drivers[i] = d
			return d, r.Replace(ctx, drivers)
		}
	}
	drivers = append(drivers, d)
	return d, r.Replace(ctx, drivers)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	drivers, err := r.GetDrivers(ctx)
	if err != nil {
		return err
	}
	for i := range drivers {
		if drivers[i].ID == id {
			drivers = append(drivers[:i], drivers[i+1:]...)
			return r.Replace(ctx, drivers)
		}
	}
	return ErrNotFound
}
