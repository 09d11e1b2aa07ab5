package vehicle

import (
	"context"
	"errors"

	"github.com/wazehfarhan/rento/internal/keyval"
)

var ErrNotFound = errors.New("vehicle not found")

type Repository struct {
	store *keyval.Store
}

func NewRepository(store *keyval.Store) *Repository {
	return &Repository{store: store}
}

// GetVehicles fetches all vehicles in insertion order.
func (r *Repository) GetVehicles(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	_, err := r.store.Load(ctx, keyval.KeyVehicles, &vehicles)
	return vehicles, err
}

// GetVehicle fetches a single vehicle by its ID.
func (r *Repository) GetVehicle(ctx context.Context, id int) (Vehicle, error) {
	vehicles, err := r.GetVehicles(ctx)
	if err != nil {
		return Vehicle{}, err
	}
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return Vehicle{}, ErrNotFound
}

func (r *Repository) Replace(ctx context.Context, vehicles []Vehicle) error {
	return r.store.Save(ctx, keyval.KeyVehicles, vehicles)
}

// Upsert creates the vehicle when its ID is zero, otherwise replaces the
// record with that ID.
func (r *Repository) Upsert(ctx context.Context, v Vehicle) (Vehicle, error) {
	vehicles, err := r.GetVehicles(ctx)
	if err != nil {
		return Vehicle{}, err
	}
	if v.ID == 0 {
		v.ID = 1
		for _, existing := range vehicles {
			if existing.ID >= v.ID {
				v.ID = existing.ID + 1
			}
		}
		vehicles = append(vehicles, v)
		return v, r.Replace(ctx, vehicles)
	}
	for i := range vehicles {
		if vehicles[i].ID == v.ID {
			vehicles[i] = v
			return v, r.Replace(ctx, vehicles)
		}
	}
	vehicles = append(vehicles, v)
	return v, r.Replace(ctx, vehicles)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	vehicles, err := r.GetVehicles(ctx)
	if err != nil {
		return err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			vehicles = append(vehicles[:i], vehicles[i+1:]...)
			return r.Replace(ctx, vehicles)
		}
	}
	return ErrNotFound
}
