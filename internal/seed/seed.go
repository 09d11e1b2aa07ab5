// Package seed provides the demo catalog and first-run initialization.
package seed

import (
	"context"

	"github.com/wazehfarhan/rento/booking"
	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/hub"
	"github.com/wazehfarhan/rento/internal/keyval"
	"github.com/wazehfarhan/rento/user"
	"github.com/wazehfarhan/rento/vehicle"
)

var Hubs = []hub.Hub{
	{ID: 1, Name: "Green Hub", Location: "Dhaka North", Lat: 23.7806, Lon: 90.4076, Description: "Eco-friendly hub with EV charging stations", Fee: 5},
	{ID: 2, Name: "Central Hub", Location: "Dhaka City", Lat: 23.8103, Lon: 90.4125, Description: "Main city center hub", Fee: 3},
	{ID: 3, Name: "South Hub", Location: "Dhaka South", Lat: 23.7500, Lon: 90.3900, Description: "Southern district hub", Fee: 4},
}

var Vehicles = []vehicle.Vehicle{
	{ID: 1, Name: "Nissan Leaf", Type: vehicle.TypeCar, FuelType: vehicle.FuelEV, Seats: 4, PricePerHour: 10, Hubs: []int{1, 2}, Image: "car-ev-1", Description: "Compact electric vehicle with great efficiency"},
	{ID: 2, Name: "MG ZS EV", Type: vehicle.TypeSUV, FuelType: vehicle.FuelEV, Seats: 5, PricePerHour: 12, Hubs: []int{1, 3}, Image: "car-ev-2", Description: "Electric SUV with spacious interior"},
	{ID: 3, Name: "Toyota Axio", Type: vehicle.TypeCar, FuelType: vehicle.FuelICE, Seats: 4, PricePerHour: 8, Hubs: []int{2, 3}, Image: "car-ice-1", Description: "Reliable gasoline sedan"},
	{ID: 4, Name: "Honda Civic", Type: vehicle.TypeCar, FuelType: vehicle.FuelICE, Seats: 5, PricePerHour: 9, Hubs: []int{1, 2, 3}, Image: "car-ice-2", Description: "Popular sedan with great fuel economy"},
	{ID: 5, Name: "Toyota HiAce", Type: vehicle.TypeVan, FuelType: vehicle.FuelICE, Seats: 8, PricePerHour: 20, Hubs: []int{2}, Image: "van-ice-1", Description: "Large van for group transport"},
	{ID: 6, Name: "Electric Scooter", Type: vehicle.TypeScooter, FuelType: vehicle.FuelEV, Seats: 1, PricePerHour: 3, Hubs: []int{1, 3}, Image: "scooter-ev-1", Description: "Compact electric scooter for short trips"},
}

var Drivers = []driver.Driver{
	{ID: 1, Name: "Mohammad Rahman", Rating: 4.8, Available: true, HourlyRate: 5, VehicleTypes: []vehicle.Type{vehicle.TypeCar, vehicle.TypeSUV}},
	{ID: 2, Name: "Anika Chowdhury", Rating: 4.9, Available: true, HourlyRate: 6, VehicleTypes: []vehicle.Type{vehicle.TypeCar, vehicle.TypeVan}},
	{ID: 3, Name: "Jamal Hossain", Rating: 4.7, Available: true, HourlyRate: 4, VehicleTypes: []vehicle.Type{vehicle.TypeCar, vehicle.TypeScooter}},
}

var Users = []user.User{
	{ID: 1, Email: "user@example.com", Name: "Demo User", Age: 25, Bookings: []int{}},
}

// Initialize seeds only the collections that do not exist yet, so a
// restart never clobbers data.
func Initialize(ctx context.Context, store *keyval.Store) error {
	if err := seedMissing(ctx, store, keyval.KeyHubs, Hubs); err != nil {
		return err
	}
	if err := seedMissing(ctx, store, keyval.KeyVehicles, Vehicles); err != nil {
		return err
	}
	if err := seedMissing(ctx, store, keyval.KeyDrivers, Drivers); err != nil {
		return err
	}
	if err := seedMissing(ctx, store, keyval.KeyUsers, Users); err != nil {
		return err
	}
	return seedMissing(ctx, store, keyval.KeyBookings, []booking.Booking{})
}

// Reset clears every collection and the current-user pointer, then
// reseeds from scratch.
func Reset(ctx context.Context, store *keyval.Store) error {
	err := store.Delete(ctx,
		keyval.KeyHubs,
		keyval.KeyVehicles,
		keyval.KeyDrivers,
		keyval.KeyUsers,
		keyval.KeyBookings,
		keyval.KeyCurrentUser,
	)
	if err != nil {
		return err
	}
	return Initialize(ctx, store)
}

func seedMissing(ctx context.Context, store *keyval.Store, key string, records any) error {
	exists, err := store.Exists(ctx, key)
	if err != nil || exists {
		return err
	}
	return store.Save(ctx, key, records)
}
