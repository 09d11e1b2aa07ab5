// Package driver
package driver

import "github.com/wazehfarhan/rento/vehicle"

// Driver is a professional driver who can be added to a booking.
type Driver struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Rating is a 0-5 customer score.
	Rating float64 `json:"rating"`
	// HourlyRate is the driver service rate in dollars.
	HourlyRate float64 `json:"hourlyRate"`
	// Available flips to false while the driver is held by a confirmed
	// booking and back to true when that booking is cancelled.
	Available bool `json:"available"`
	// VehicleTypes lists the vehicle types the driver is licensed for.
	VehicleTypes []vehicle.Type `json:"vehicleTypes"`
}

// CanDrive reports whether the driver is licensed for the vehicle type.
func (d Driver) CanDrive(t vehicle.Type) bool {
	for _, vt := range d.VehicleTypes {
		if vt == t {
			return true
		}
	}
	return false
}
