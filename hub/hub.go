// Package hub
package hub

import "math"

// Hub is a pickup/dropoff location vehicles are rented between.
type Hub struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	// Description is shown on the hub card (e.g. "Eco-friendly hub with
	// EV charging stations").
	Description string `json:"description,omitempty"`
	// Fee is charged once per visited hub, in dollars.
	Fee float64 `json:"fee"`
}

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometres between the
// hub and the given coordinate, by the haversine formula.
func (h Hub) Distance(lat, lon float64) float64 {
	dLat := (lat - h.Lat) * math.Pi / 180
	dLon := (lon - h.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(h.Lat*math.Pi/180)*math.Cos(lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
