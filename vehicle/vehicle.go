// Package vehicle
package vehicle

type Type string

const (
	TypeCar     Type = "car"
	TypeSUV     Type = "suv"
	TypeVan     Type = "van"
	TypeScooter Type = "scooter"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCar, TypeSUV, TypeVan, TypeScooter:
		return true
	}
	return false
}

type FuelType string

const (
	FuelEV  FuelType = "EV"
	FuelICE FuelType = "ICE"
)

func (f FuelType) Valid() bool {
	return f == FuelEV || f == FuelICE
}

// Vehicle represents a rentable vehicle listed at one or more hubs.
type Vehicle struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     Type     `json:"type"`
	FuelType FuelType `json:"fuelType"`
	Seats    int      `json:"seats"`
	// PricePerHour is the rental rate in dollars.
	PricePerHour float64 `json:"pricePerHour"`
	// Hubs lists the IDs of hubs where the vehicle can be picked up or
	// dropped off. Referential integrity against the hub collection is
	// not enforced here.
	Hubs        []int  `json:"hubs"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// AvailableAtHub reports whether the vehicle is listed at the given hub.
func (v Vehicle) AvailableAtHub(hubID int) bool {
	for _, id := range v.Hubs {
		if id == hubID {
			return true
		}
	}
	return false
}
