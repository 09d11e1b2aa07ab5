package user

// User is a rental customer. Users are created by seeding only; there is
// no signup flow.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	// Bookings is part of the stored record shape but informational
	// only; the booking collection is the source of truth.
	Bookings []int `json:"bookings"`
}
