package booking

import (
	"context"

	"github.com/wazehfarhan/rento/internal/keyval"
)

type Repository struct {
	store *keyval.Store
}

func NewRepository(store *keyval.Store) *Repository {
	return &Repository{store: store}
}

// GetBookings fetches all bookings in insertion order.
func (r *Repository) GetBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	_, err := r.store.Load(ctx, keyval.KeyBookings, &bookings)
	return bookings, err
}

// GetByID fetches a single booking by its ID.
func (r *Repository) GetByID(ctx context.Context, id int) (Booking, error) {
	bookings, err := r.GetBookings(ctx)
	if err != nil {
		return Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return Booking{}, ErrNotFound
}

// GetByUserID fetches all bookings belonging to a user, optionally
// filtered by status.
func (r *Repository) GetByUserID(ctx context.Context, userID int, status *Status) ([]Booking, error) {
	bookings, err := r.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// NextID returns max(existing ids)+1, or 1 for an empty collection.
func (r *Repository) NextID(ctx context.Context) (int, error) {
	bookings, err := r.GetBookings(ctx)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, b := range bookings {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next, nil
}

// Create appends a booking and persists the collection.
func (r *Repository) Create(ctx context.Context, b Booking) error {
	bookings, err := r.GetBookings(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return r.Replace(ctx, bookings)
}

// Update replaces the stored booking with the same ID.
func (r *Repository) Update(ctx context.Context, b Booking) error {
	bookings, err := r.GetBookings(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == b.ID {
			bookings[i] = b
			return r.Replace(ctx, bookings)
		}
	}
	return ErrNotFound
}

func (r *Repository) Replace(ctx context.Context, bookings []Booking) error {
	return r.store.Save(ctx, keyval.KeyBookings, bookings)
}
