package hub

import (
	"context"
	"errors"

	"github.com/wazehfarhan/rento/internal/keyval"
)

var ErrNotFound = errors.New("hub not found")

type Repository struct {
	store *keyval.Store
}

func NewRepository(store *keyval.Store) *Repository {
	return &Repository{store: store}
}

// GetHubs fetches all hubs in insertion order.
func (r *Repository) GetHubs(ctx context.Context) ([]Hub, error) {
	var hubs []Hub
	_, err := r.store.Load(ctx, keyval.KeyHubs, &hubs)
	return hubs, err
}

// GetHub fetches a single hub by its ID.
func (r *Repository) GetHub(ctx context.Context, id int) (Hub, error) {
	hubs, err := r.GetHubs(ctx)
	if err != nil {
		return Hub{}, err
	}
	for _, h := range hubs {
		if h.ID == id {
			return h, nil
		}
	}
	return Hub{}, ErrNotFound
}

// Replace overwrites the whole hub collection in one write.
func (r *Repository) Replace(ctx context.Context, hubs []Hub) error {
	return r.store.Save(ctx, keyval.KeyHubs, hubs)
}

// Upsert creates the hub when its ID is zero, otherwise replaces the
// record with that ID. Returns the stored record.
func (r *Repository) Upsert(ctx context.Context, h Hub) (Hub, error) {
	hubs, err := r.GetHubs(ctx)
	if err != nil {
		return Hub{}, err
	}
	if h.ID == 0 {
		h.ID = 1
		for _, existing := range hubs {
			if existing.ID >= h.ID {
				h.ID = existing.ID + 1
			}
		}
		hubs = append(hubs, h)
		return h, r.Replace(ctx, hubs)
	}
	for i := range hubs {
		if hubs[i].ID == h.ID {
			hubs[i] = h
			return h, r.Replace(ctx, hubs)
		}
	}
	hubs = append(hubs, h)
	return h, r.Replace(ctx, hubs)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	hubs, err := r.GetHubs(ctx)
	if err != nil {
		return err
	}
	for i := range hubs {
		if hubs[i].ID == id {
			hubs = append(hubs[:i], hubs[i+1:]...)
			return r.Replace(ctx, hubs)
		}
	}
	return ErrNotFound
}
