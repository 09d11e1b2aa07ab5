// Package keyval stores whole record collections as JSON documents in a
// Redis key-value map, one key per collection. This mirrors the storage
// model the rest of the codebase assumes: a collection write replaces the
// entire document in a single operation.
package keyval

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Collection and pointer keys.
const (
	KeyHubs        = "rento_hubs"
	KeyVehicles    = "rento_vehicles"
	KeyDrivers     = "rento_drivers"
	KeyUsers       = "rento_users"
	KeyBookings    = "rento_bookings"
	KeyCurrentUser = "rento_current_user"
)

// ErrUnavailable marks a storage transport failure. Callers match it with
// errors.Is to distinguish infrastructure faults from domain outcomes
// like a missing record.
var ErrUnavailable = errors.New("storage unavailable")

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load unmarshals the document stored under key into dest. A missing key
// is a valid outcome, not an error; found reports whether it existed.
func (s *Store) Load(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save overwrites the document stored under key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: exists %s: %v", ErrUnavailable, key, err)
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrUnavailable, err)
	}
	return nil
}

// GetString reads a plain string key, for pointers that are not JSON
// documents. A missing key reports found=false.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	return v, true, nil
}

func (s *Store) SetString(ctx context.Context, key, v string) error {
	if err := s.rdb.Set(ctx, key, v, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
