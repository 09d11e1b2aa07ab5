package user

import (
	"context"
	"errors"
	"strconv"

	"github.com/wazehfarhan/rento/internal/keyval"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	store *keyval.Store
}

func NewRepository(store *keyval.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	_, err := r.store.Load(ctx, keyval.KeyUsers, &users)
	return users, err
}

func (r *Repository) GetUser(ctx context.Context, id int) (User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *Repository) Replace(ctx context.Context, users []User) error {
	return r.store.Save(ctx, keyval.KeyUsers, users)
}

// CurrentUserID reads the active-user pointer. Zero means no user is
// set; user IDs start at 1.
func (r *Repository) CurrentUserID(ctx context.Context) (int, error) {
	v, found, err := r.store.GetString(ctx, keyval.KeyCurrentUser)
	if err != nil || !found {
		return 0, err
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return id, nil
}

// SetCurrentUserID stores the active-user pointer.
func (r *Repository) SetCurrentUserID(ctx context.Context, id int) error {
	return r.store.SetString(ctx, keyval.KeyCurrentUser, strconv.Itoa(id))
}
