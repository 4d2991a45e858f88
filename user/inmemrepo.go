package user

import (
	"context"
	"sync"
)

type inMemUserRepo struct {
	mu   sync.RWMutex
	rows map[string]UserRow
}

// NewInMemUserRepo returns a map-backed UserRepo for tests.
func NewInMemUserRepo() UserRepo {
	return &inMemUserRepo{rows: make(map[string]UserRow)}
}

func (r *inMemUserRepo) List(ctx context.Context) ([]*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*UserRow, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		users = append(users, &row)
	}
	return users, nil
}

func (r *inMemUserRepo) Get(ctx context.Context, uuid string) (*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[uuid]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *inMemUserRepo) Save(ctx context.Context, row *UserRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}
