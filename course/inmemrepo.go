package course

import (
	"context"
	"sync"
)

type inMemCourseRepo struct {
	mu   sync.RWMutex
	rows map[string]CourseRow
}

// NewInMemCourseRepo returns a map-backed CourseRepo for tests.
func NewInMemCourseRepo() CourseRepo {
	return &inMemCourseRepo{rows: make(map[string]CourseRow)}
}

func (r *inMemCourseRepo) Get(ctx context.Context, uuid string) (*CourseRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[uuid]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *inMemCourseRepo) List(ctx context.Context) ([]*CourseRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*CourseRow, 0, len(r.rows))
	for _, row := range r.rows {
		row := row
		rows = append(rows, &row)
	}
	return rows, nil
}

func (r *inMemCourseRepo) Save(ctx context.Context, row *CourseRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}

func (r *inMemCourseRepo) Delete(ctx context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid)
	return nil
}
