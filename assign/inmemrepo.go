package assign

import (
	"context"
	"sync"
)

// inMemAssignRepo mirrors the DynamoDB table's optimistic locking so the
// retry path is exercised in tests.
type inMemAssignRepo struct {
	mu   sync.RWMutex
	rows map[string]AssignmentRow
}

func NewInMemAssignRepo() AssignRepo {
	return &inMemAssignRepo{rows: make(map[string]AssignmentRow)}
}

func (r *inMemAssignRepo) Get(ctx context.Context, uuid string) (*AssignmentRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[uuid]; ok {
		copied := row
		copied.Submissions = append([]SubmissionRow(nil), row.Submissions...)
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemAssignRepo) List(ctx context.Context) ([]*AssignmentRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*AssignmentRow, 0, len(r.rows))
	for _, row := range r.rows {
		copied := row
		copied.Submissions = append([]SubmissionRow(nil), row.Submissions...)
		rows = append(rows, &copied)
	}
	return rows, nil
}

func (r *inMemAssignRepo) Save(ctx context.Context, row *AssignmentRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.rows[row.Uuid]; ok && existing.Version != row.Version {
		return ErrVersionConflict
	}
	row.Version++
	copied := *row
	copied.Submissions = append([]SubmissionRow(nil), row.Submissions...)
	r.rows[row.Uuid] = copied
	return nil
}

func (r *inMemAssignRepo) Delete(ctx context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid)
	return nil
}
