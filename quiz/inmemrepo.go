package quiz

import (
	"context"
	"sync"
)

// inMemQuizRepo mirrors the DynamoDB table's optimistic locking so the retry
// path is exercised in tests.
type inMemQuizRepo struct {
	mu   sync.RWMutex
	rows map[string]QuizRow
}

func NewInMemQuizRepo() QuizRepo {
	return &inMemQuizRepo{rows: make(map[string]QuizRow)}
}

func (r *inMemQuizRepo) Get(ctx context.Context, uuid string) (*QuizRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[uuid]; ok {
		copied := row
		copied.Questions = append([]QuestionRow(nil), row.Questions...)
		copied.Attempts = append([]AttemptRow(nil), row.Attempts...)
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemQuizRepo) List(ctx context.Context) ([]*QuizRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*QuizRow, 0, len(r.rows))
	for _, row := range r.rows {
		copied := row
		copied.Questions = append([]QuestionRow(nil), row.Questions...)
		copied.Attempts = append([]AttemptRow(nil), row.Attempts...)
		rows = append(rows, &copied)
	}
	return rows, nil
}

func (r *inMemQuizRepo) Save(ctx context.Context, row *QuizRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.rows[row.Uuid]; ok && existing.Version != row.Version {
		return ErrVersionConflict
	}
	row.Version++
	copied := *row
	copied.Questions = append([]QuestionRow(nil), row.Questions...)
	copied.Attempts = append([]AttemptRow(nil), row.Attempts...)
	r.rows[row.Uuid] = copied
	return nil
}

func (r *inMemQuizRepo) Delete(ctx context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid)
	return nil
}
