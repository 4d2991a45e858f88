package quiz

import (
	"context"
	"errors"
)

var ErrVersionConflict = errors.New("quiz version conflict")

// saveAttempts bounds the optimistic-lock retry loop.
const saveAttempts = 5

type QuizSrvc struct {
	repo    QuizRepo
	courses EnrollmentOracle
}

func NewQuizService(repo QuizRepo, courses EnrollmentOracle) *QuizSrvc {
	return &QuizSrvc{
		repo:    repo,
		courses: courses,
	}
}

// QuizRepo persists quiz documents. Save must fail with ErrVersionConflict
// when the stored version no longer matches the row's.
type QuizRepo interface {
	Get(ctx context.Context, uuid string) (*QuizRow, error)
	List(ctx context.Context) ([]*QuizRow, error)
	Save(ctx context.Context, row *QuizRow) error
	Delete(ctx context.Context, uuid string) error
}

// EnrollmentOracle resolves a course to its instructor and roster.
// course.CourseSrvc satisfies it.
type EnrollmentOracle interface {
	ResolveCourse(ctx context.Context, courseID string) (instructorID string, studentIDs []string, found bool, err error)
}

// saveWithRetry applies mutate to the row and saves it, re-reading and
// re-applying on version conflicts. mutate must be safe to run repeatedly.
func (s *QuizSrvc) saveWithRetry(ctx context.Context, quizID string, row *QuizRow, mutate func(*QuizRow) error) error {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if err := mutate(row); err != nil {
			return err
		}
		err := s.repo.Save(ctx, row)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return newErrStorageFailure(err)
		}

		row, err = s.repo.Get(ctx, quizID)
		if err != nil {
			return newErrInternalSE().SetDebug(err)
		}
		if row == nil {
			return newErrQuizNotFound()
		}
	}
	return newErrStorageFailure(ErrVersionConflict)
}
