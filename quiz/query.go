package quiz

import (
	"context"
	"sort"
)

// GetQuiz returns one quiz with its questions and attempts.
func (s *QuizSrvc) GetQuiz(ctx context.Context, quizID string) (*Quiz, error) {
	row, err := s.repo.Get(ctx, quizID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrQuizNotFound()
	}
	return quizFromRow(row), nil
}

// ListForCourse returns the quizzes of one course, newest first.
func (s *QuizSrvc) ListForCourse(ctx context.Context, courseID string) ([]*Quiz, error) {
	_, _, found, err := s.courses.ResolveCourse(ctx, courseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	quizzes := make([]*Quiz, 0)
	for _, row := range rows {
		if row.CourseUuid == courseID {
			quizzes = append(quizzes, quizFromRow(row))
		}
	}

	sort.Slice(quizzes, func(i, j int) bool {
		if quizzes[i].CreatedAt.Equal(quizzes[j].CreatedAt) {
			return quizzes[i].UUID < quizzes[j].UUID
		}
		return quizzes[i].CreatedAt.After(quizzes[j].CreatedAt)
	})

	return quizzes, nil
}

// OwnsQuizCourse reports whether the actor's id is the instructor of the
// quiz's course. The handler uses it to decide whether answer keys may be
// shown.
func (s *QuizSrvc) OwnsQuizCourse(ctx context.Context, courseID string, actorID string) (bool, error) {
	instructorID, _, found, err := s.courses.ResolveCourse(ctx, courseID)
	if err != nil {
		return false, newErrInternalSE().SetDebug(err)
	}
	return found && instructorID == actorID, nil
}
